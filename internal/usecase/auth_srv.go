package usecase

import (
	"context"
	"fmt"
	"time"

	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/data/entity"
	"pos-terminal/internal/data/session"
	"pos-terminal/internal/dto/request"
	"pos-terminal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*entity.Session, error)
	Logout() error
}

type authService struct {
	store *session.Store
	api   *backend.Backend
	cart  CartService
	log   *zap.Logger
}

func NewAuthService(store *session.Store, api *backend.Backend, cart CartService, log *zap.Logger) AuthService {
	return &authService{
		store: store,
		api:   api,
		cart:  cart,
		log:   log,
	}
}

// Login asks the backend to validate the credentials and records the
// identity it asserts. No credential checking happens on this side.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.Session, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Backend memutuskan valid atau tidak
	rawRole, err := s.api.Account.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	// 3. Normalisasi role ("kasir" dari backend lama -> "cashier")
	role := entity.NormalizeRole(rawRole)
	if !role.Valid() {
		s.log.Error("Backend returned unknown role",
			zap.String("username", req.Username),
			zap.String("role", rawRole))
		return nil, fmt.Errorf("unknown role %q", rawRole)
	}

	sess := &entity.Session{
		ID:        uuid.New(),
		Username:  req.Username,
		Role:      role,
		CreatedAt: time.Now(),
	}

	// 4. Persist dulu, baru dianggap login
	if err := s.store.Login(sess); err != nil {
		s.log.Error("Failed to persist session", zap.Error(err))
		return nil, fmt.Errorf("failed to store session")
	}

	s.log.Info("Operator logged in",
		zap.String("username", sess.Username),
		zap.String("role", string(sess.Role)))

	return sess, nil
}

// Logout clears the store before anything else so the guard on the
// login route never sees stale state. The cart dies with the session.
func (s *authService) Logout() error {
	s.cart.Clear()

	if err := s.store.Logout(); err != nil {
		s.log.Error("Failed to clear session", zap.Error(err))
		return err
	}

	s.log.Info("Operator logged out")
	return nil
}
