package usecase

import (
	"context"
	"fmt"

	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/dto/request"
	"pos-terminal/pkg/utils"

	"go.uber.org/zap"
)

// AccountService backs the admin panel: account creation plus the
// admin/cashier headcounts.
type AccountService interface {
	Create(ctx context.Context, req *request.CreateAccountRequest) (string, error)
	Counts(ctx context.Context) (admins, cashiers int)
}

type accountService struct {
	api *backend.Backend
	log *zap.Logger
}

func NewAccountService(api *backend.Backend, log *zap.Logger) AccountService {
	return &accountService{
		api: api,
		log: log,
	}
}

// Create validates the form before anything leaves this process; a
// password mismatch or empty field never produces a network call.
func (s *accountService) Create(ctx context.Context, req *request.CreateAccountRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create account validation failed", zap.Any("errors", errs))
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	message, err := s.api.Account.Create(ctx, req.Username, req.Password, req.Role)
	if err != nil {
		return "", fmt.Errorf("failed to create account")
	}

	s.log.Info("Account created",
		zap.String("username", req.Username),
		zap.String("role", req.Role))

	if message == "" {
		message = "Account created successfully"
	}
	return message, nil
}

// Counts degrades to zero on failure; the panel still renders.
func (s *accountService) Counts(ctx context.Context) (int, int) {
	admins, err := s.api.Account.AdminCount(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch admin count", zap.Error(err))
	}

	cashiers, err := s.api.Account.CashierCount(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch cashier count", zap.Error(err))
	}

	return admins, cashiers
}
