package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type AccountAPI interface {
	// Login validates credentials against the backend and returns the
	// role the backend asserts for the account.
	Login(ctx context.Context, username, password string) (string, error)
	Create(ctx context.Context, username, password, role string) (string, error)
	AdminCount(ctx context.Context) (int, error)
	CashierCount(ctx context.Context) (int, error)
}

type accountAPI struct {
	client *Client
	log    *zap.Logger
}

func NewAccountAPI(client *Client, log *zap.Logger) AccountAPI {
	return &accountAPI{
		client: client,
		log:    log.With(zap.String("api", "account")),
	}
}

func (a *accountAPI) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var out struct {
		Message string `json:"message"`
		Role    string `json:"role"`
	}
	if err := a.client.postJSON(ctx, "/login", body, &out); err != nil {
		a.log.Warn("Login rejected by backend", zap.String("username", username), zap.Error(err))
		return "", fmt.Errorf("login: %w", err)
	}
	return out.Role, nil
}

func (a *accountAPI) Create(ctx context.Context, username, password, role string) (string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
		"role":     role,
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := a.client.postJSON(ctx, "/create-account", body, &out); err != nil {
		a.log.Error("Failed to create account", zap.String("username", username), zap.Error(err))
		return "", fmt.Errorf("create account: %w", err)
	}
	return out.Message, nil
}

func (a *accountAPI) AdminCount(ctx context.Context) (int, error) {
	var out struct {
		AdminCount int `json:"admin_count"`
	}
	if err := a.client.getJSON(ctx, "/admin-count", &out); err != nil {
		return 0, fmt.Errorf("fetch admin count: %w", err)
	}
	return out.AdminCount, nil
}

func (a *accountAPI) CashierCount(ctx context.Context) (int, error) {
	var out struct {
		CashierCount int `json:"cashier_count"`
	}
	if err := a.client.getJSON(ctx, "/cashier-count", &out); err != nil {
		return 0, fmt.Errorf("fetch cashier count: %w", err)
	}
	return out.CashierCount, nil
}
