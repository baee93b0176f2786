package usecase

import (
	"context"
	"errors"
	"testing"

	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAccountAPI struct {
	createCalled bool
	message      string
	err          error
	admins       int
	cashiers     int
}

func (f *fakeAccountAPI) Login(context.Context, string, string) (string, error) {
	return "", f.err
}

func (f *fakeAccountAPI) Create(_ context.Context, username, password, role string) (string, error) {
	f.createCalled = true
	if f.err != nil {
		return "", f.err
	}
	return f.message, nil
}

func (f *fakeAccountAPI) AdminCount(context.Context) (int, error)   { return f.admins, f.err }
func (f *fakeAccountAPI) CashierCount(context.Context) (int, error) { return f.cashiers, f.err }

func newTestAccountService(accounts *fakeAccountAPI) AccountService {
	api := &backend.Backend{Account: accounts}
	return NewAccountService(api, zap.NewNop())
}

func TestAccount_PasswordMismatchNeverReachesBackend(t *testing.T) {
	accounts := &fakeAccountAPI{}
	svc := newTestAccountService(accounts)

	_, err := svc.Create(context.Background(), &request.CreateAccountRequest{
		Username:        "newcashier",
		Password:        "secret123",
		ConfirmPassword: "secret124",
		Role:            "cashier",
	})

	require.Error(t, err)
	assert.False(t, accounts.createCalled)
}

func TestAccount_EmptyFieldsNeverReachBackend(t *testing.T) {
	accounts := &fakeAccountAPI{}
	svc := newTestAccountService(accounts)

	_, err := svc.Create(context.Background(), &request.CreateAccountRequest{
		Username:        "",
		Password:        "",
		ConfirmPassword: "",
		Role:            "cashier",
	})

	require.Error(t, err)
	assert.False(t, accounts.createCalled)
}

func TestAccount_UnknownRoleNeverReachesBackend(t *testing.T) {
	accounts := &fakeAccountAPI{}
	svc := newTestAccountService(accounts)

	_, err := svc.Create(context.Background(), &request.CreateAccountRequest{
		Username:        "mallory",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            "superuser",
	})

	require.Error(t, err)
	assert.False(t, accounts.createCalled)
}

func TestAccount_ValidFormCreatesAccount(t *testing.T) {
	accounts := &fakeAccountAPI{message: "Account created"}
	svc := newTestAccountService(accounts)

	message, err := svc.Create(context.Background(), &request.CreateAccountRequest{
		Username:        "newcashier",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            "cashier",
	})

	require.NoError(t, err)
	assert.True(t, accounts.createCalled)
	assert.Equal(t, "Account created", message)
}

func TestAccount_CountsDegradeToZeroOnFailure(t *testing.T) {
	accounts := &fakeAccountAPI{err: errors.New("backend down")}
	svc := newTestAccountService(accounts)

	admins, cashiers := svc.Counts(context.Background())
	assert.Zero(t, admins)
	assert.Zero(t, cashiers)
}
