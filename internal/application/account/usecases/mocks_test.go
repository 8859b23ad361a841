package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/shared/logger"
)

type mockAccountRepository struct {
	CreateFunc               func(ctx context.Context, a *account.Account) error
	GetByIDFunc              func(ctx context.Context, id uint) (*account.Account, error)
	GetByUsernameOrEmailFunc func(ctx context.Context, value string) (*account.Account, error)
	ExistsByUsernameFunc     func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc        func(ctx context.Context, email string) (bool, error)
	RecordLoginFunc          func(ctx context.Context, accountID uint, at time.Time) error
}

func (m *mockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByUsernameOrEmail(ctx context.Context, value string) (*account.Account, error) {
	if m.GetByUsernameOrEmailFunc != nil {
		return m.GetByUsernameOrEmailFunc(ctx, value)
	}
	return nil, nil
}

func (m *mockAccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockAccountRepository) RecordLogin(ctx context.Context, accountID uint, at time.Time) error {
	if m.RecordLoginFunc != nil {
		return m.RecordLoginFunc(ctx, accountID, at)
	}
	return nil
}

type mockTokenRepository struct {
	StoreFunc      func(ctx context.Context, token *account.RefreshToken) error
	GetByTokenFunc func(ctx context.Context, tokenString string) (*account.RefreshToken, error)
	RevokeFunc     func(ctx context.Context, tokenString string) error
}

func (m *mockTokenRepository) Store(ctx context.Context, token *account.RefreshToken) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, token)
	}
	return nil
}

func (m *mockTokenRepository) GetByToken(ctx context.Context, tokenString string) (*account.RefreshToken, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, tokenString)
	}
	return nil, nil
}

func (m *mockTokenRepository) Revoke(ctx context.Context, tokenString string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, tokenString)
	}
	return nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	IssueAccessTokenFunc  func(accountID uint) (string, error)
	IssueRefreshTokenFunc func(accountID uint) (string, time.Time, error)
}

func (m *mockTokenIssuer) IssueAccessToken(accountID uint) (string, error) {
	if m.IssueAccessTokenFunc != nil {
		return m.IssueAccessTokenFunc(accountID)
	}
	return "access-token", nil
}

func (m *mockTokenIssuer) IssueRefreshToken(accountID uint) (string, time.Time, error) {
	if m.IssueRefreshTokenFunc != nil {
		return m.IssueRefreshTokenFunc(accountID)
	}
	return "refresh-token", time.Now().UTC().Add(7 * 24 * time.Hour), nil
}

type mockRefreshTokenVerifier struct {
	VerifyRefreshTokenFunc func(tokenString string) (uint, error)
}

func (m *mockRefreshTokenVerifier) VerifyRefreshToken(tokenString string) (uint, error) {
	if m.VerifyRefreshTokenFunc != nil {
		return m.VerifyRefreshTokenFunc(tokenString)
	}
	return 1, nil
}

// mockTxManager runs the function directly without a real transaction.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
