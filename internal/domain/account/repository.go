package account

import (
	"context"
	"time"
)

// Repository persists accounts. Lookups that find nothing return a typed
// not-found error rather than (nil, nil).
type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uint) (*Account, error)
	GetByUsernameOrEmail(ctx context.Context, value string) (*Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	RecordLogin(ctx context.Context, accountID uint, at time.Time) error
}

// TokenRepository persists refresh tokens.
type TokenRepository interface {
	Store(ctx context.Context, t *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}
