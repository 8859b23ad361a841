package usecases

import (
	"context"
	"time"
)

// TokenIssuer mints signed token pairs. Refresh token expiry is returned so
// the use case can persist it.
type TokenIssuer interface {
	IssueAccessToken(accountID uint) (string, error)
	IssueRefreshToken(accountID uint) (string, time.Time, error)
}

// RefreshTokenVerifier checks a presented refresh token's signature and
// returns the account id it was issued to.
type RefreshTokenVerifier interface {
	VerifyRefreshToken(tokenString string) (uint, error)
}

// Executor interfaces consumed by the HTTP layer so handlers depend on
// behavior rather than concrete use cases.

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}
