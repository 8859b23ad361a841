package account

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// RefreshToken is a persisted, revocable credential used to mint new access
// tokens. An account may hold several at once, one per active session;
// revocation is per-token.
type RefreshToken struct {
	id        uint
	accountID uint
	token     string
	revoked   bool
	expiresAt time.Time
	createdAt time.Time
}

// NewRefreshToken records a freshly issued refresh token for persistence.
func NewRefreshToken(accountID uint, token string, expiresAt time.Time) (*RefreshToken, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}
	if expiresAt.IsZero() {
		return nil, fmt.Errorf("expiry is required")
	}

	return &RefreshToken{
		accountID: accountID,
		token:     token,
		expiresAt: expiresAt,
		createdAt: biztime.NowUTC(),
	}, nil
}

// ReconstructRefreshToken rebuilds a refresh token from persistence.
func ReconstructRefreshToken(
	id uint,
	accountID uint,
	token string,
	revoked bool,
	expiresAt time.Time,
	createdAt time.Time,
) (*RefreshToken, error) {
	if id == 0 {
		return nil, fmt.Errorf("token ID cannot be zero")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}

	return &RefreshToken{
		id:        id,
		accountID: accountID,
		token:     token,
		revoked:   revoked,
		expiresAt: expiresAt,
		createdAt: createdAt,
	}, nil
}

func (t *RefreshToken) ID() uint {
	return t.id
}

func (t *RefreshToken) AccountID() uint {
	return t.accountID
}

func (t *RefreshToken) Token() string {
	return t.token
}

func (t *RefreshToken) Revoked() bool {
	return t.revoked
}

func (t *RefreshToken) ExpiresAt() time.Time {
	return t.expiresAt
}

func (t *RefreshToken) CreatedAt() time.Time {
	return t.createdAt
}

func (t *RefreshToken) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("token ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("token ID cannot be zero")
	}
	t.id = id
	return nil
}

// Revoke marks the token unusable for refresh. Idempotent.
func (t *RefreshToken) Revoke() {
	t.revoked = true
}

// IsExpired reports whether the token is past its expiry.
func (t *RefreshToken) IsExpired() bool {
	return biztime.NowUTC().After(t.expiresAt)
}

// IsUsable reports whether the token may still be exchanged for a new pair.
func (t *RefreshToken) IsUsable() bool {
	return !t.revoked && !t.IsExpired()
}
