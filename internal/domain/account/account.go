package account

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

// Account is the aggregate root for a registered helpdesk account.
// Ownership of tickets and replies is immutable after creation, so the
// aggregate never exposes setters for identity fields.
type Account struct {
	id           uint
	username     string
	email        string
	passwordHash string
	staff        bool
	lastLogin    *time.Time
	createdAt    time.Time
}

// PasswordHasher abstracts the one-way hash primitive.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// NewAccount creates an account with a pre-hashed password. The staff flag
// is decided by the registration endpoint, never by request payload.
func NewAccount(username, email, passwordHash string, staff bool) (*Account, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 20 {
		return nil, fmt.Errorf("username exceeds maximum length of 20 characters")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(email) > 100 {
		return nil, fmt.Errorf("email exceeds maximum length of 100 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	return &Account{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		staff:        staff,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// ReconstructAccount rebuilds an account from persistence.
func ReconstructAccount(
	id uint,
	username string,
	email string,
	passwordHash string,
	staff bool,
	lastLogin *time.Time,
	createdAt time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &Account{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		staff:        staff,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
	}, nil
}

func (a *Account) ID() uint {
	return a.id
}

func (a *Account) Username() string {
	return a.username
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) IsStaff() bool {
	return a.staff
}

func (a *Account) Role() authorization.Role {
	return authorization.RoleFromStaffFlag(a.staff)
}

func (a *Account) LastLogin() *time.Time {
	return a.lastLogin
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// SetID assigns the persistence-generated identifier exactly once.
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

// VerifyPassword checks the candidate password against the stored hash.
func (a *Account) VerifyPassword(password string, hasher PasswordHasher) error {
	return hasher.Verify(password, a.passwordHash)
}

// RecordLogin stamps last_login. Callers invoke this only after the
// password has been verified.
func (a *Account) RecordLogin() {
	now := biztime.NowUTC()
	a.lastLogin = &now
}
