// Package constants defines application-wide constant values.
package constants

// Table names
const (
	TableAccounts = "accounts"
	TableTokens   = "tokens"
	TableTickets  = "tickets"
	TableReplies  = "replies"
)

// Pagination defaults. Pages are zero-based: page=0 with page size 10
// returns the first 10 rows.
const (
	DefaultPage     = 0
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// RefreshTokenTTLDays is the lifetime of persisted refresh tokens.
// Deliberately fixed rather than configurable.
const RefreshTokenTTLDays = 7

// Context keys set by the auth middleware.
const (
	ContextKeyAccountID    = "account_id"
	ContextKeyUsername     = "username"
	ContextKeyCapabilities = "capabilities"
)

// Environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)
