package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/shared/errors"
)

func createTestToken(t *testing.T, accountID uint, token string) *account.RefreshToken {
	rt, err := account.NewRefreshToken(accountID, token, time.Now().UTC().Add(7*24*time.Hour))
	require.NoError(t, err)
	return rt
}

func TestTokenRepository_Store(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	t.Run("store token successfully", func(t *testing.T) {
		rt := createTestToken(t, 1, "token-store-001")

		err := repo.Store(ctx, rt)
		assert.NoError(t, err)
		assert.NotZero(t, rt.ID())
	})

	t.Run("account may hold several tokens", func(t *testing.T) {
		rt1 := createTestToken(t, 2, "token-multi-001")
		rt2 := createTestToken(t, 2, "token-multi-002")

		assert.NoError(t, repo.Store(ctx, rt1))
		assert.NoError(t, repo.Store(ctx, rt2))
	})
}

func TestTokenRepository_GetByToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	rt := createTestToken(t, 3, "token-get-001")
	require.NoError(t, repo.Store(ctx, rt))

	t.Run("find stored token", func(t *testing.T) {
		found, err := repo.GetByToken(ctx, "token-get-001")
		assert.NoError(t, err)
		assert.Equal(t, rt.ID(), found.ID())
		assert.Equal(t, uint(3), found.AccountID())
		assert.False(t, found.Revoked())
		assert.True(t, found.IsUsable())
	})

	t.Run("unknown token", func(t *testing.T) {
		found, err := repo.GetByToken(ctx, "token-missing")
		assert.Error(t, err)
		assert.Nil(t, found)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestTokenRepository_Revoke(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	t.Run("revoke stored token", func(t *testing.T) {
		rt := createTestToken(t, 4, "token-revoke-001")
		require.NoError(t, repo.Store(ctx, rt))

		err := repo.Revoke(ctx, "token-revoke-001")
		assert.NoError(t, err)

		found, err := repo.GetByToken(ctx, "token-revoke-001")
		assert.NoError(t, err)
		assert.True(t, found.Revoked())
		assert.False(t, found.IsUsable())
	})

	t.Run("revoke is idempotent", func(t *testing.T) {
		rt := createTestToken(t, 5, "token-revoke-002")
		require.NoError(t, repo.Store(ctx, rt))

		assert.NoError(t, repo.Revoke(ctx, "token-revoke-002"))
		assert.NoError(t, repo.Revoke(ctx, "token-revoke-002"))
	})

	t.Run("revoke unknown token is not an error", func(t *testing.T) {
		err := repo.Revoke(ctx, "token-never-issued")
		assert.NoError(t, err)
	})
}
