package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/shared/errors"
)

func storedToken(t *testing.T, accountID uint, token string, revoked bool, expiresAt time.Time) *account.RefreshToken {
	rt, err := account.ReconstructRefreshToken(1, accountID, token, revoked, expiresAt, time.Now().UTC())
	require.NoError(t, err)
	return rt
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(24 * time.Hour)

	newUseCase := func(tokenRepo *mockTokenRepository, verifier *mockRefreshTokenVerifier) *RefreshTokenUseCase {
		return NewRefreshTokenUseCase(tokenRepo, verifier, &mockTokenIssuer{}, &mockTxManager{}, &mockLogger{})
	}

	t.Run("usable token is exchanged and rotated", func(t *testing.T) {
		var revoked string
		var stored *account.RefreshToken

		tokenRepo := &mockTokenRepository{
			GetByTokenFunc: func(ctx context.Context, tokenString string) (*account.RefreshToken, error) {
				return storedToken(t, 1, tokenString, false, future), nil
			},
			RevokeFunc: func(ctx context.Context, tokenString string) error {
				revoked = tokenString
				return nil
			},
			StoreFunc: func(ctx context.Context, token *account.RefreshToken) error {
				stored = token
				return token.SetID(2)
			},
		}
		uc := newUseCase(tokenRepo, &mockRefreshTokenVerifier{})

		result, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: "old-token"})

		require.NoError(t, err)
		assert.Equal(t, "access-token", result.AccessToken)
		assert.Equal(t, "refresh-token", result.RefreshToken)
		assert.Equal(t, "old-token", revoked)
		require.NotNil(t, stored)
		assert.Equal(t, "refresh-token", stored.Token())
	})

	t.Run("token failing signature check is rejected", func(t *testing.T) {
		verifier := &mockRefreshTokenVerifier{
			VerifyRefreshTokenFunc: func(tokenString string) (uint, error) {
				return 0, fmt.Errorf("invalid token")
			},
		}
		uc := newUseCase(&mockTokenRepository{}, verifier)

		_, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: "garbage"})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		tokenRepo := &mockTokenRepository{
			GetByTokenFunc: func(ctx context.Context, tokenString string) (*account.RefreshToken, error) {
				return nil, errors.NewNotFoundError("refresh token not found")
			},
		}
		uc := newUseCase(tokenRepo, &mockRefreshTokenVerifier{})

		_, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: "never-issued"})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		tokenRepo := &mockTokenRepository{
			GetByTokenFunc: func(ctx context.Context, tokenString string) (*account.RefreshToken, error) {
				return storedToken(t, 1, tokenString, true, future), nil
			},
		}
		uc := newUseCase(tokenRepo, &mockRefreshTokenVerifier{})

		_, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: "revoked-token"})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		tokenRepo := &mockTokenRepository{
			GetByTokenFunc: func(ctx context.Context, tokenString string) (*account.RefreshToken, error) {
				return storedToken(t, 1, tokenString, false, time.Now().UTC().Add(-time.Hour)), nil
			},
		}
		uc := newUseCase(tokenRepo, &mockRefreshTokenVerifier{})

		_, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: "expired-token"})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("token issued to a different account is rejected", func(t *testing.T) {
		tokenRepo := &mockTokenRepository{
			GetByTokenFunc: func(ctx context.Context, tokenString string) (*account.RefreshToken, error) {
				return storedToken(t, 99, tokenString, false, future), nil
			},
		}
		verifier := &mockRefreshTokenVerifier{
			VerifyRefreshTokenFunc: func(tokenString string) (uint, error) {
				return 1, nil
			},
		}
		uc := newUseCase(tokenRepo, verifier)

		_, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: "mismatched"})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})
}
