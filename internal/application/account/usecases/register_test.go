package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/shared/errors"
)

func TestRegisterUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("register customer successfully", func(t *testing.T) {
		var created *account.Account
		repo := &mockAccountRepository{
			CreateFunc: func(ctx context.Context, a *account.Account) error {
				created = a
				return a.SetID(1)
			},
		}
		uc := NewRegisterUseCase(repo, &mockPasswordHasher{}, &mockLogger{})

		result, err := uc.Execute(ctx, RegisterCommand{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.AccountID)
		assert.Equal(t, "alice", result.Username)
		require.NotNil(t, created)
		assert.False(t, created.IsStaff())
		assert.Equal(t, "hashed:secret123", created.PasswordHash())
	})

	t.Run("staff flag comes from the command", func(t *testing.T) {
		var created *account.Account
		repo := &mockAccountRepository{
			CreateFunc: func(ctx context.Context, a *account.Account) error {
				created = a
				return a.SetID(2)
			},
		}
		uc := NewRegisterUseCase(repo, &mockPasswordHasher{}, &mockLogger{})

		_, err := uc.Execute(ctx, RegisterCommand{
			Username: "agent",
			Email:    "agent@example.com",
			Password: "secret123",
			Staff:    true,
		})

		require.NoError(t, err)
		assert.True(t, created.IsStaff())
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		uc := NewRegisterUseCase(&mockAccountRepository{}, &mockPasswordHasher{}, &mockLogger{})

		result, err := uc.Execute(ctx, RegisterCommand{
			Username: "bob",
			Email:    "bob@example.com",
		})

		assert.Nil(t, result)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		uc := NewRegisterUseCase(&mockAccountRepository{}, &mockPasswordHasher{}, &mockLogger{})

		_, err := uc.Execute(ctx, RegisterCommand{
			Username: "bob",
			Email:    "not-an-email",
			Password: "secret123",
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("conflict from repository passes through", func(t *testing.T) {
		repo := &mockAccountRepository{
			CreateFunc: func(ctx context.Context, a *account.Account) error {
				return errors.NewConflictError("username already exists")
			},
		}
		uc := NewRegisterUseCase(repo, &mockPasswordHasher{}, &mockLogger{})

		_, err := uc.Execute(ctx, RegisterCommand{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}
