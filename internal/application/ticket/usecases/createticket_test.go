package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func customerCaps() authorization.Capabilities {
	return authorization.CapabilitiesFor(authorization.RoleCustomer)
}

func staffCaps() authorization.Capabilities {
	return authorization.CapabilitiesFor(authorization.RoleStaff)
}

func TestCreateTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("customer creates a ticket", func(t *testing.T) {
		var saved *ticket.Ticket
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				saved = tk
				return tk.SetID(10)
			},
		}
		uc := NewCreateTicketUseCase(repo, &mockLogger{})

		result, err := uc.Execute(ctx, CreateTicketCommand{
			Title:        "Printer is down",
			Description:  "The office printer shows error E502.",
			AccountID:    3,
			Capabilities: customerCaps(),
		})

		require.NoError(t, err)
		assert.Equal(t, uint(10), result.TicketID)
		assert.Equal(t, "Printer is down", result.Title)
		assert.Equal(t, uint(3), result.CreatorID)
		require.NotNil(t, saved)
		assert.Equal(t, uint(3), saved.CreatorID())
	})

	t.Run("staff cannot create tickets", func(t *testing.T) {
		var saveCalled bool
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				saveCalled = true
				return nil
			},
		}
		uc := NewCreateTicketUseCase(repo, &mockLogger{})

		_, err := uc.Execute(ctx, CreateTicketCommand{
			Title:        "Should not exist",
			Description:  "Staff cannot raise tickets.",
			AccountID:    9,
			Capabilities: staffCaps(),
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		assert.False(t, saveCalled)
	})

	t.Run("empty title is a validation error", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockLogger{})

		_, err := uc.Execute(ctx, CreateTicketCommand{
			Description:  "No title provided.",
			AccountID:    3,
			Capabilities: customerCaps(),
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("storage failure is an internal error", func(t *testing.T) {
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return fmt.Errorf("connection reset")
			},
		}
		uc := NewCreateTicketUseCase(repo, &mockLogger{})

		_, err := uc.Execute(ctx, CreateTicketCommand{
			Title:        "Printer is down",
			Description:  "The office printer shows error E502.",
			AccountID:    3,
			Capabilities: customerCaps(),
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	})
}
