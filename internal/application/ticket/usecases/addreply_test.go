package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

func TestAddReplyUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("owner replies on own ticket", func(t *testing.T) {
		var saved *ticket.Reply
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return reconstructedTicket(t, 5, 3), nil
			},
			SaveReplyFunc: func(ctx context.Context, r *ticket.Reply) error {
				saved = r
				return r.SetID(1)
			},
		}
		uc := NewAddReplyUseCase(repo, &mockContentRenderer{}, &mockLogger{})

		result, err := uc.Execute(ctx, AddReplyCommand{
			TicketID:     5,
			AccountID:    3,
			Username:     "alice",
			Content:      "Still broken after restart",
			Capabilities: customerCaps(),
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ReplyID)
		assert.Equal(t, "alice", result.CreatorUsername)
		assert.Equal(t, "<p>Still broken after restart</p>", result.ContentHTML)
		require.NotNil(t, saved)
		assert.Equal(t, uint(3), saved.CreatorID())
	})

	t.Run("staff replies on any ticket", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return reconstructedTicket(t, 5, 3), nil
			},
			SaveReplyFunc: func(ctx context.Context, r *ticket.Reply) error {
				return r.SetID(2)
			},
		}
		uc := NewAddReplyUseCase(repo, &mockContentRenderer{}, &mockLogger{})

		result, err := uc.Execute(ctx, AddReplyCommand{
			TicketID:     5,
			AccountID:    9,
			Username:     "agent",
			Content:      "Please try firmware 2.1",
			Capabilities: staffCaps(),
		})

		require.NoError(t, err)
		assert.Equal(t, uint(9), result.CreatorID)
	})

	t.Run("foreign customer cannot reply", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return reconstructedTicket(t, 5, 3), nil
			},
		}
		uc := NewAddReplyUseCase(repo, &mockContentRenderer{}, &mockLogger{})

		_, err := uc.Execute(ctx, AddReplyCommand{
			TicketID:     5,
			AccountID:    4,
			Content:      "Let me hijack this thread",
			Capabilities: customerCaps(),
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("missing ticket is not found", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		uc := NewAddReplyUseCase(repo, &mockContentRenderer{}, &mockLogger{})

		_, err := uc.Execute(ctx, AddReplyCommand{
			TicketID:     77,
			AccountID:    3,
			Content:      "Anyone there?",
			Capabilities: customerCaps(),
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("empty content is a validation error", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return reconstructedTicket(t, 5, 3), nil
			},
		}
		uc := NewAddReplyUseCase(repo, &mockContentRenderer{}, &mockLogger{})

		_, err := uc.Execute(ctx, AddReplyCommand{
			TicketID:     5,
			AccountID:    3,
			Content:      "   ",
			Capabilities: customerCaps(),
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})
}
