package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

func reconstructedTicket(t *testing.T, id, creatorID uint) *ticket.Ticket {
	tk, err := ticket.ReconstructTicket(id, "Printer is down", "Error E502", creatorID, time.Now().UTC())
	require.NoError(t, err)
	return tk
}

func TestGetTicketDetailsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("owner sees ticket with replies newest first", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return reconstructedTicket(t, 5, 3), nil
			},
			ListRepliesFunc: func(ctx context.Context, ticketID uint) ([]*ticket.ReplyView, error) {
				return []*ticket.ReplyView{
					{ID: 2, TicketID: 5, CreatorID: 9, CreatorUsername: "agent", Content: "On it", CreatedAt: now},
					{ID: 1, TicketID: 5, CreatorID: 3, CreatorUsername: "alice", Content: "Still broken", CreatedAt: now.Add(-time.Hour)},
				}, nil
			},
		}
		uc := NewGetTicketDetailsUseCase(repo, &mockContentRenderer{}, &mockLogger{})

		result, err := uc.Execute(ctx, GetTicketDetailsCommand{
			TicketID:     5,
			AccountID:    3,
			Capabilities: customerCaps(),
		})

		require.NoError(t, err)
		assert.Equal(t, uint(5), result.TicketID)
		require.Len(t, result.Replies, 2)
		assert.Equal(t, uint(2), result.Replies[0].ReplyID)
		assert.Equal(t, "<p>On it</p>", result.Replies[0].ContentHTML)
		assert.Equal(t, "agent", result.Replies[0].CreatorUsername)
	})

	t.Run("staff can open any ticket", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return reconstructedTicket(t, 5, 3), nil
			},
		}
		uc := NewGetTicketDetailsUseCase(repo, &mockContentRenderer{}, &mockLogger{})

		result, err := uc.Execute(ctx, GetTicketDetailsCommand{
			TicketID:     5,
			AccountID:    9,
			Capabilities: staffCaps(),
		})

		require.NoError(t, err)
		assert.Equal(t, uint(5), result.TicketID)
	})

	t.Run("foreign customer is forbidden", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return reconstructedTicket(t, 5, 3), nil
			},
		}
		uc := NewGetTicketDetailsUseCase(repo, &mockContentRenderer{}, &mockLogger{})

		_, err := uc.Execute(ctx, GetTicketDetailsCommand{
			TicketID:     5,
			AccountID:    4,
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
		uc := NewGetTicketDetailsUseCase(repo, &mockContentRenderer{}, &mockLogger{})

		_, err := uc.Execute(ctx, GetTicketDetailsCommand{
			TicketID:     77,
			AccountID:    3,
			Capabilities: customerCaps(),
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
