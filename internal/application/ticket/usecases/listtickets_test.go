package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
)

func TestListTicketsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("customer list is scoped to own tickets", func(t *testing.T) {
		var gotFilter ticket.ListFilter
		repo := &mockTicketRepository{
			ListFunc: func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Summary, int64, error) {
				gotFilter = filter
				return []*ticket.Summary{
					{ID: 2, Title: "Second", CreatorID: 3, CreatorUsername: "alice", CreatedAt: now},
					{ID: 1, Title: "First", CreatorID: 3, CreatorUsername: "alice", CreatedAt: now.Add(-time.Hour)},
				}, 2, nil
			},
		}
		uc := NewListTicketsUseCase(repo, &mockLogger{})

		result, err := uc.Execute(ctx, ListTicketsCommand{
			AccountID:    3,
			Capabilities: customerCaps(),
			Page:         0,
			PageSize:     10,
		})

		require.NoError(t, err)
		assert.Equal(t, authorization.ScopeOwn, gotFilter.Scope)
		assert.Equal(t, uint(3), gotFilter.AccountID)
		assert.Equal(t, int64(2), result.Total)
		require.Len(t, result.Tickets, 2)
		assert.Equal(t, "alice", result.Tickets[0].CreatorUsername)
	})

	t.Run("staff list covers every ticket", func(t *testing.T) {
		var gotFilter ticket.ListFilter
		repo := &mockTicketRepository{
			ListFunc: func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Summary, int64, error) {
				gotFilter = filter
				return nil, 0, nil
			},
		}
		uc := NewListTicketsUseCase(repo, &mockLogger{})

		result, err := uc.Execute(ctx, ListTicketsCommand{
			AccountID:    9,
			Capabilities: staffCaps(),
			Page:         1,
			PageSize:     20,
		})

		require.NoError(t, err)
		assert.Equal(t, authorization.ScopeAll, gotFilter.Scope)
		assert.Equal(t, 1, gotFilter.Page)
		assert.Equal(t, 20, gotFilter.PageSize)
		assert.Equal(t, int64(0), result.Total)
		assert.Empty(t, result.Tickets)
	})
}
