package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTicketsCommand struct {
	AccountID    uint
	Capabilities authorization.Capabilities
	Page         int
	PageSize     int
}

type TicketSummary struct {
	TicketID        uint
	Title           string
	Description     string
	CreatorID       uint
	CreatorUsername string
	CreatedAt       time.Time
}

type ListTicketsResult struct {
	Total   int64
	Tickets []TicketSummary
}

// ListTicketsUseCase pages tickets within the caller's scope: staff see
// every ticket, customers only their own.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	rows, total, err := uc.ticketRepo.List(ctx, ticket.ListFilter{
		Scope:     cmd.Capabilities.TicketScope,
		AccountID: cmd.AccountID,
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "account_id", cmd.AccountID)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	summaries := make([]TicketSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, TicketSummary{
			TicketID:        row.ID,
			Title:           row.Title,
			Description:     row.Description,
			CreatorID:       row.CreatorID,
			CreatorUsername: row.CreatorUsername,
			CreatedAt:       row.CreatedAt,
		})
	}

	return &ListTicketsResult{
		Total:   total,
		Tickets: summaries,
	}, nil
}
