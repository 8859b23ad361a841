package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title        string
	Description  string
	AccountID    uint
	Capabilities authorization.Capabilities
}

type CreateTicketResult struct {
	TicketID    uint
	Title       string
	Description string
	CreatorID   uint
	CreatedAt   time.Time
}

// CreateTicketUseCase opens a ticket on behalf of a customer. Staff do not
// raise tickets, so the capability check rejects them outright.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if !cmd.Capabilities.CanCreateTicket {
		return nil, errors.NewForbiddenError("staff accounts cannot create tickets")
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.AccountID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "account_id", cmd.AccountID)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"account_id", cmd.AccountID)

	return &CreateTicketResult{
		TicketID:    newTicket.ID(),
		Title:       newTicket.Title(),
		Description: newTicket.Description(),
		CreatorID:   newTicket.CreatorID(),
		CreatedAt:   newTicket.CreatedAt(),
	}, nil
}
