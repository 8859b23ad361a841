package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddReplyCommand struct {
	TicketID     uint
	AccountID    uint
	Username     string
	Content      string
	Capabilities authorization.Capabilities
}

// AddReplyUseCase posts a reply on a ticket the caller can view. Staff may
// reply on any ticket, customers only on their own.
type AddReplyUseCase struct {
	ticketRepo ticket.Repository
	renderer   ContentRenderer
	logger     logger.Interface
}

func NewAddReplyUseCase(
	ticketRepo ticket.Repository,
	renderer ContentRenderer,
	logger logger.Interface,
) *AddReplyUseCase {
	return &AddReplyUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *AddReplyUseCase) Execute(ctx context.Context, cmd AddReplyCommand) (*ReplyDetail, error) {
	found, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	if !found.CanBeViewedBy(cmd.AccountID, cmd.Capabilities.TicketScope) {
		return nil, errors.NewForbiddenError("no access to this ticket")
	}

	reply, err := ticket.NewReply(cmd.TicketID, cmd.AccountID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveReply(ctx, reply); err != nil {
		uc.logger.Errorw("failed to save reply", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to save reply")
	}

	rendered, err := uc.renderer.ToHTMLSanitized(reply.Content())
	if err != nil {
		uc.logger.Errorw("failed to render reply content", "error", err, "reply_id", reply.ID())
		return nil, errors.NewInternalError("failed to render reply")
	}

	uc.logger.Infow("reply added",
		"reply_id", reply.ID(),
		"ticket_id", cmd.TicketID,
		"account_id", cmd.AccountID)

	return &ReplyDetail{
		ReplyID:         reply.ID(),
		TicketID:        reply.TicketID(),
		CreatorID:       reply.CreatorID(),
		CreatorUsername: cmd.Username,
		Content:         reply.Content(),
		ContentHTML:     rendered,
		CreatedAt:       reply.CreatedAt(),
	}, nil
}
