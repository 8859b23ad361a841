package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListRepliesCommand struct {
	TicketID     uint
	AccountID    uint
	Capabilities authorization.Capabilities
}

type ListRepliesResult struct {
	Total   int64
	Replies []ReplyDetail
}

// ListRepliesUseCase returns every reply on a viewable ticket, newest first.
type ListRepliesUseCase struct {
	ticketRepo ticket.Repository
	renderer   ContentRenderer
	logger     logger.Interface
}

func NewListRepliesUseCase(
	ticketRepo ticket.Repository,
	renderer ContentRenderer,
	logger logger.Interface,
) *ListRepliesUseCase {
	return &ListRepliesUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *ListRepliesUseCase) Execute(ctx context.Context, cmd ListRepliesCommand) (*ListRepliesResult, error) {
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

	views, err := uc.ticketRepo.ListReplies(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list replies", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to list replies")
	}

	replies, err := renderReplyDetails(views, uc.renderer)
	if err != nil {
		uc.logger.Errorw("failed to render reply content", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to render replies")
	}

	return &ListRepliesResult{
		Total:   int64(len(replies)),
		Replies: replies,
	}, nil
}
