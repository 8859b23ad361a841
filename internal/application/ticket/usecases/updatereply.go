package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateReplyCommand struct {
	ReplyID   uint
	AccountID uint
	Username  string
	Content   string
}

// UpdateReplyUseCase edits a reply's content. Only the reply's author may
// edit it; a missing reply and a foreign reply produce distinct errors.
type UpdateReplyUseCase struct {
	ticketRepo ticket.Repository
	renderer   ContentRenderer
	logger     logger.Interface
}

func NewUpdateReplyUseCase(
	ticketRepo ticket.Repository,
	renderer ContentRenderer,
	logger logger.Interface,
) *UpdateReplyUseCase {
	return &UpdateReplyUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *UpdateReplyUseCase) Execute(ctx context.Context, cmd UpdateReplyCommand) (*ReplyDetail, error) {
	reply, err := uc.ticketRepo.GetReplyByID(ctx, cmd.ReplyID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load reply", "error", err, "reply_id", cmd.ReplyID)
		return nil, errors.NewInternalError("failed to load reply")
	}

	if !reply.IsOwnedBy(cmd.AccountID) {
		return nil, errors.NewForbiddenError("only the author can edit a reply")
	}

	if err := reply.UpdateContent(cmd.Content); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.UpdateReply(ctx, reply); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update reply", "error", err, "reply_id", cmd.ReplyID)
		return nil, errors.NewInternalError("failed to update reply")
	}

	rendered, err := uc.renderer.ToHTMLSanitized(reply.Content())
	if err != nil {
		uc.logger.Errorw("failed to render reply content", "error", err, "reply_id", cmd.ReplyID)
		return nil, errors.NewInternalError("failed to render reply")
	}

	uc.logger.Infow("reply updated", "reply_id", cmd.ReplyID, "account_id", cmd.AccountID)

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
