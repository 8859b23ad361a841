package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteReplyCommand struct {
	ReplyID   uint
	AccountID uint
}

// DeleteReplyUseCase removes a reply. Only the reply's author may delete it.
type DeleteReplyUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteReplyUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteReplyUseCase {
	return &DeleteReplyUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteReplyUseCase) Execute(ctx context.Context, cmd DeleteReplyCommand) error {
	reply, err := uc.ticketRepo.GetReplyByID(ctx, cmd.ReplyID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to load reply", "error", err, "reply_id", cmd.ReplyID)
		return errors.NewInternalError("failed to load reply")
	}

	if !reply.IsOwnedBy(cmd.AccountID) {
		return errors.NewForbiddenError("only the author can delete a reply")
	}

	if err := uc.ticketRepo.DeleteReply(ctx, cmd.ReplyID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete reply", "error", err, "reply_id", cmd.ReplyID)
		return errors.NewInternalError("failed to delete reply")
	}

	uc.logger.Infow("reply deleted", "reply_id", cmd.ReplyID, "account_id", cmd.AccountID)

	return nil
}
