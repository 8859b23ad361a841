package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketDetailsCommand struct {
	TicketID     uint
	AccountID    uint
	Capabilities authorization.Capabilities
}

type ReplyDetail struct {
	ReplyID         uint
	TicketID        uint
	CreatorID       uint
	CreatorUsername string
	Content         string
	ContentHTML     string
	CreatedAt       time.Time
}

type TicketDetails struct {
	TicketID    uint
	Title       string
	Description string
	CreatorID   uint
	CreatedAt   time.Time
	Replies     []ReplyDetail
}

// GetTicketDetailsUseCase loads a ticket with its replies, newest reply
// first. A ticket outside the caller's scope yields a forbidden error,
// distinct from a missing ticket.
type GetTicketDetailsUseCase struct {
	ticketRepo ticket.Repository
	renderer   ContentRenderer
	logger     logger.Interface
}

func NewGetTicketDetailsUseCase(
	ticketRepo ticket.Repository,
	renderer ContentRenderer,
	logger logger.Interface,
) *GetTicketDetailsUseCase {
	return &GetTicketDetailsUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetTicketDetailsUseCase) Execute(ctx context.Context, cmd GetTicketDetailsCommand) (*TicketDetails, error) {
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
		uc.logger.Errorw("failed to load replies", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to load replies")
	}

	replies, err := renderReplyDetails(views, uc.renderer)
	if err != nil {
		uc.logger.Errorw("failed to render reply content", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to render replies")
	}

	return &TicketDetails{
		TicketID:    found.ID(),
		Title:       found.Title(),
		Description: found.Description(),
		CreatorID:   found.CreatorID(),
		CreatedAt:   found.CreatedAt(),
		Replies:     replies,
	}, nil
}

func renderReplyDetails(views []*ticket.ReplyView, renderer ContentRenderer) ([]ReplyDetail, error) {
	details := make([]ReplyDetail, 0, len(views))
	for _, view := range views {
		rendered, err := renderer.ToHTMLSanitized(view.Content)
		if err != nil {
			return nil, err
		}
		details = append(details, ReplyDetail{
			ReplyID:         view.ID,
			TicketID:        view.TicketID,
			CreatorID:       view.CreatorID,
			CreatorUsername: view.CreatorUsername,
			Content:         view.Content,
			ContentHTML:     rendered,
			CreatedAt:       view.CreatedAt,
		})
	}
	return details, nil
}
