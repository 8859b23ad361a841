package ticket

import (
	"context"
	"time"

	"helpdesk/internal/shared/authorization"
)

// ListFilter selects and pages tickets. Page is zero-based; the offset is
// Page*PageSize. Scope ScopeOwn restricts results to AccountID's tickets.
type ListFilter struct {
	Scope     authorization.TicketScope
	AccountID uint
	Page      int
	PageSize  int
}

// Summary is the ticket list read model, joined with the creator's
// username for response shaping.
type Summary struct {
	ID              uint
	Title           string
	Description     string
	CreatorID       uint
	CreatorUsername string
	CreatedAt       time.Time
}

// ReplyView is the reply read model with the creator's username joined in.
type ReplyView struct {
	ID              uint
	TicketID        uint
	CreatorID       uint
	CreatorUsername string
	Content         string
	CreatedAt       time.Time
}

// Repository persists tickets and their replies. The reply operations live
// here because replies never exist outside a ticket.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter ListFilter) ([]*Summary, int64, error)

	SaveReply(ctx context.Context, r *Reply) error
	GetReplyByID(ctx context.Context, id uint) (*Reply, error)
	ListReplies(ctx context.Context, ticketID uint) ([]*ReplyView, error)
	UpdateReply(ctx context.Context, r *Reply) error
	DeleteReply(ctx context.Context, id uint) error
}
