package ticket

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

// Ticket is the aggregate root for a support ticket. Tickets carry no
// status machine: they are created once and accumulate replies.
type Ticket struct {
	id          uint
	title       string
	description string
	creatorID   uint
	createdAt   time.Time
	replies     []*Reply
}

// NewTicket creates a ticket owned by the creating account.
func NewTicket(title, description string, creatorID uint) (*Ticket, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 100 {
		return nil, fmt.Errorf("title exceeds maximum length of 100 characters")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		title:       title,
		description: description,
		creatorID:   creatorID,
		createdAt:   biztime.NowUTC(),
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	creatorID uint,
	createdAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		creatorID:   creatorID,
		createdAt:   createdAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) Replies() []*Reply {
	repliesCopy := make([]*Reply, len(t.replies))
	copy(repliesCopy, t.replies)
	return repliesCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AddReply attaches a loaded reply to the aggregate.
func (t *Ticket) AddReply(r *Reply) error {
	if r == nil {
		return fmt.Errorf("reply cannot be nil")
	}
	if r.TicketID() != t.id {
		return fmt.Errorf("reply ticket ID mismatch")
	}
	t.replies = append(t.replies, r)
	return nil
}

// CanBeViewedBy reports whether an account may open the ticket's details.
// Staff scope covers every ticket; customers only their own.
func (t *Ticket) CanBeViewedBy(accountID uint, scope authorization.TicketScope) bool {
	if scope == authorization.ScopeAll {
		return true
	}
	return t.creatorID == accountID
}
