package ticket

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Reply is a message exchanged on a ticket. Only the creating account may
// edit or delete it.
type Reply struct {
	id        uint
	ticketID  uint
	creatorID uint
	content   string
	createdAt time.Time
}

// NewReply creates a reply bound to a ticket and its author.
func NewReply(ticketID, creatorID uint, content string) (*Reply, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("content is required")
	}

	return &Reply{
		ticketID:  ticketID,
		creatorID: creatorID,
		content:   content,
		createdAt: biztime.NowUTC(),
	}, nil
}

// ReconstructReply rebuilds a reply from persistence.
func ReconstructReply(
	id uint,
	ticketID uint,
	creatorID uint,
	content string,
	createdAt time.Time,
) (*Reply, error) {
	if id == 0 {
		return nil, fmt.Errorf("reply ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Reply{
		id:        id,
		ticketID:  ticketID,
		creatorID: creatorID,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (r *Reply) ID() uint {
	return r.id
}

func (r *Reply) TicketID() uint {
	return r.ticketID
}

func (r *Reply) CreatorID() uint {
	return r.creatorID
}

func (r *Reply) Content() string {
	return r.content
}

func (r *Reply) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reply) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reply ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reply ID cannot be zero")
	}
	r.id = id
	return nil
}

// IsOwnedBy reports whether the account created the reply.
func (r *Reply) IsOwnedBy(accountID uint) bool {
	return r.creatorID == accountID
}

// UpdateContent replaces the reply body. Ownership must be checked by the
// caller before invoking.
func (r *Reply) UpdateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	r.content = content
	return nil
}
