package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc         func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc         func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Summary, int64, error)
	SaveReplyFunc    func(ctx context.Context, r *ticket.Reply) error
	GetReplyByIDFunc func(ctx context.Context, id uint) (*ticket.Reply, error)
	ListRepliesFunc  func(ctx context.Context, ticketID uint) ([]*ticket.ReplyView, error)
	UpdateReplyFunc  func(ctx context.Context, r *ticket.Reply) error
	DeleteReplyFunc  func(ctx context.Context, id uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Summary, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) SaveReply(ctx context.Context, r *ticket.Reply) error {
	if m.SaveReplyFunc != nil {
		return m.SaveReplyFunc(ctx, r)
	}
	return nil
}

func (m *mockTicketRepository) GetReplyByID(ctx context.Context, id uint) (*ticket.Reply, error) {
	if m.GetReplyByIDFunc != nil {
		return m.GetReplyByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListReplies(ctx context.Context, ticketID uint) ([]*ticket.ReplyView, error) {
	if m.ListRepliesFunc != nil {
		return m.ListRepliesFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) UpdateReply(ctx context.Context, r *ticket.Reply) error {
	if m.UpdateReplyFunc != nil {
		return m.UpdateReplyFunc(ctx, r)
	}
	return nil
}

func (m *mockTicketRepository) DeleteReply(ctx context.Context, id uint) error {
	if m.DeleteReplyFunc != nil {
		return m.DeleteReplyFunc(ctx, id)
	}
	return nil
}

type mockContentRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockContentRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
