package usecases

import "context"

// ContentRenderer turns user-submitted markdown into sanitized HTML for
// display alongside the raw content.
type ContentRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// Executor interfaces consumed by the HTTP layer.

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error)
}

type GetTicketDetailsExecutor interface {
	Execute(ctx context.Context, cmd GetTicketDetailsCommand) (*TicketDetails, error)
}

type AddReplyExecutor interface {
	Execute(ctx context.Context, cmd AddReplyCommand) (*ReplyDetail, error)
}

type ListRepliesExecutor interface {
	Execute(ctx context.Context, cmd ListRepliesCommand) (*ListRepliesResult, error)
}

type UpdateReplyExecutor interface {
	Execute(ctx context.Context, cmd UpdateReplyCommand) (*ReplyDetail, error)
}

type DeleteReplyExecutor interface {
	Execute(ctx context.Context, cmd DeleteReplyCommand) error
}
