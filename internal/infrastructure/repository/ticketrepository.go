package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(t)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns a page of ticket summaries newest first, together with the
// total count for the same scope. Page is zero-based.
func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Summary, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{})
	if filter.Scope == authorization.ScopeOwn {
		query = query.Where(constants.TableTickets+".created_by_id = ?", filter.AccountID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []*ticket.Summary
	if err := query.
		Select(constants.TableTickets+".id, "+
			constants.TableTickets+".title, "+
			constants.TableTickets+".description, "+
			constants.TableTickets+".created_by_id AS creator_id, "+
			constants.TableAccounts+".user_name AS creator_username, "+
			constants.TableTickets+".created_date AS created_at").
		Joins("LEFT JOIN "+constants.TableAccounts+" ON "+
			constants.TableAccounts+".id = "+constants.TableTickets+".created_by_id").
		Order(constants.TableTickets + ".created_date DESC").
		Offset(filter.Page * filter.PageSize).
		Limit(filter.PageSize).
		Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	return rows, total, nil
}

func (r *TicketRepository) SaveReply(ctx context.Context, reply *ticket.Reply) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ReplyToModel(reply)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create reply: %w", err)
	}

	return reply.SetID(model.ID)
}

func (r *TicketRepository) GetReplyByID(ctx context.Context, id uint) (*ticket.Reply, error) {
	var model models.ReplyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("reply not found")
		}
		return nil, fmt.Errorf("failed to find reply: %w", err)
	}

	return r.mapper.ReplyToDomain(&model)
}

// ListReplies returns every reply on a ticket newest first, with the
// author's username joined in.
func (r *TicketRepository) ListReplies(ctx context.Context, ticketID uint) ([]*ticket.ReplyView, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []*ticket.ReplyView
	if err := tx.
		Model(&models.ReplyModel{}).
		Select(constants.TableReplies+".id, "+
			constants.TableReplies+".ticket_id, "+
			constants.TableReplies+".created_by_id AS creator_id, "+
			constants.TableAccounts+".user_name AS creator_username, "+
			constants.TableReplies+".content, "+
			constants.TableReplies+".created_at").
		Joins("LEFT JOIN "+constants.TableAccounts+" ON "+
			constants.TableAccounts+".id = "+constants.TableReplies+".created_by_id").
		Where(constants.TableReplies+".ticket_id = ?", ticketID).
		Order(constants.TableReplies + ".created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	return rows, nil
}

func (r *TicketRepository) UpdateReply(ctx context.Context, reply *ticket.Reply) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReplyModel{}).
		Where("id = ?", reply.ID()).
		Update("content", reply.Content())
	if result.Error != nil {
		return fmt.Errorf("failed to update reply: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("reply not found")
	}

	return nil
}

func (r *TicketRepository) DeleteReply(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ReplyModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reply: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("reply not found")
	}

	return nil
}
