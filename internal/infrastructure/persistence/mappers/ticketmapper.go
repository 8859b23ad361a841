package mappers

import (
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket/Reply domain entities
// and persistence models.
type TicketMapper interface {
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ReplyToModel(entity *ticket.Reply) *models.ReplyModel
	ReplyToDomain(model *models.ReplyModel) (*ticket.Reply, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}
	return &models.TicketModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		CreatedByID: entity.CreatorID(),
		CreatedDate: entity.CreatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.CreatedByID,
		model.CreatedDate,
	)
}

func (m *TicketMapperImpl) ReplyToModel(entity *ticket.Reply) *models.ReplyModel {
	if entity == nil {
		return nil
	}
	return &models.ReplyModel{
		ID:          entity.ID(),
		Content:     entity.Content(),
		TicketID:    entity.TicketID(),
		CreatedByID: entity.CreatorID(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func (m *TicketMapperImpl) ReplyToDomain(model *models.ReplyModel) (*ticket.Reply, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructReply(
		model.ID,
		model.TicketID,
		model.CreatedByID,
		model.Content,
		model.CreatedAt,
	)
}
