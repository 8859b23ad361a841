package mappers

import (
	"helpdesk/internal/domain/account"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TokenMapper handles the conversion between RefreshToken domain entities
// and persistence models.
type TokenMapper interface {
	ToModel(entity *account.RefreshToken) *models.TokenModel
	ToDomain(model *models.TokenModel) (*account.RefreshToken, error)
}

type TokenMapperImpl struct{}

func NewTokenMapper() TokenMapper {
	return &TokenMapperImpl{}
}

func (m *TokenMapperImpl) ToModel(entity *account.RefreshToken) *models.TokenModel {
	if entity == nil {
		return nil
	}
	return &models.TokenModel{
		ID:           entity.ID(),
		AccountID:    entity.AccountID(),
		RefreshToken: entity.Token(),
		Revoked:      entity.Revoked(),
		ExpiresAt:    entity.ExpiresAt(),
		CreatedAt:    entity.CreatedAt(),
	}
}

func (m *TokenMapperImpl) ToDomain(model *models.TokenModel) (*account.RefreshToken, error) {
	if model == nil {
		return nil, nil
	}
	return account.ReconstructRefreshToken(
		model.ID,
		model.AccountID,
		model.RefreshToken,
		model.Revoked,
		model.ExpiresAt,
		model.CreatedAt,
	)
}
