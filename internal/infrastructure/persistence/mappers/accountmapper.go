package mappers

import (
	"helpdesk/internal/domain/account"
	"helpdesk/internal/infrastructure/persistence/models"
)

// AccountMapper handles the conversion between Account domain entities and
// persistence models.
type AccountMapper interface {
	ToModel(entity *account.Account) *models.AccountModel
	ToDomain(model *models.AccountModel) (*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToModel(entity *account.Account) *models.AccountModel {
	if entity == nil {
		return nil
	}
	return &models.AccountModel{
		ID:          entity.ID(),
		Username:    entity.Username(),
		Email:       entity.Email(),
		Password:    entity.PasswordHash(),
		IsAdmin:     entity.IsStaff(),
		LastLogin:   entity.LastLogin(),
		CreatedDate: entity.CreatedAt(),
	}
}

func (m *AccountMapperImpl) ToDomain(model *models.AccountModel) (*account.Account, error) {
	if model == nil {
		return nil, nil
	}
	return account.ReconstructAccount(
		model.ID,
		model.Username,
		model.Email,
		model.Password,
		model.IsAdmin,
		model.LastLogin,
		model.CreatedDate,
	)
}
