package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type TokenRepository struct {
	db     *gorm.DB
	mapper mappers.TokenMapper
}

func NewTokenRepository(db *gorm.DB) account.TokenRepository {
	return &TokenRepository{
		db:     db,
		mapper: mappers.NewTokenMapper(),
	}
}

func (r *TokenRepository) Store(ctx context.Context, token *account.RefreshToken) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(token)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return token.SetID(model.ID)
}

func (r *TokenRepository) GetByToken(ctx context.Context, tokenString string) (*account.RefreshToken, error) {
	var model models.TokenModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("refresh_token = ?", tokenString).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("refresh token not found")
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// Revoke marks the token unusable. Revoking an unknown or already revoked
// token is not an error so that logout stays idempotent.
func (r *TokenRepository) Revoke(ctx context.Context, tokenString string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TokenModel{}).
		Where("refresh_token = ?", tokenString).
		Update("revoked", true).Error; err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
