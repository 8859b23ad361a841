package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
}

func NewAccountRepository(db *gorm.DB) account.Repository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewAccountMapper(),
	}
}

// Create inserts a new account. Username and email are both pre-checked so
// collisions surface as a clean conflict instead of a raw driver error;
// the unique indexes still guard against races, and a duplicate-key error
// from the insert is translated to the same conflict.
func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	tx := db.GetTxFromContext(ctx, r.db)

	taken, err := r.existsWhere(tx, "user_name = ?", a.Username())
	if err != nil {
		return err
	}
	if taken {
		return errors.NewConflictError("username already exists")
	}

	taken, err = r.existsWhere(tx, "email = ?", a.Email())
	if err != nil {
		return err
	}
	if taken {
		return errors.NewConflictError("email already exists")
	}

	model := r.mapper.ToModel(a)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByUsernameOrEmail matches the login identifier against both columns.
// It is a pure lookup: last_login is stamped separately by RecordLogin
// once the password has been verified.
func (r *AccountRepository) GetByUsernameOrEmail(ctx context.Context, value string) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_name = ? OR email = ?", value, value).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.existsWhere(tx, "user_name = ?", username)
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.existsWhere(tx, "email = ?", email)
}

func (r *AccountRepository) RecordLogin(ctx context.Context, accountID uint, at time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AccountModel{}).
		Where("id = ?", accountID).
		Update("last_login", at)
	if result.Error != nil {
		return fmt.Errorf("failed to record login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("account not found")
	}

	return nil
}

func (r *AccountRepository) existsWhere(tx *gorm.DB, query string, arg interface{}) (bool, error) {
	var count int64
	if err := tx.
		Model(&models.AccountModel{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}
