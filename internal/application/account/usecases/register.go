package usecases

import (
	"context"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Username string
	Email    string
	Password string
	Staff    bool
}

type RegisterResult struct {
	AccountID uint
	Username  string
	Email     string
}

// RegisterUseCase creates a customer or staff account. The staff flag comes
// from the registration endpoint, never from the request body.
type RegisterUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	logger      logger.Interface
}

func NewRegisterUseCase(
	accountRepo account.Repository,
	hasher account.PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}
	if len(cmd.Password) > 72 {
		return nil, errors.NewValidationError("password exceeds maximum length of 72 characters")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newAccount, err := account.NewAccount(cmd.Username, cmd.Email, hash, cmd.Staff)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Create(ctx, newAccount); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create account", "error", err)
		return nil, errors.NewInternalError("failed to create account")
	}

	uc.logger.Infow("account registered",
		"account_id", newAccount.ID(),
		"staff", cmd.Staff)

	return &RegisterResult{
		AccountID: newAccount.ID(),
		Username:  newAccount.Username(),
		Email:     newAccount.Email(),
	}, nil
}
