package usecases

import (
	"context"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LogoutCommand struct {
	RefreshToken string
}

// LogoutUseCase revokes the presented refresh token. Logging out with an
// unknown or already revoked token succeeds, so repeated logouts are safe.
type LogoutUseCase struct {
	tokenRepo account.TokenRepository
	logger    logger.Interface
}

func NewLogoutUseCase(tokenRepo account.TokenRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.RefreshToken == "" {
		return errors.NewValidationError("refresh token is required")
	}

	if err := uc.tokenRepo.Revoke(ctx, cmd.RefreshToken); err != nil {
		uc.logger.Errorw("failed to revoke refresh token", "error", err)
		return errors.NewInternalError("failed to log out")
	}

	return nil
}
