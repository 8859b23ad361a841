package usecases

import (
	"context"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase exchanges a usable refresh token for a fresh pair.
// Tokens rotate on every exchange: the presented token is revoked and a new
// one is persisted, so a replayed token is rejected.
type RefreshTokenUseCase struct {
	tokenRepo account.TokenRepository
	verifier  RefreshTokenVerifier
	tokens    TokenIssuer
	txManager db.TxManager
	logger    logger.Interface
}

func NewRefreshTokenUseCase(
	tokenRepo account.TokenRepository,
	verifier RefreshTokenVerifier,
	tokens TokenIssuer,
	txManager db.TxManager,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenRepo: tokenRepo,
		verifier:  verifier,
		tokens:    tokens,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	invalidToken := errors.NewUnauthorizedError("invalid or expired refresh token")

	accountID, err := uc.verifier.VerifyRefreshToken(cmd.RefreshToken)
	if err != nil {
		return nil, invalidToken
	}

	stored, err := uc.tokenRepo.GetByToken(ctx, cmd.RefreshToken)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to look up refresh token", "error", err)
		}
		return nil, invalidToken
	}

	if stored.AccountID() != accountID || !stored.IsUsable() {
		return nil, invalidToken
	}

	accessToken, err := uc.tokens.IssueAccessToken(accountID)
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	refreshToken, expiresAt, err := uc.tokens.IssueRefreshToken(accountID)
	if err != nil {
		uc.logger.Errorw("failed to issue refresh token", "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	record, err := account.NewRefreshToken(accountID, refreshToken, expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to build refresh token record", "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.tokenRepo.Revoke(txCtx, cmd.RefreshToken); err != nil {
			return err
		}
		return uc.tokenRepo.Store(txCtx, record)
	})
	if err != nil {
		uc.logger.Errorw("failed to rotate refresh token", "error", err, "account_id", accountID)
		return nil, errors.NewInternalError("failed to refresh tokens")
	}

	uc.logger.Infow("refresh token rotated", "account_id", accountID)

	return &RefreshTokenResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
