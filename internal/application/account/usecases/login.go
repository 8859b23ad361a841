package usecases

import (
	"context"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	// Identifier matches either username or email.
	Identifier string
	Password   string
	// StaffOnly restricts the login to staff accounts when set, so the
	// staff endpoint rejects customer credentials.
	StaffOnly bool
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
}

// LoginUseCase authenticates an account and issues a token pair. Every
// failure mode returns the same unauthorized error so callers cannot probe
// which identifiers exist.
type LoginUseCase struct {
	accountRepo account.Repository
	tokenRepo   account.TokenRepository
	hasher      account.PasswordHasher
	tokens      TokenIssuer
	txManager   db.TxManager
	logger      logger.Interface
}

func NewLoginUseCase(
	accountRepo account.Repository,
	tokenRepo account.TokenRepository,
	hasher account.PasswordHasher,
	tokens TokenIssuer,
	txManager db.TxManager,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
		hasher:      hasher,
		tokens:      tokens,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	invalidCredentials := errors.NewUnauthorizedError("invalid username or password")

	existing, err := uc.accountRepo.GetByUsernameOrEmail(ctx, cmd.Identifier)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to look up account", "error", err)
		}
		return nil, invalidCredentials
	}

	if cmd.StaffOnly && !existing.IsStaff() {
		return nil, invalidCredentials
	}

	if err := existing.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, invalidCredentials
	}

	accessToken, err := uc.tokens.IssueAccessToken(existing.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	refreshToken, expiresAt, err := uc.tokens.IssueRefreshToken(existing.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue refresh token", "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	record, err := account.NewRefreshToken(existing.ID(), refreshToken, expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to build refresh token record", "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	// The token record and the login stamp land together. last_login is
	// written only after the password has been verified.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.tokenRepo.Store(txCtx, record); err != nil {
			return err
		}
		return uc.accountRepo.RecordLogin(txCtx, existing.ID(), biztime.NowUTC())
	})
	if err != nil {
		uc.logger.Errorw("failed to persist login", "error", err, "account_id", existing.ID())
		return nil, errors.NewInternalError("failed to complete login")
	}

	uc.logger.Infow("account logged in", "account_id", existing.ID())

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
