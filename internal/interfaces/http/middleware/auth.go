package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AuthMiddleware authenticates requests with a bearer access token and
// resolves the account's capabilities once, before any handler runs. The
// role comes from the database, not the token, so a role change takes
// effect on the next request.
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	accountRepo account.Repository
	logger      logger.Interface
}

func NewAuthMiddleware(
	jwtService *auth.JWTService,
	accountRepo account.Repository,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		accountID, err := m.jwtService.VerifyAccessToken(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		current, err := m.accountRepo.GetByID(c.Request.Context(), accountID)
		if err != nil {
			if !errors.IsNotFoundError(err) {
				m.logger.Errorw("failed to load account", "error", err, "account_id", accountID)
			}
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAccountID, current.ID())
		c.Set(constants.ContextKeyUsername, current.Username())
		c.Set(constants.ContextKeyCapabilities, authorization.CapabilitiesFor(current.Role()))

		c.Next()
	}
}

// AccountID returns the authenticated account id set by RequireAuth.
func AccountID(c *gin.Context) uint {
	id, _ := c.Get(constants.ContextKeyAccountID)
	accountID, _ := id.(uint)
	return accountID
}

// Username returns the authenticated account's username set by RequireAuth.
func Username(c *gin.Context) string {
	v, _ := c.Get(constants.ContextKeyUsername)
	username, _ := v.(string)
	return username
}

// AccountCapabilities returns the capability descriptor set by RequireAuth.
func AccountCapabilities(c *gin.Context) authorization.Capabilities {
	v, _ := c.Get(constants.ContextKeyCapabilities)
	caps, _ := v.(authorization.Capabilities)
	return caps
}
