package routes

import (
	"github.com/gin-gonic/gin"

	accounthandler "helpdesk/internal/interfaces/http/handlers/account"
	"helpdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *accounthandler.AuthHandler
	RateLimiter *middleware.LoginRateLimiter // may be nil if rate limiting is not configured
}

// SetupAuthRoutes configures registration, login, token refresh and logout routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	loginGuard := func() []gin.HandlerFunc {
		if cfg.RateLimiter == nil {
			return nil
		}
		return []gin.HandlerFunc{cfg.RateLimiter.Limit()}
	}

	user := engine.Group("/api/user")
	{
		user.POST("/register", cfg.AuthHandler.RegisterCustomer)
		user.POST("/login", append(loginGuard(), cfg.AuthHandler.LoginCustomer)...)
		user.POST("/refresh_token", cfg.AuthHandler.RefreshToken)
		user.POST("/logout", cfg.AuthHandler.Logout)
	}

	staff := engine.Group("/api/staff")
	{
		staff.POST("/register", cfg.AuthHandler.RegisterStaff)
		staff.POST("/login", append(loginGuard(), cfg.AuthHandler.LoginStaff)...)
	}
}
