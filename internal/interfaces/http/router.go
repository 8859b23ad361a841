package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accountusecases "helpdesk/internal/application/account/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	accounthandler "helpdesk/internal/interfaces/http/handlers/account"
	tickethandler "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	sharedDB "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine         *gin.Engine
	authHandler    *accounthandler.AuthHandler
	ticketHandler  *tickethandler.TicketHandler
	authMiddleware *middleware.AuthMiddleware
	loginLimiter   *middleware.LoginRateLimiter
}

// NewRouter builds the full HTTP stack. redisClient may be nil when rate
// limiting is disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	accountRepo := repository.NewAccountRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Algorithm, cfg.Auth.JWT.AccessExpMinutes)
	txManager := sharedDB.NewTransactionManager(db)
	renderer := markdown.NewService()

	registerUC := accountusecases.NewRegisterUseCase(accountRepo, hasher, log)
	loginUC := accountusecases.NewLoginUseCase(accountRepo, tokenRepo, hasher, jwtService, txManager, log)
	refreshUC := accountusecases.NewRefreshTokenUseCase(tokenRepo, jwtService, jwtService, txManager, log)
	logoutUC := accountusecases.NewLogoutUseCase(tokenRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	getDetailsUC := ticketusecases.NewGetTicketDetailsUseCase(ticketRepo, renderer, log)
	addReplyUC := ticketusecases.NewAddReplyUseCase(ticketRepo, renderer, log)
	listRepliesUC := ticketusecases.NewListRepliesUseCase(ticketRepo, renderer, log)
	updateReplyUC := ticketusecases.NewUpdateReplyUseCase(ticketRepo, renderer, log)
	deleteReplyUC := ticketusecases.NewDeleteReplyUseCase(ticketRepo, log)

	authHandler := accounthandler.NewAuthHandler(registerUC, loginUC, refreshUC, logoutUC, log)
	ticketHandler := tickethandler.NewTicketHandler(
		createTicketUC, listTicketsUC, getDetailsUC,
		addReplyUC, listRepliesUC, updateReplyUC, deleteReplyUC, log,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, accountRepo, log)

	var loginLimiter *middleware.LoginRateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		limits := ratelimit.Limits{
			PerMinute: cfg.RateLimit.LoginPerMinute,
			PerHour:   cfg.RateLimit.LoginPerHour,
		}
		loginLimiter = middleware.NewLoginRateLimiter(limiter, limits, log)
	}

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		ticketHandler:  ticketHandler,
		authMiddleware: authMiddleware,
		loginLimiter:   loginLimiter,
	}
}

// SetupRoutes installs the global middleware chain and all route groups.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.loginLimiter,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
