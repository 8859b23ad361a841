package routes

import (
	"github.com/gin-gonic/gin"

	tickethandler "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket and reply routes.
type TicketRouteConfig struct {
	TicketHandler  *tickethandler.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket and reply routes. All of them require
// an authenticated account.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	user := engine.Group("/api/user")
	user.Use(cfg.AuthMiddleware.RequireAuth())
	{
		user.POST("/createTicket", cfg.TicketHandler.CreateTicket)
		user.GET("/getTickets", cfg.TicketHandler.ListTickets)
	}

	ticket := engine.Group("/api/ticket")
	ticket.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Reply routes use the static /replies prefix so they never collide
		// with the parameterized ticket routes below.
		ticket.PUT("/replies/:id", cfg.TicketHandler.UpdateReply)
		ticket.DELETE("/replies/:id", cfg.TicketHandler.DeleteReply)

		ticket.GET("/:id", cfg.TicketHandler.GetTicketDetails)
		ticket.POST("/:id/replies", cfg.TicketHandler.AddReply)
		ticket.GET("/:id/replies", cfg.TicketHandler.ListReplies)
	}
}
