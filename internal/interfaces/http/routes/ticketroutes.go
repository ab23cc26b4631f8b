package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths before parameterized ones.
		tickets.GET("", config.TicketHandler.Index)
		tickets.POST("", config.TicketHandler.Store)
		tickets.GET("/new", config.TicketHandler.New)

		tickets.GET("/:id/edit", config.TicketHandler.Edit)

		tickets.GET("/:id", config.TicketHandler.Show)
		tickets.PUT("/:id", config.TicketHandler.Update)
		tickets.DELETE("/:id", config.TicketHandler.Destroy)
	}
}
