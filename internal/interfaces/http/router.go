package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/render"
	"helpdesk/internal/interfaces/http/routes"
	sharedDB "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/markdown"
)

// Router wires repositories, use cases, handlers and middleware into a
// gin engine.
type Router struct {
	engine *gin.Engine
}

func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))

	render.RegisterFilters(markdown.NewService())
	tickethandlers.RegisterValidators()

	renderer, err := render.NewTemplateRenderer(cfg.Template.Dir, log)
	if err != nil {
		return nil, err
	}

	ticketRepo := repository.NewTicketRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	userRepo := repository.NewUserRepository(db)
	txMgr := sharedDB.NewTransactionManager(db)

	listTicketsUC := usecases.NewListTicketsUseCase(ticketRepo, userRepo, log)
	createTicketUC := usecases.NewCreateTicketUseCase(ticketRepo, log)
	getTicketUC := usecases.NewGetTicketUseCase(ticketRepo, responseRepo, userRepo, log)
	deleteTicketUC := usecases.NewDeleteTicketUseCase(ticketRepo, txMgr, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		listTicketsUC,
		createTicketUC,
		getTicketUC,
		deleteTicketUC,
		renderer,
		log,
	)

	jwtService := auth.NewJWTService(&cfg.Auth.JWT)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, renderer, log)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/tickets")
	})

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}, nil
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Handler returns the engine wrapped with form method override support.
func (r *Router) Handler() http.Handler {
	return middleware.MethodOverride(r.engine)
}
