// Package router wires handlers and middleware into the gin engine.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/handlers"
	"github.com/yukikurage/taskboard-api/internal/middleware"
	"github.com/yukikurage/taskboard-api/internal/services"
)

// Services groups everything the HTTP layer calls into.
type Services struct {
	Auth        *services.AuthService
	Users       *services.UserService
	Dashboards  *services.DashboardService
	Columns     *services.ColumnService
	Cards       *services.CardService
	Invitations *services.InvitationService
	Access      *services.AccessService
}

type Options struct {
	Logger        *slog.Logger
	AllowedOrigin string
	HealthChecks  map[string]handlers.Pinger
}

// New builds the engine with every route of the API.
func New(svc Services, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		middleware.Recovery(opts.Logger),
		middleware.CORS(opts.AllowedOrigin),
	)

	authHandler := handlers.NewAuthHandler(svc.Auth)
	userHandler := handlers.NewUserHandler(svc.Users)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboards)
	columnHandler := handlers.NewColumnHandler(svc.Columns)
	cardHandler := handlers.NewCardHandler(svc.Cards)
	invitationHandler := handlers.NewInvitationHandler(svc.Invitations)
	healthHandler := handlers.NewHealthHandler(opts.HealthChecks)

	requireAuth := middleware.RequireAuth(svc.Auth)
	requireAdmin := middleware.RequireDashboardAdmin(svc.Access)

	r.GET("/health", healthHandler.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", middleware.RequireRefreshToken(svc.Auth), authHandler.Refresh)
		auth.POST("/logout", requireAuth, authHandler.Logout)
		auth.POST("/change-password", requireAuth, authHandler.ChangePassword)
		auth.POST("/google", authHandler.Google)
		auth.POST("/github", authHandler.GitHub)
	}

	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.PUT("/changePassword", userHandler.ChangePassword)
		users.GET("/me", userHandler.GetCurrentUser)
		users.PATCH("/me", userHandler.UpdateCurrentUser)
	}

	dashboards := r.Group("/dashboards")
	dashboards.Use(requireAuth)
	{
		dashboards.POST("", dashboardHandler.CreateDashboard)
		dashboards.GET("", dashboardHandler.ListDashboards)
		dashboards.GET("/:id", dashboardHandler.GetDashboard)
		dashboards.GET("/:id/members", dashboardHandler.ListMembers)
		dashboards.PATCH("/:id", dashboardHandler.UpdateDashboard)
		dashboards.DELETE("/:id", requireAdmin, dashboardHandler.DeleteDashboard)
	}

	columns := r.Group("/columns")
	columns.Use(requireAuth)
	{
		columns.POST("", columnHandler.CreateColumn)
		columns.GET("/dashboard/:dashboardId", columnHandler.ListColumns)
		columns.PATCH("/order", columnHandler.UpdateOrder)
		columns.GET("/:id", columnHandler.GetColumn)
		columns.PATCH("/:id", columnHandler.UpdateColumn)
		columns.DELETE("/:id", requireAdmin, columnHandler.DeleteColumn)
	}

	cards := r.Group("/cards")
	cards.Use(requireAuth)
	{
		cards.POST("", cardHandler.CreateCard)
		cards.GET("/column/:columnId", cardHandler.ListCards)
		cards.GET("/:id", cardHandler.GetCard)
		cards.GET("/:id/labels", cardHandler.ListLabels)
		cards.GET("/:id/checklists", cardHandler.ListChecklists)
		cards.GET("/:id/comments", cardHandler.ListComments)
		cards.GET("/:id/attachments", cardHandler.ListAttachments)
		cards.PATCH("/:id", cardHandler.UpdateCard)
		cards.DELETE("/:id", cardHandler.DeleteCard)
	}

	invitations := r.Group("/invitations")
	invitations.Use(requireAuth)
	{
		invitations.POST("", invitationHandler.CreateInvitation)
		invitations.GET("/dashboard/:dashboardId", invitationHandler.ListInvitations)
	}

	return r
}
