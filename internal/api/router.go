package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/launchhub/business-portal/internal/api/handler"
	"github.com/launchhub/business-portal/internal/api/middleware"
	"github.com/launchhub/business-portal/internal/authz"
	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/service"
	"github.com/launchhub/business-portal/internal/infrastructure/config"
	"github.com/launchhub/business-portal/internal/infrastructure/db/mysql"
	"github.com/launchhub/business-portal/internal/infrastructure/db/redis"
	"github.com/launchhub/business-portal/internal/infrastructure/storage"
	"github.com/launchhub/business-portal/internal/session"
)

// Deps carries the external collaborators the router wires together.
type Deps struct {
	DB     *gorm.DB
	Redis  *goredis.Client
	Config *config.Config
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// It also returns the competition service so the background worker can share
// the exact use-case instance the API uses.
func NewRouter(deps Deps) (*echo.Echo, *service.CompetitionService, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Repositories ---
	userRepo := mysql.NewUserRepository(deps.DB)
	requestRepo := mysql.NewAccountRequestRepository(deps.DB)
	businessRepo := mysql.NewBusinessRepository(deps.DB)
	messageRepo := mysql.NewMessageRepository(deps.DB)
	competitionRepo := mysql.NewCompetitionRepository(deps.DB)

	// --- Session plumbing ---
	codec := session.NewCodec(deps.Config.JWTSecret)
	sessions := session.NewManager(codec, userRepo, deps.Log)

	// --- Services ---
	throttle := redis.NewLoginThrottle(deps.Redis)
	authService := service.NewAuthService(userRepo, throttle, deps.Log)
	userService := service.NewUserService(userRepo)
	requestService := service.NewRequestService(userRepo, requestRepo)
	messageService := service.NewMessageService(userRepo, messageRepo)
	competitionService := service.NewCompetitionService(competitionRepo, deps.Log)
	businessService := service.NewBusinessService(businessRepo, userRepo)

	blobStore, err := storage.NewLocalStore(deps.Config.Upload.Dir, deps.Config.Upload.BaseURL)
	if err != nil {
		return nil, nil, err
	}
	uploadService := service.NewUploadService(blobStore)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, sessions)
	userHandler := handler.NewUserHandler(userService, sessions)
	requestHandler := handler.NewRequestHandler(requestService)
	messageHandler := handler.NewMessageHandler(messageService)
	competitionHandler := handler.NewCompetitionHandler(competitionService)
	businessHandler := handler.NewBusinessHandler(businessService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	e.Use(middleware.WithSession(sessions))

	// --- Public routes ---
	e.POST("/signup", requestHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Authenticated, any role ---
	authed := e.Group("", middleware.Require(authz.Authenticated()))
	authed.GET("/me", authHandler.Me)
	authed.PUT("/me", userHandler.UpdateMe)
	authed.GET("/view-mode", authHandler.SetViewMode)
	authed.GET("/messages", messageHandler.Inbox)
	authed.POST("/messages", messageHandler.Send)
	authed.POST("/messages/:id/read", messageHandler.MarkRead)
	authed.POST("/uploads", uploadHandler.Upload)
	authed.GET("/competitions", competitionHandler.List)
	authed.POST("/competitions/:id/entries", competitionHandler.Enter)

	// --- Request review: admin, or internal staff holding the approval flag ---
	review := e.Group("/requests", middleware.Require(authz.AnyOf(
		authz.MinRole(domain.RoleAdmin),
		authz.RoleWithFlag(domain.RoleInternal, domain.FlagApproveRequests),
	)))
	review.GET("", requestHandler.ListPending)
	review.POST("/:id/approve", requestHandler.Approve)
	review.POST("/:id/deny", requestHandler.Deny)

	// --- Internal staff and up ---
	staff := e.Group("", middleware.Require(authz.MinRole(domain.RoleInternal)))
	staff.GET("/competitions/:id/entries", competitionHandler.Entries)

	// --- Admin only ---
	admin := e.Group("/admin", middleware.Require(authz.MinRole(domain.RoleAdmin)))
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.UpdateAccess)
	admin.GET("/businesses", businessHandler.List)
	admin.POST("/businesses", businessHandler.Create)
	admin.GET("/businesses/:id", businessHandler.Get)
	admin.PUT("/businesses/:id", businessHandler.Update)
	admin.POST("/businesses/:id/archive", businessHandler.Archive)
	admin.POST("/competitions", competitionHandler.Create)

	// --- Uploaded blobs ---
	e.Static("/files", deps.Config.Upload.Dir)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)
	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/healthz/ready", readinessHandler.Readiness)

	return e, competitionService, nil
}
