package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	complaintusecases "ecomplaint/internal/application/complaint/usecases"
	userusecases "ecomplaint/internal/application/user/usecases"
	"ecomplaint/internal/infrastructure/auth"
	"ecomplaint/internal/infrastructure/config"
	"ecomplaint/internal/infrastructure/persistence"
	authhandlers "ecomplaint/internal/interfaces/http/handlers/auth"
	complainthandlers "ecomplaint/internal/interfaces/http/handlers/complaint"
	"ecomplaint/internal/interfaces/http/middleware"
	"ecomplaint/internal/interfaces/http/routes"
	"ecomplaint/internal/shared/logger"
)

// Router wires the HTTP surface: stores, use cases, handlers and routes.
type Router struct {
	engine           *gin.Engine
	authHandler      *authhandlers.Handler
	complaintHandler *complainthandlers.Handler
	authMiddleware   *middleware.AuthMiddleware
	ensureAdminUC    *userusecases.EnsureAdminUseCase
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	userStore, err := persistence.NewUserStore(cfg.Storage.DataDir, log)
	if err != nil {
		return nil, err
	}
	complaintStore, err := persistence.NewComplaintStore(cfg.Storage.DataDir, log)
	if err != nil {
		return nil, err
	}
	evidenceStore, err := persistence.NewFileEvidenceStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	registerUC := userusecases.NewRegisterUseCase(userStore, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userStore, hasher, jwtService, log)
	ensureAdminUC := userusecases.NewEnsureAdminUseCase(userStore, hasher, cfg.Admin, log)

	fileComplaintUC := complaintusecases.NewFileComplaintUseCase(complaintStore, userStore, evidenceStore, log)
	listMineUC := complaintusecases.NewListMyComplaintsUseCase(complaintStore, log)
	listAllUC := complaintusecases.NewListAllComplaintsUseCase(complaintStore, log)
	getComplaintUC := complaintusecases.NewGetComplaintUseCase(complaintStore, log)
	getEvidenceUC := complaintusecases.NewGetEvidenceUseCase(complaintStore, evidenceStore, log)
	updateUC := complaintusecases.NewUpdateComplaintUseCase(complaintStore, cfg.Workflow.StrictTransitions, log)
	dashboardUC := complaintusecases.NewGetDashboardUseCase(complaintStore, log)

	authHandler := authhandlers.NewHandler(registerUC, loginUC, jwtService.AccessExpMinutes())
	complaintHandler := complainthandlers.NewHandler(
		fileComplaintUC,
		listMineUC,
		listAllUC,
		getComplaintUC,
		getEvidenceUC,
		updateUC,
		dashboardUC,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:           engine,
		authHandler:      authHandler,
		complaintHandler: complaintHandler,
		authMiddleware:   authMiddleware,
		ensureAdminUC:    ensureAdminUC,
	}, nil
}

// Setup registers middleware and routes on the engine.
func (r *Router) Setup(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupComplaintRoutes(r.engine, &routes.ComplaintRouteConfig{
		ComplaintHandler: r.complaintHandler,
		AuthMiddleware:   r.authMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		ComplaintHandler: r.complaintHandler,
		AuthMiddleware:   r.authMiddleware,
	})
}

// EnsureAdmin bootstraps the administrator account if it does not exist.
func (r *Router) EnsureAdmin(ctx context.Context) error {
	return r.ensureAdminUC.Execute(ctx)
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
