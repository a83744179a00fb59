package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"identity-dashboard/app/config"
	"identity-dashboard/app/rest/handlers"
	custommw "identity-dashboard/app/rest/middleware"
	"identity-dashboard/app/usecase"
	apperrors "identity-dashboard/app/utils/errors"
	"identity-dashboard/app/utils/security"
	"identity-dashboard/app/utils/validator"
	"identity-dashboard/app/web"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger   *slog.Logger
	Renderer *web.Renderer
	Sessions *web.SessionManager

	Projects   *usecase.ProjectUsecase
	Membership *usecase.MembershipUsecase
	Quotas     *usecase.QuotaUsecase
	Usage      *usecase.UsageUsecase

	Validator *validator.Validator
	Settings  config.PanelSettings

	// HealthChecks probe the backing services for the readiness endpoint.
	HealthChecks map[string]handlers.HealthCheckFunc
}

// NewRouter creates and configures the Echo router
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = cfg.Renderer

	// Create handlers
	projectsHandler := handlers.NewProjectsHandler(cfg.Projects, cfg.Membership, cfg.Validator, cfg.Settings, cfg.Logger)
	quotaHandler := handlers.NewQuotaHandler(cfg.Quotas, cfg.Validator, cfg.Logger)
	usageHandler := handlers.NewUsageHandler(cfg.Usage, cfg.Logger)
	healthHandler := handlers.NewHealthHandler(cfg.HealthChecks, cfg.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(cfg.Sessions, cfg.Logger)
	rateLimiter := custommw.NewRateLimiter()
	screen := security.NewRequestScreen(cfg.Logger)

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(screenRequests(screen))

	// Health endpoints (no session required)
	v1 := e.Group("/v1")
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Project panel. Every page needs a session; mutating pages need the
	// admin flag, and form posts carry the CSRF token.
	projects := e.Group("/identity/projects")
	projects.Use(authMiddleware.RequireSession())
	projects.Use(custommw.CSRF())

	projects.GET("", projectsHandler.Index)

	admin := projects.Group("")
	admin.Use(authMiddleware.RequireAdmin())
	admin.GET("/create", projectsHandler.CreateForm)
	admin.POST("/create", projectsHandler.CreateSubmit)
	admin.GET("/:id", projectsHandler.Detail)
	admin.GET("/:id/update", projectsHandler.UpdateForm)
	admin.POST("/:id/update", projectsHandler.UpdateSubmit)
	admin.POST("/:id/delete", projectsHandler.Delete)
	admin.GET("/:id/update_quotas", quotaHandler.Form)
	admin.POST("/:id/update_quotas", quotaHandler.Submit)
	admin.GET("/:id/usage", usageHandler.Report)

	return e
}

// screenRequests rejects requests whose query parameters look like injection
// probes, and blocks IPs that keep sending them.
func screenRequests(screen *security.RequestScreen) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if screen.Blocked(ip) {
				appErr := apperrors.New(apperrors.ErrCodeForbidden, "Access denied by security policy")
				return c.JSON(appErr.StatusCode, appErr)
			}
			if screen.Suspicious(ip, c.Request().URL.Path, c.QueryParams()) {
				appErr := apperrors.New(apperrors.ErrCodeBadRequest, "Request rejected")
				return c.JSON(appErr.StatusCode, appErr)
			}
			return next(c)
		}
	}
}
