// Package di wires configuration, drivers, usecases and the HTTP layer into
// a runnable dashboard.
package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"identity-dashboard/app/config"
	"identity-dashboard/app/driver/kratos"
	"identity-dashboard/app/driver/openstackapi"
	"identity-dashboard/app/driver/postgres"
	"identity-dashboard/app/driver/rediscache"
	"identity-dashboard/app/port"
	"identity-dashboard/app/rest"
	"identity-dashboard/app/rest/handlers"
	"identity-dashboard/app/usecase"
	"identity-dashboard/app/utils/validator"
	"identity-dashboard/app/web"
)

// Container holds all dependencies for the application.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	Identity    *openstackapi.IdentityService
	Compute     *openstackapi.ComputeService
	Volume      *openstackapi.VolumeService
	Network     *openstackapi.NetworkService
	DB          *postgres.DB
	DomainCache *rediscache.DomainCache

	// Web plumbing
	Renderer *web.Renderer
	Sessions *web.SessionManager

	// Usecases
	Projects   *usecase.ProjectUsecase
	Membership *usecase.MembershipUsecase
	Quotas     *usecase.QuotaUsecase
	Usage      *usecase.UsageUsecase

	healthChecks map[string]handlers.HealthCheckFunc
}

// NewContainer creates and initializes the dependency container. Optional
// backends (network quotas, audit store, domain cache, Kratos directory)
// are wired only when configured.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config:       cfg,
		Logger:       logger,
		healthChecks: make(map[string]handlers.HealthCheckFunc),
	}

	var err error

	container.Identity, err = openstackapi.NewIdentityService(
		cfg.IdentityURL, cfg.ServiceToken, cfg.Settings.PageSize, cfg.Settings.DefaultRole, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity service: %w", err)
	}
	container.healthChecks["identity"] = container.Identity.HealthCheck

	container.Compute, err = openstackapi.NewComputeService(cfg.ComputeURL, cfg.ServiceToken, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize compute service: %w", err)
	}
	container.healthChecks["compute"] = container.Compute.HealthCheck

	container.Volume, err = openstackapi.NewVolumeService(cfg.VolumeURL, cfg.ServiceToken, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize volume service: %w", err)
	}
	container.healthChecks["volume"] = container.Volume.HealthCheck

	var network port.NetworkClient
	if cfg.NetworkURL != "" {
		container.Network, err = openstackapi.NewNetworkService(cfg.NetworkURL, cfg.ServiceToken, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize network service: %w", err)
		}
		container.healthChecks["network"] = container.Network.HealthCheck
		network = container.Network
	}

	var audit port.AuditRepository
	if cfg.AuditEnabled() {
		container.DB, err = postgres.NewConnection(cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize audit database: %w", err)
		}
		container.healthChecks["database"] = container.DB.HealthCheck
		audit = postgres.NewAuditRepository(container.DB.Pool(), logger)
	}

	var domains port.DomainLookup = container.Identity
	if cfg.RedisURL != "" {
		container.DomainCache, err = rediscache.NewDomainCache(cfg.RedisURL, container.Identity, 0, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize domain cache: %w", err)
		}
		domains = container.DomainCache
	}

	var users port.UserDirectory = container.Identity
	if cfg.KratosAdminURL != "" {
		directory, err := kratos.NewUserDirectory(cfg.KratosAdminURL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize kratos directory: %w", err)
		}
		container.healthChecks["kratos"] = directory.HealthCheck
		users = directory
	}

	container.Renderer, err = web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize template renderer: %w", err)
	}
	container.Sessions = web.NewSessionManager(cfg.SessionSecret, cfg.SessionTimeout)

	container.Projects = usecase.NewProjectUsecase(container.Identity, domains, audit, logger)
	container.Membership = usecase.NewMembershipUsecase(container.Identity, users, logger)
	container.Quotas = usecase.NewQuotaUsecase(
		container.Compute, container.Volume, network, audit,
		cfg.Settings.DisabledQuotas, cfg.Settings.EnableNetworkQuotas, logger)
	container.Usage = usecase.NewUsageUsecase(container.Compute, cfg.Settings.OverviewDaysRange, logger)

	logger.Info("container initialized",
		"network_quotas", network != nil,
		"audit", audit != nil,
		"domain_cache", container.DomainCache != nil)

	return container, nil
}

// CreateRouter creates the fully configured Echo router.
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:       c.Logger,
		Renderer:     c.Renderer,
		Sessions:     c.Sessions,
		Projects:     c.Projects,
		Membership:   c.Membership,
		Quotas:       c.Quotas,
		Usage:        c.Usage,
		Validator:    validator.New(),
		Settings:     c.Config.Settings,
		HealthChecks: c.healthChecks,
	})
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.DomainCache != nil {
		if err := c.DomainCache.Close(); err != nil {
			c.Logger.Warn("failed to close domain cache", "error", err)
		}
	}
	c.Logger.Info("container closed")
	return nil
}
