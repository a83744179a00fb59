package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the identity dashboard
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Backend services
	IdentityURL  string `env:"IDENTITY_URL" required:"true"`
	ComputeURL   string `env:"COMPUTE_URL" required:"true"`
	VolumeURL    string `env:"VOLUME_URL" required:"true"`
	NetworkURL   string `env:"NETWORK_URL"`
	ServiceToken string `env:"SERVICE_TOKEN" required:"true"`

	// Audit log database; the audit trail is disabled when unset
	DatabaseURL string `env:"DATABASE_URL"`

	// Domain lookup cache; caching is disabled when unset
	RedisURL string `env:"REDIS_URL"`

	// Optional Kratos-backed user directory
	KratosAdminURL string `env:"KRATOS_ADMIN_URL"`

	// Session
	SessionSecret  string        `env:"SESSION_SECRET" required:"true"`
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" default:"24h"`

	// Panel settings file (YAML)
	SettingsFile string `env:"SETTINGS_FILE"`
	Settings     PanelSettings

	// Features
	EnableAuditLog bool `env:"ENABLE_AUDIT_LOG" default:"true"`
}

// PanelSettings tunes the projects panel's behavior per deployment.
type PanelSettings struct {
	// FilterFirst defers the project listing until a filter is given.
	FilterFirst bool `yaml:"filter_first"`
	// OverviewDaysRange bounds the usage report window in days; 0 means
	// from the first of the current month.
	OverviewDaysRange int `yaml:"overview_days_range"`
	// PageSize is the project table page length.
	PageSize int `yaml:"page_size"`
	// DefaultRole names the role granted to new project members.
	DefaultRole string `yaml:"default_role"`
	// ProjectTableExtraInfo maps extra project properties to column labels.
	ProjectTableExtraInfo map[string]string `yaml:"project_table_extra_info"`
	// DisabledQuotas hides quota fields this deployment does not expose.
	DisabledQuotas []string `yaml:"disabled_quotas"`
	// EnableNetworkQuotas shows the network quota step when the network
	// service supports it.
	EnableNetworkQuotas bool `yaml:"enable_network_quotas"`
}

// DefaultPanelSettings returns the settings used without a settings file.
func DefaultPanelSettings() PanelSettings {
	return PanelSettings{
		PageSize:            20,
		DefaultRole:         "member",
		EnableNetworkQuotas: true,
	}
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Backend services
	config.IdentityURL = os.Getenv("IDENTITY_URL")
	if config.IdentityURL == "" {
		return nil, fmt.Errorf("IDENTITY_URL is required")
	}
	config.ComputeURL = os.Getenv("COMPUTE_URL")
	if config.ComputeURL == "" {
		return nil, fmt.Errorf("COMPUTE_URL is required")
	}
	config.VolumeURL = os.Getenv("VOLUME_URL")
	if config.VolumeURL == "" {
		return nil, fmt.Errorf("VOLUME_URL is required")
	}
	config.NetworkURL = os.Getenv("NETWORK_URL")
	config.ServiceToken = os.Getenv("SERVICE_TOKEN")
	if config.ServiceToken == "" {
		return nil, fmt.Errorf("SERVICE_TOKEN is required")
	}

	// Optional infrastructure
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	config.RedisURL = os.Getenv("REDIS_URL")
	config.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")

	// Session configuration
	config.SessionSecret = os.Getenv("SESSION_SECRET")
	if config.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	var err error
	sessionTimeoutStr := getEnvOrDefault("SESSION_TIMEOUT", "24h")
	config.SessionTimeout, err = time.ParseDuration(sessionTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TIMEOUT: %w", err)
	}

	// Panel settings
	config.SettingsFile = os.Getenv("SETTINGS_FILE")
	config.Settings, err = loadPanelSettings(config.SettingsFile)
	if err != nil {
		return nil, err
	}

	// Feature flags
	config.EnableAuditLog = getBoolEnv("ENABLE_AUDIT_LOG", true)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadPanelSettings parses the YAML settings file, falling back to defaults
// when no file is configured.
func loadPanelSettings(path string) (PanelSettings, error) {
	settings := DefaultPanelSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	if settings.PageSize <= 0 {
		settings.PageSize = 20
	}
	if settings.DefaultRole == "" {
		settings.DefaultRole = "member"
	}
	return settings, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	// Check port range (1-65535)
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate session secret (minimum 16 bytes of key material)
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("session secret must be at least 16 characters, got: %d", len(c.SessionSecret))
	}

	// Validate session timeout (minimum 1 minute)
	if c.SessionTimeout < time.Minute {
		return fmt.Errorf("session timeout must be at least 1 minute, got: %v", c.SessionTimeout)
	}

	// Validate usage report window
	if c.Settings.OverviewDaysRange < 0 {
		return fmt.Errorf("overview_days_range must not be negative, got: %d", c.Settings.OverviewDaysRange)
	}

	return nil
}

// AuditEnabled reports whether the audit trail should be wired up.
func (c *Config) AuditEnabled() bool {
	return c.EnableAuditLog && c.DatabaseURL != ""
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
