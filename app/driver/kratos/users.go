// Package kratos lists Ory Kratos identities as dashboard users, for
// deployments that keep their user records in Kratos instead of the identity
// service.
package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	kratosclient "github.com/ory/kratos-client-go"

	"identity-dashboard/app/domain"
)

// identityPageSize bounds one admin API page.
const identityPageSize = 250

// UserDirectory implements port.UserDirectory against the Kratos admin API.
type UserDirectory struct {
	adminAPI *kratosclient.APIClient
	adminURL string
	logger   *slog.Logger
}

// NewUserDirectory creates a Kratos-backed user directory.
func NewUserDirectory(adminURL string, logger *slog.Logger) (*UserDirectory, error) {
	if !isValidURL(adminURL) {
		return nil, fmt.Errorf("invalid Kratos admin URL: %s", adminURL)
	}

	adminConfig := kratosclient.NewConfiguration()
	adminConfig.Servers = []kratosclient.ServerConfiguration{
		{
			URL: adminURL,
		},
	}
	adminConfig.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
	}

	logger.Info("Kratos user directory initialized", "admin_url", adminURL)

	return &UserDirectory{
		adminAPI: kratosclient.NewAPIClient(adminConfig),
		adminURL: adminURL,
		logger:   logger,
	}, nil
}

// UserList lists Kratos identities as dashboard users. Kratos has no domain
// concept, so domainID only annotates the returned records.
func (d *UserDirectory) UserList(ctx context.Context, domainID string) ([]domain.User, error) {
	identities, _, err := d.adminAPI.IdentityAPI.
		ListIdentities(ctx).
		PageSize(identityPageSize).
		Execute()
	if err != nil {
		d.logger.Error("kratos identity listing failed", "error", err)
		return nil, fmt.Errorf("failed to list kratos identities: %w", err)
	}

	users := make([]domain.User, 0, len(identities))
	for _, identity := range identities {
		user := domain.User{
			ID:       identity.Id,
			DomainID: domainID,
			Enabled:  identityEnabled(identity),
		}
		user.Name, user.Email = identityTraits(identity)
		if user.Name == "" {
			user.Name = identity.Id
		}
		users = append(users, user)
	}

	d.logger.Debug("listed kratos identities", "count", len(users))
	return users, nil
}

// HealthCheck checks if the Kratos admin API is reachable.
func (d *UserDirectory) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, response, err := d.adminAPI.MetadataAPI.GetVersion(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to connect to Kratos admin API: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("Kratos admin API returned status %d", response.StatusCode)
	}
	return nil
}

// identityEnabled reads the identity state; identities without one count as
// active.
func identityEnabled(identity kratosclient.Identity) bool {
	if identity.State == nil {
		return true
	}
	return *identity.State == "active"
}

// identityTraits extracts the display name and email from the identity's
// schema-defined traits. Unknown schemas degrade to empty values.
func identityTraits(identity kratosclient.Identity) (name, email string) {
	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return "", ""
	}

	if v, ok := traits["email"].(string); ok {
		email = v
	}

	switch v := traits["name"].(type) {
	case string:
		name = v
	case map[string]interface{}:
		first, _ := v["first"].(string)
		last, _ := v["last"].(string)
		switch {
		case first != "" && last != "":
			name = first + " " + last
		case first != "":
			name = first
		default:
			name = last
		}
	}

	if name == "" {
		if v, ok := traits["username"].(string); ok {
			name = v
		}
	}
	if name == "" {
		name = email
	}
	return name, email
}

// isValidURL validates if a URL is properly formatted
func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	return parsedURL.Scheme != "" && parsedURL.Host != ""
}
