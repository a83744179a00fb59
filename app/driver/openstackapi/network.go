package openstackapi

import (
	"context"
	"log/slog"

	"identity-dashboard/app/domain"
)

// quotasExtensionAlias is the neutron extension gating quota editing.
const quotasExtensionAlias = "quotas"

// NetworkService implements port.NetworkClient against a neutron-shaped
// network API.
type NetworkService struct {
	client *Client
	logger *slog.Logger
}

// NewNetworkService creates the network client.
func NewNetworkService(baseURL, token string, logger *slog.Logger) (*NetworkService, error) {
	client, err := NewClient("network", baseURL, token, logger)
	if err != nil {
		return nil, err
	}
	return &NetworkService{client: client, logger: logger.With("service", "network")}, nil
}

// HealthCheck reports whether the network service answers.
func (s *NetworkService) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

// QuotaGet fetches a project's network quota limits.
func (s *NetworkService) QuotaGet(ctx context.Context, projectID string) (domain.QuotaSet, error) {
	var result struct {
		Quota map[string]int64 `json:"quota"`
	}
	if err := s.client.get(ctx, "/v2.0/quotas/"+projectID, nil, &result); err != nil {
		return nil, err
	}
	quotas := domain.QuotaSet{}
	for name, limit := range result.Quota {
		quotas[name] = limit
	}
	return quotas, nil
}

// QuotaUpdate applies new network quota limits.
func (s *NetworkService) QuotaUpdate(ctx context.Context, projectID string, quotas domain.QuotaSet) error {
	body := map[string]interface{}{"quota": quotas}
	if err := s.client.put(ctx, "/v2.0/quotas/"+projectID, body, nil); err != nil {
		return err
	}
	s.logger.Info("network quotas updated", "project_id", projectID, "fields", len(quotas))
	return nil
}

// QuotaUsages fetches per-resource consumption against the current limits.
func (s *NetworkService) QuotaUsages(ctx context.Context, projectID string) (domain.QuotaUsageMap, error) {
	var result struct {
		Quota map[string]struct {
			Used     int64 `json:"used"`
			Reserved int64 `json:"reserved"`
			Limit    int64 `json:"limit"`
		} `json:"quota"`
	}
	if err := s.client.get(ctx, "/v2.0/quotas/"+projectID+"/details.json", nil, &result); err != nil {
		return nil, err
	}
	usages := domain.QuotaUsageMap{}
	for name, u := range result.Quota {
		usages[name] = domain.QuotaUsage{
			Used:  u.Used + u.Reserved,
			Limit: u.Limit,
		}
	}
	return usages, nil
}

// QuotasExtensionSupported reports whether the network API allows editing
// quotas at all.
func (s *NetworkService) QuotasExtensionSupported(ctx context.Context) (bool, error) {
	var result struct {
		Extensions []struct {
			Alias string `json:"alias"`
		} `json:"extensions"`
	}
	if err := s.client.get(ctx, "/v2.0/extensions", nil, &result); err != nil {
		return false, err
	}
	for _, ext := range result.Extensions {
		if ext.Alias == quotasExtensionAlias {
			return true, nil
		}
	}
	return false, nil
}
