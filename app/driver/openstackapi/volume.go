package openstackapi

import (
	"context"
	"log/slog"
	"net/url"

	"identity-dashboard/app/domain"
)

// VolumeService implements port.VolumeClient against a cinder-shaped
// block-storage API.
type VolumeService struct {
	client *Client
	logger *slog.Logger
}

// NewVolumeService creates the block-storage client.
func NewVolumeService(baseURL, token string, logger *slog.Logger) (*VolumeService, error) {
	client, err := NewClient("volume", baseURL, token, logger)
	if err != nil {
		return nil, err
	}
	return &VolumeService{client: client, logger: logger.With("service", "volume")}, nil
}

// HealthCheck reports whether the block-storage service answers.
func (s *VolumeService) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

// QuotaGet fetches a project's block-storage quota limits.
func (s *VolumeService) QuotaGet(ctx context.Context, projectID string) (domain.QuotaSet, error) {
	var result struct {
		QuotaSet map[string]interface{} `json:"quota_set"`
	}
	if err := s.client.get(ctx, "/os-quota-sets/"+projectID, nil, &result); err != nil {
		return nil, err
	}
	return quotaSetFromDoc(result.QuotaSet), nil
}

// QuotaUpdate applies new block-storage quota limits.
func (s *VolumeService) QuotaUpdate(ctx context.Context, projectID string, quotas domain.QuotaSet) error {
	body := map[string]interface{}{"quota_set": quotas}
	if err := s.client.put(ctx, "/os-quota-sets/"+projectID, body, nil); err != nil {
		return err
	}
	s.logger.Info("volume quotas updated", "project_id", projectID, "fields", len(quotas))
	return nil
}

// QuotaUsages fetches per-resource consumption against the current limits.
func (s *VolumeService) QuotaUsages(ctx context.Context, projectID string) (domain.QuotaUsageMap, error) {
	var result struct {
		QuotaSet map[string]struct {
			InUse    int64 `json:"in_use"`
			Reserved int64 `json:"reserved"`
			Limit    int64 `json:"limit"`
		} `json:"quota_set"`
	}
	query := url.Values{"usage": {"true"}}
	if err := s.client.get(ctx, "/os-quota-sets/"+projectID, query, &result); err != nil {
		return nil, err
	}
	usages := domain.QuotaUsageMap{}
	for name, u := range result.QuotaSet {
		usages[name] = domain.QuotaUsage{
			Used:  u.InUse + u.Reserved,
			Limit: u.Limit,
		}
	}
	return usages, nil
}
