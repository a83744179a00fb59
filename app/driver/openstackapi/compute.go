package openstackapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"identity-dashboard/app/domain"
)

// usageTimeLayout is the timestamp format the usage endpoint accepts.
const usageTimeLayout = "2006-01-02T15:04:05"

// ComputeService implements port.ComputeClient against a nova-shaped
// compute API.
type ComputeService struct {
	client *Client
	logger *slog.Logger
}

// NewComputeService creates the compute client.
func NewComputeService(baseURL, token string, logger *slog.Logger) (*ComputeService, error) {
	client, err := NewClient("compute", baseURL, token, logger)
	if err != nil {
		return nil, err
	}
	return &ComputeService{client: client, logger: logger.With("service", "compute")}, nil
}

// HealthCheck reports whether the compute service answers.
func (s *ComputeService) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

// QuotaGet fetches a project's compute quota limits. The quota_set body
// mixes numeric limits with a string "id" field, so non-numbers are skipped.
func (s *ComputeService) QuotaGet(ctx context.Context, projectID string) (domain.QuotaSet, error) {
	var result struct {
		QuotaSet map[string]interface{} `json:"quota_set"`
	}
	if err := s.client.get(ctx, "/os-quota-sets/"+projectID, nil, &result); err != nil {
		return nil, err
	}
	return quotaSetFromDoc(result.QuotaSet), nil
}

// QuotaUpdate applies new compute quota limits.
func (s *ComputeService) QuotaUpdate(ctx context.Context, projectID string, quotas domain.QuotaSet) error {
	body := map[string]interface{}{"quota_set": quotas}
	if err := s.client.put(ctx, "/os-quota-sets/"+projectID, body, nil); err != nil {
		return err
	}
	s.logger.Info("compute quotas updated", "project_id", projectID, "fields", len(quotas))
	return nil
}

// QuotaUsages fetches per-resource consumption against the current limits.
func (s *ComputeService) QuotaUsages(ctx context.Context, projectID string) (domain.QuotaUsageMap, error) {
	var result struct {
		QuotaSet map[string]struct {
			InUse    int64 `json:"in_use"`
			Reserved int64 `json:"reserved"`
			Limit    int64 `json:"limit"`
		} `json:"quota_set"`
	}
	if err := s.client.get(ctx, "/os-quota-sets/"+projectID+"/detail", nil, &result); err != nil {
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

// UsageGet fetches the per-instance usage report for a time window.
func (s *ComputeService) UsageGet(ctx context.Context, projectID string, start, end time.Time) (*domain.ProjectUsage, error) {
	query := url.Values{}
	query.Set("start", start.Format(usageTimeLayout))
	query.Set("end", end.Format(usageTimeLayout))

	var result struct {
		TenantUsage struct {
			ServerUsages []struct {
				Name   string  `json:"name"`
				VCPUs  int     `json:"vcpus"`
				RAMMB  int     `json:"memory_mb"`
				DiskGB int     `json:"local_gb"`
				Hours  float64 `json:"hours"`
				Uptime int64   `json:"uptime"`
				State  string  `json:"state"`
			} `json:"server_usages"`
			TotalVCPUs float64 `json:"total_vcpus_usage"`
			TotalRAMMB float64 `json:"total_memory_mb_usage"`
			TotalDisk  float64 `json:"total_local_gb_usage"`
			TotalHours float64 `json:"total_hours"`
		} `json:"tenant_usage"`
	}
	if err := s.client.get(ctx, "/os-simple-tenant-usage/"+projectID, query, &result); err != nil {
		return nil, err
	}

	usage := &domain.ProjectUsage{
		ProjectID:  projectID,
		Start:      start,
		End:        end,
		TotalVCPUs: result.TenantUsage.TotalVCPUs,
		TotalRAMMB: result.TenantUsage.TotalRAMMB,
		TotalDisk:  result.TenantUsage.TotalDisk,
		TotalHours: result.TenantUsage.TotalHours,
	}
	for _, su := range result.TenantUsage.ServerUsages {
		usage.Servers = append(usage.Servers, domain.ServerUsage{
			Name:   su.Name,
			VCPUs:  su.VCPUs,
			RAMMB:  su.RAMMB,
			DiskGB: su.DiskGB,
			Hours:  su.Hours,
			Uptime: su.Uptime,
			State:  su.State,
		})
	}
	return usage, nil
}

// ExtensionSupported reports whether the compute API exposes a named
// extension.
func (s *ComputeService) ExtensionSupported(ctx context.Context, name string) (bool, error) {
	var result struct {
		Extensions []struct {
			Name  string `json:"name"`
			Alias string `json:"alias"`
		} `json:"extensions"`
	}
	if err := s.client.get(ctx, "/extensions", nil, &result); err != nil {
		return false, fmt.Errorf("failed to list compute extensions: %w", err)
	}
	for _, ext := range result.Extensions {
		if ext.Name == name || ext.Alias == name {
			return true, nil
		}
	}
	return false, nil
}
