package port

//go:generate mockgen -source=compute_port.go -destination=../mocks/mock_compute_port.go

import (
	"context"
	"time"

	"identity-dashboard/app/domain"
)

// ComputeClient is the compute-service API surface the panel consumes.
type ComputeClient interface {
	QuotaGet(ctx context.Context, projectID string) (domain.QuotaSet, error)
	QuotaUpdate(ctx context.Context, projectID string, quotas domain.QuotaSet) error
	QuotaUsages(ctx context.Context, projectID string) (domain.QuotaUsageMap, error)
	UsageGet(ctx context.Context, projectID string, start, end time.Time) (*domain.ProjectUsage, error)
	ExtensionSupported(ctx context.Context, name string) (bool, error)
}

// VolumeClient is the block-storage API surface the panel consumes.
type VolumeClient interface {
	QuotaGet(ctx context.Context, projectID string) (domain.QuotaSet, error)
	QuotaUpdate(ctx context.Context, projectID string, quotas domain.QuotaSet) error
	QuotaUsages(ctx context.Context, projectID string) (domain.QuotaUsageMap, error)
}

// NetworkClient is the network-service API surface the panel consumes.
type NetworkClient interface {
	QuotaGet(ctx context.Context, projectID string) (domain.QuotaSet, error)
	QuotaUpdate(ctx context.Context, projectID string, quotas domain.QuotaSet) error
	QuotaUsages(ctx context.Context, projectID string) (domain.QuotaUsageMap, error)
	QuotasExtensionSupported(ctx context.Context) (bool, error)
}
