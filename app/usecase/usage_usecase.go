package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/port"
)

// simpleUsageExtension is the compute extension the usage report depends on.
const simpleUsageExtension = "SimpleTenantUsage"

// UsageUsecase builds per-project usage reports from the compute service.
type UsageUsecase struct {
	compute port.ComputeClient
	// daysRange overrides the default first-of-month report window when > 0.
	daysRange int
	logger    *slog.Logger
}

// NewUsageUsecase creates a new usage usecase.
func NewUsageUsecase(compute port.ComputeClient, daysRange int, logger *slog.Logger) *UsageUsecase {
	return &UsageUsecase{
		compute:   compute,
		daysRange: daysRange,
		logger:    logger.With("component", "usage_usecase"),
	}
}

// Report builds the usage report ending at now. When the compute service
// does not expose the usage extension, an empty report for the window is
// returned instead of an error.
func (u *UsageUsecase) Report(ctx context.Context, projectID string, now time.Time) (*domain.ProjectUsage, error) {
	start, end := domain.UsageRange(now, u.daysRange)

	supported, err := u.compute.ExtensionSupported(ctx, simpleUsageExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to check usage extension: %w", err)
	}
	if !supported {
		u.logger.Info("usage extension not supported, returning empty report", "project_id", projectID)
		return &domain.ProjectUsage{ProjectID: projectID, Start: start, End: end}, nil
	}

	usage, err := u.compute.UsageGet(ctx, projectID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage for project %s: %w", projectID, err)
	}
	usage.ProjectID = projectID
	usage.Start = start
	usage.End = end
	return usage, nil
}
