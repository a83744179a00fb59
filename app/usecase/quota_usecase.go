package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/port"
	"identity-dashboard/app/utils/logger"
)

// QuotaUsecase aggregates and edits a project's resource quotas across the
// compute, block-storage and network services.
type QuotaUsecase struct {
	compute port.ComputeClient
	volume  port.VolumeClient
	network port.NetworkClient
	audit   port.AuditRepository

	// disabled lists quota resource names hidden from this deployment.
	disabled []string
	// networkQuotas gates the network quota step; the network service must
	// also report the quotas extension as supported.
	networkQuotas bool

	logger *slog.Logger
}

// NewQuotaUsecase creates a new quota usecase.
func NewQuotaUsecase(
	compute port.ComputeClient,
	volume port.VolumeClient,
	network port.NetworkClient,
	audit port.AuditRepository,
	disabled []string,
	networkQuotas bool,
	logger *slog.Logger,
) *QuotaUsecase {
	return &QuotaUsecase{
		compute:       compute,
		volume:        volume,
		network:       network,
		audit:         audit,
		disabled:      disabled,
		networkQuotas: networkQuotas,
		logger:        logger.With("component", "quota_usecase"),
	}
}

// NetworkQuotasEnabled reports whether the network quota step should appear:
// the deployment enables it and the network service supports quota editing.
func (u *QuotaUsecase) NetworkQuotasEnabled(ctx context.Context) bool {
	if !u.networkQuotas || u.network == nil {
		return false
	}
	supported, err := u.network.QuotasExtensionSupported(ctx)
	if err != nil {
		u.logger.Warn("network quota extension check failed", "error", err)
		return false
	}
	return supported
}

// DisabledQuotas returns the resource names hidden from the workflow.
func (u *QuotaUsecase) DisabledQuotas() []string {
	return u.disabled
}

// Quotas fetches the project's current limits from every quota-bearing
// service in parallel and merges them, dropping disabled resources.
func (u *QuotaUsecase) Quotas(ctx context.Context, projectID string) (domain.QuotaSet, error) {
	var (
		mu     sync.Mutex
		merged = domain.QuotaSet{}
	)
	collect := func(qs domain.QuotaSet) {
		mu.Lock()
		defer mu.Unlock()
		merged.Merge(qs)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		qs, err := u.compute.QuotaGet(gctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to get compute quotas: %w", err)
		}
		collect(qs)
		return nil
	})
	g.Go(func() error {
		qs, err := u.volume.QuotaGet(gctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to get volume quotas: %w", err)
		}
		collect(qs)
		return nil
	})
	if u.NetworkQuotasEnabled(ctx) {
		g.Go(func() error {
			qs, err := u.network.QuotaGet(gctx, projectID)
			if err != nil {
				return fmt.Errorf("failed to get network quotas: %w", err)
			}
			collect(qs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merged.WithoutDisabled(u.disabled), nil
}

// quotaService is one update target in the per-service update pass.
type quotaService struct {
	name   string
	fields []string
	usages func(ctx context.Context, projectID string) (domain.QuotaUsageMap, error)
	update func(ctx context.Context, projectID string, quotas domain.QuotaSet) error
}

// UpdateQuotas validates and applies the submitted limits, one service at a
// time. A failing service does not stop the others; every failure comes back
// as its own error so the view can message each one.
func (u *QuotaUsecase) UpdateQuotas(ctx context.Context, projectID, actorID string, updated domain.QuotaSet) []error {
	services := []quotaService{
		{"compute", domain.ComputeQuotaFields, u.compute.QuotaUsages, u.compute.QuotaUpdate},
		{"volume", domain.VolumeQuotaFields, u.volume.QuotaUsages, u.volume.QuotaUpdate},
	}
	if u.NetworkQuotasEnabled(ctx) {
		services = append(services,
			quotaService{"network", domain.NetworkQuotaFields, u.network.QuotaUsages, u.network.QuotaUpdate})
	}

	log := logger.WithProject(u.logger, projectID)

	var errs []error
	applied := false
	for _, svc := range services {
		fields := updated.Subset(svc.fields).WithoutDisabled(u.disabled)
		if len(fields) == 0 {
			continue
		}

		usages, err := svc.usages(ctx, projectID)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to get %s quota usage: %w", svc.name, err))
			continue
		}
		if err := fields.ValidateAgainstUsage(usages); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s quota: %w", svc.name, err))
			continue
		}
		if err := svc.update(ctx, projectID, fields); err != nil {
			errs = append(errs, fmt.Errorf("failed to update %s quotas: %w", svc.name, err))
			continue
		}
		log.Info("quotas updated", "quota_service", svc.name, "fields", len(fields))
		applied = true
	}

	if applied && u.audit != nil {
		entry := domain.NewAuditEntry(projectID, actorID, domain.AuditQuotaUpdated, "")
		if err := u.audit.Record(ctx, entry); err != nil {
			log.Warn("failed to record audit entry", "error", err)
		}
	}

	return errs
}
