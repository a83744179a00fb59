package workflows

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/usecase"
	"identity-dashboard/app/utils/validator"
	"identity-dashboard/app/workflow"
)

// NewUpdateQuota assembles the quota editor wizard: one step per
// quota-bearing service, with the network step present only when the
// deployment exposes network quotas. submitted holds every parsed limit;
// each step claims its own service's fields.
func NewUpdateQuota(
	quotas *usecase.QuotaUsecase,
	v *validator.Validator,
	projectID string,
	submitted domain.QuotaSet,
	actorID string,
	networkEnabled bool,
	logger *slog.Logger,
) *workflow.Workflow {
	steps := []workflow.Step{
		{
			Slug:  "update_compute_quotas",
			Title: "Compute Quotas",
			Action: &quotaStepAction{
				name:      "compute",
				quotas:    quotas,
				validator: v,
				projectID: projectID,
				fields:    submitted.Subset(domain.ComputeQuotaFields),
				actorID:   actorID,
			},
		},
		{
			Slug:  "update_volume_quotas",
			Title: "Volume Quotas",
			Action: &quotaStepAction{
				name:      "volume",
				quotas:    quotas,
				validator: v,
				projectID: projectID,
				fields:    submitted.Subset(domain.VolumeQuotaFields),
				actorID:   actorID,
			},
		},
	}
	if networkEnabled {
		steps = append(steps, workflow.Step{
			Slug:  "update_network_quotas",
			Title: "Network Quotas",
			Action: &quotaStepAction{
				name:      "network",
				quotas:    quotas,
				validator: v,
				projectID: projectID,
				fields:    submitted.Subset(domain.NetworkQuotaFields),
				actorID:   actorID,
			},
		})
	}

	return workflow.New(
		"update_quotas",
		"Modify Quotas",
		"/identity/projects",
		"Modified project quotas.",
		steps,
		logger,
	)
}

// quotaStepAction validates and applies one service's quota limits.
type quotaStepAction struct {
	name      string
	quotas    *usecase.QuotaUsecase
	validator *validator.Validator
	projectID string
	fields    domain.QuotaSet
	actorID   string
}

func (a *quotaStepAction) Name() string { return a.name + " quotas" }

func (a *quotaStepAction) Validate() []workflow.FieldError {
	var fieldErrs []workflow.FieldError
	for field, limit := range a.fields {
		if err := a.validator.ValidateVar(limit, "quota_limit"); err != nil {
			fieldErrs = append(fieldErrs, workflow.FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s must be -1 (unlimited) or a non-negative number", field),
			})
		}
	}
	return fieldErrs
}

func (a *quotaStepAction) Handle(ctx context.Context) error {
	if len(a.fields) == 0 {
		return nil
	}
	if errs := a.quotas.UpdateQuotas(ctx, a.projectID, a.actorID, a.fields); len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
