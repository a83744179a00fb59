package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"identity-dashboard/app/rest/middleware"
	"identity-dashboard/app/rest/workflows"
	"identity-dashboard/app/usecase"
	"identity-dashboard/app/utils/validator"
	"identity-dashboard/app/web"
)

// QuotaHandler serves the project quota editor.
type QuotaHandler struct {
	quotas    *usecase.QuotaUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewQuotaHandler creates a new quota handler
func NewQuotaHandler(quotas *usecase.QuotaUsecase, v *validator.Validator, logger *slog.Logger) *QuotaHandler {
	return &QuotaHandler{quotas: quotas, validator: v, logger: logger}
}

// Form renders the quota editor pre-filled with the project's current limits.
func (h *QuotaHandler) Form(c echo.Context) error {
	ctx := c.Request().Context()
	projectID := c.Param("id")

	current, err := h.quotas.Quotas(ctx, projectID)
	if err != nil {
		h.logger.Error("failed to get quotas", "project_id", projectID, "error", err)
		web.Error(c, "Unable to retrieve project quotas.")
		return c.Redirect(http.StatusFound, indexURL)
	}

	page := workflows.QuotaFormPage(
		indexURL+"/"+projectID+"/update_quotas",
		current,
		h.quotas.NetworkQuotasEnabled(ctx),
	)
	page.Messages = web.Drain(c)
	page.CSRFToken = middleware.CSRFToken(c)
	return c.Render(http.StatusOK, "workflow.html", page)
}

// Submit applies the edited limits. Every failing service flashes its own
// error plus one summary, matching the per-step reporting of the wizard.
func (h *QuotaHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	session := web.GetSession(c)
	projectID := c.Param("id")

	networkEnabled := h.quotas.NetworkQuotasEnabled(ctx)

	submitted, fieldErrs, err := workflows.BindQuotaInput(c, networkEnabled)
	if err != nil {
		web.Error(c, "Invalid form submission.")
		return c.Redirect(http.StatusFound, indexURL)
	}

	wf := workflows.NewUpdateQuota(h.quotas, h.validator, projectID, submitted, session.UserID, networkEnabled, h.logger)
	fieldErrs = append(fieldErrs, wf.Validate()...)

	if len(fieldErrs) > 0 {
		page := workflows.QuotaFormPage(indexURL+"/"+projectID+"/update_quotas", submitted, networkEnabled)
		workflows.ApplyFieldErrors(page, fieldErrs)
		page.Messages = web.Drain(c)
		page.CSRFToken = middleware.CSRFToken(c)
		return c.Render(http.StatusOK, "workflow.html", page)
	}

	errs := wf.Handle(ctx)
	for _, err := range errs {
		web.Error(c, "%s", err.Error())
	}
	if len(errs) > 0 {
		web.Error(c, "Unable to modify quotas of project.")
	} else {
		web.Success(c, "%s", wf.SuccessMessage)
	}
	return c.Redirect(http.StatusFound, wf.SuccessURL)
}
