package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"identity-dashboard/app/usecase"
	"identity-dashboard/app/web"
)

// UsageHandler serves the per-project usage report, as a page or a CSV
// download via ?format=csv.
type UsageHandler struct {
	usage  *usecase.UsageUsecase
	logger *slog.Logger
	// now is swappable so report windows are deterministic under test.
	now func() time.Time
}

// NewUsageHandler creates a new usage handler
func NewUsageHandler(usage *usecase.UsageUsecase, logger *slog.Logger) *UsageHandler {
	return &UsageHandler{usage: usage, logger: logger, now: time.Now}
}

// Report renders the usage report for one project.
func (h *UsageHandler) Report(c echo.Context) error {
	ctx := c.Request().Context()
	projectID := c.Param("id")

	report, err := h.usage.Report(ctx, projectID, h.now())
	if err != nil {
		h.logger.Error("failed to build usage report", "project_id", projectID, "error", err)
		web.Error(c, "Unable to retrieve usage information.")
		return c.Redirect(http.StatusFound, indexURL)
	}

	if c.QueryParam("format") == "csv" {
		var buf bytes.Buffer
		if err := report.WriteCSV(&buf); err != nil {
			h.logger.Error("failed to write usage csv", "project_id", projectID, "error", err)
			web.Error(c, "Unable to export usage information.")
			return c.Redirect(http.StatusFound, indexURL)
		}
		filename := fmt.Sprintf("usage-%s.csv", projectID)
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
	}

	return c.Render(http.StatusOK, "identity/projects/usage.html", map[string]interface{}{
		"ProjectID": projectID,
		"Report":    report,
		"Messages":  web.Drain(c),
	})
}
