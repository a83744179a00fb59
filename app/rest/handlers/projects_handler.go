package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"identity-dashboard/app/config"
	"identity-dashboard/app/rest/middleware"
	"identity-dashboard/app/rest/workflows"
	"identity-dashboard/app/usecase"
	"identity-dashboard/app/utils/validator"
	"identity-dashboard/app/web"
)

const indexURL = "/identity/projects"

// ExtraColumn is a deployment-specific project table column.
type ExtraColumn struct {
	Key   string
	Label string
}

// ProjectsHandler serves the project panel pages: the table, the detail
// view, and the create and update wizards.
type ProjectsHandler struct {
	projects  *usecase.ProjectUsecase
	members   *usecase.MembershipUsecase
	validator *validator.Validator
	settings  config.PanelSettings
	logger    *slog.Logger
}

// NewProjectsHandler creates a new projects handler
func NewProjectsHandler(
	projects *usecase.ProjectUsecase,
	members *usecase.MembershipUsecase,
	v *validator.Validator,
	settings config.PanelSettings,
	logger *slog.Logger,
) *ProjectsHandler {
	return &ProjectsHandler{
		projects:  projects,
		members:   members,
		validator: v,
		settings:  settings,
		logger:    logger,
	}
}

func (h *ProjectsHandler) extraColumns() []ExtraColumn {
	cols := make([]ExtraColumn, 0, len(h.settings.ProjectTableExtraInfo))
	for key, label := range h.settings.ProjectTableExtraInfo {
		cols = append(cols, ExtraColumn{Key: key, Label: label})
	}
	return cols
}

func (h *ProjectsHandler) extraKeys() []string {
	keys := make([]string, 0, len(h.settings.ProjectTableExtraInfo))
	for key := range h.settings.ProjectTableExtraInfo {
		keys = append(keys, key)
	}
	return keys
}

// Index renders the project table. Admins see every project, scoped by the
// session's domain context; members see their own projects.
func (h *ProjectsHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()
	session := web.GetSession(c)
	filter := c.QueryParam("filter")
	marker := c.QueryParam("marker")

	data := map[string]interface{}{
		"DomainContextName": session.DomainContextName,
		"Filter":            filter,
		"CanCreate":         session.Admin,
		"ExtraColumns":      h.extraColumns(),
		"Projects":          []usecase.ProjectRow{},
		"HasMore":           false,
		"Marker":            "",
	}

	// With filter_first on, admins get an empty table until they search.
	if h.settings.FilterFirst && session.Admin && filter == "" {
		data["NeedsFilterFirst"] = true
		data["Messages"] = web.Drain(c)
		return c.Render(http.StatusOK, "identity/projects/index.html", data)
	}

	req := usecase.ListProjectsRequest{
		Admin:         session.Admin,
		DomainContext: session.DomainContext,
		UserID:        session.UserID,
		Marker:        marker,
	}
	if filter != "" {
		req.Filters = map[string]string{"name": filter}
	}

	page, err := h.projects.ListProjects(ctx, req)
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		web.Error(c, "Unable to retrieve project list.")
	} else {
		data["Projects"] = page.Projects
		data["HasMore"] = page.HasMore
		if len(page.Projects) > 0 {
			data["Marker"] = page.Projects[len(page.Projects)-1].ID
		}
	}

	data["Messages"] = web.Drain(c)
	return c.Render(http.StatusOK, "identity/projects/index.html", data)
}

// Detail renders one project. Backend failures flash an error and return to
// the table.
func (h *ProjectsHandler) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	session := web.GetSession(c)
	projectID := c.Param("id")

	project, err := h.projects.GetProject(ctx, projectID, session.Admin)
	if err != nil {
		h.logger.Error("failed to get project", "project_id", projectID, "error", err)
		web.Error(c, "Unable to retrieve project details.")
		return c.Redirect(http.StatusFound, indexURL)
	}

	domainName := project.DomainID
	if d, err := h.projects.GetDomain(ctx, project.DomainID); err == nil {
		domainName = d.Name
	} else {
		h.logger.Warn("failed to resolve domain name", "domain_id", project.DomainID, "error", err)
	}

	entries, err := h.projects.AuditTrail(ctx, projectID, 20)
	if err != nil {
		h.logger.Warn("failed to load audit trail", "project_id", projectID, "error", err)
	}

	return c.Render(http.StatusOK, "identity/projects/detail.html", map[string]interface{}{
		"Project":      project,
		"DomainName":   domainName,
		"AuditEntries": entries,
		"Messages":     web.Drain(c),
	})
}

// CreateForm renders the create project wizard.
func (h *ProjectsHandler) CreateForm(c echo.Context) error {
	ctx := c.Request().Context()
	session := web.GetSession(c)

	domainID := session.DomainContext
	domainName := session.DomainContextName
	if domainID == "" {
		d, err := h.projects.DefaultDomain(ctx)
		if err != nil {
			h.logger.Error("failed to get default domain", "error", err)
			web.Error(c, "Unable to retrieve default domain.")
			return c.Redirect(http.StatusFound, indexURL)
		}
		domainID = d.ID
		domainName = d.Name
	}

	in := workflows.ProjectInput{DomainID: domainID, Enabled: true}

	mc, err := h.members.Context(ctx, domainID, "")
	if err != nil {
		// The info step still renders so the admin can see the failure.
		h.logger.Error("failed to load membership context", "error", err)
		web.Error(c, "Unable to retrieve default role.")
	}

	page := workflows.ProjectFormPage(workflows.ProjectPageConfig{
		Slug:        "create_project",
		Title:       "Create Project",
		Action:      indexURL + "/create",
		SubmitLabel: "Create Project",
		Input:       in,
		DomainName:  domainName,
		ExtraLabels: h.settings.ProjectTableExtraInfo,
		Members:     mc,
	})
	page.Messages = web.Drain(c)
	page.CSRFToken = middleware.CSRFToken(c)
	return c.Render(http.StatusOK, "workflow.html", page)
}

// CreateSubmit handles the create wizard submission.
func (h *ProjectsHandler) CreateSubmit(c echo.Context) error {
	ctx := c.Request().Context()
	session := web.GetSession(c)

	domainID := c.FormValue("domain_id")
	mc, err := h.members.Context(ctx, domainID, "")
	if err != nil {
		h.logger.Error("failed to load membership context", "error", err)
		web.Error(c, "Unable to retrieve default role.")
		return c.Redirect(http.StatusFound, indexURL)
	}

	in, err := workflows.BindProjectInput(c, h.extraKeys(), mc.Roles)
	if err != nil {
		web.Error(c, "Invalid form submission.")
		return c.Redirect(http.StatusFound, indexURL)
	}

	wf := workflows.NewCreateProject(h.projects, h.members, h.validator, in, session.UserID, h.logger)
	fieldErrs, errs := wf.Run(ctx)

	if len(fieldErrs) > 0 {
		page := workflows.ProjectFormPage(workflows.ProjectPageConfig{
			Slug:        "create_project",
			Title:       "Create Project",
			Action:      indexURL + "/create",
			SubmitLabel: "Create Project",
			Input:       in,
			DomainName:  h.domainName(ctx, domainID),
			ExtraLabels: h.settings.ProjectTableExtraInfo,
			Members:     mc,
		})
		workflows.ApplyFieldErrors(page, fieldErrs)
		page.Messages = web.Drain(c)
		page.CSRFToken = middleware.CSRFToken(c)
		return c.Render(http.StatusOK, "workflow.html", page)
	}

	for _, err := range errs {
		web.Error(c, "%s", err.Error())
	}
	if wf.SelfRemovalSkipped() {
		web.Warning(c, "You cannot revoke your administrative privileges from the project you are currently logged into. Please switch to another project with administrative privileges or remove the administrative role manually via the CLI.")
	}
	if len(errs) == 0 {
		web.Success(c, "%s", wf.SuccessMessage)
	}
	return c.Redirect(http.StatusFound, wf.SuccessURL)
}

// UpdateForm renders the update project wizard.
func (h *ProjectsHandler) UpdateForm(c echo.Context) error {
	ctx := c.Request().Context()
	projectID := c.Param("id")

	project, err := h.projects.GetProject(ctx, projectID, true)
	if err != nil {
		h.logger.Error("failed to get project", "project_id", projectID, "error", err)
		web.Error(c, "Unable to retrieve project details.")
		return c.Redirect(http.StatusFound, indexURL)
	}

	mc, err := h.members.Context(ctx, project.DomainID, projectID)
	if err != nil {
		// The info step still renders so the admin can see the failure.
		h.logger.Error("failed to load membership context", "error", err)
		web.Error(c, "Unable to retrieve default role.")
	}

	in := workflows.ProjectInput{
		Name:        project.Name,
		Description: project.Description,
		DomainID:    project.DomainID,
		Enabled:     project.Enabled,
		Extra:       project.Extra,
	}
	if mc != nil {
		in.UserRoles = workflows.InvertRoleMatrix(mc.UserRoles)
		in.GroupRoles = workflows.InvertRoleMatrix(mc.GroupRoles)
	}

	page := workflows.ProjectFormPage(workflows.ProjectPageConfig{
		Slug:        "update_project",
		Title:       "Edit Project",
		Action:      indexURL + "/" + projectID + "/update",
		SubmitLabel: "Save",
		Input:       in,
		DomainName:  h.domainName(ctx, project.DomainID),
		ExtraLabels: h.settings.ProjectTableExtraInfo,
		Members:     mc,
	})
	page.Messages = web.Drain(c)
	page.CSRFToken = middleware.CSRFToken(c)
	return c.Render(http.StatusOK, "workflow.html", page)
}

// UpdateSubmit handles the update wizard submission.
func (h *ProjectsHandler) UpdateSubmit(c echo.Context) error {
	ctx := c.Request().Context()
	session := web.GetSession(c)
	projectID := c.Param("id")

	project, err := h.projects.GetProject(ctx, projectID, true)
	if err != nil {
		h.logger.Error("failed to get project", "project_id", projectID, "error", err)
		web.Error(c, "Unable to retrieve project details.")
		return c.Redirect(http.StatusFound, indexURL)
	}

	mc, err := h.members.Context(ctx, project.DomainID, projectID)
	if err != nil {
		h.logger.Error("failed to load membership context", "error", err)
		web.Error(c, "Unable to retrieve default role.")
		return c.Redirect(http.StatusFound, indexURL)
	}

	in, err := workflows.BindProjectInput(c, h.extraKeys(), mc.Roles)
	if err != nil {
		web.Error(c, "Invalid form submission.")
		return c.Redirect(http.StatusFound, indexURL)
	}
	in.DomainID = project.DomainID

	wf := workflows.NewUpdateProject(h.projects, h.members, h.validator, *project, in, session.UserID, h.logger)
	fieldErrs, errs := wf.Run(ctx)

	if len(fieldErrs) > 0 {
		page := workflows.ProjectFormPage(workflows.ProjectPageConfig{
			Slug:        "update_project",
			Title:       "Edit Project",
			Action:      indexURL + "/" + projectID + "/update",
			SubmitLabel: "Save",
			Input:       in,
			DomainName:  h.domainName(ctx, project.DomainID),
			ExtraLabels: h.settings.ProjectTableExtraInfo,
			Members:     mc,
		})
		workflows.ApplyFieldErrors(page, fieldErrs)
		page.Messages = web.Drain(c)
		page.CSRFToken = middleware.CSRFToken(c)
		return c.Render(http.StatusOK, "workflow.html", page)
	}

	for _, err := range errs {
		web.Error(c, "%s", err.Error())
	}
	if wf.SelfRemovalSkipped() {
		web.Warning(c, "You cannot revoke your administrative privileges from the project you are currently logged into. Please switch to another project with administrative privileges or remove the administrative role manually via the CLI.")
	}
	if len(errs) == 0 {
		web.Success(c, "%s", wf.SuccessMessage)
	}
	return c.Redirect(http.StatusFound, wf.SuccessURL)
}

// Delete removes a project and returns to the table.
func (h *ProjectsHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	session := web.GetSession(c)
	projectID := c.Param("id")

	name := projectID
	if project, err := h.projects.GetProject(ctx, projectID, true); err == nil {
		name = project.Name
	}

	if err := h.projects.DeleteProject(ctx, projectID, session.UserID); err != nil {
		h.logger.Error("failed to delete project", "project_id", projectID, "error", err)
		web.Error(c, "Unable to delete project: %s", name)
	} else {
		web.Success(c, "Deleted project: %s", name)
	}
	return c.Redirect(http.StatusFound, indexURL)
}

// domainName resolves a domain's display name, falling back to its id.
func (h *ProjectsHandler) domainName(ctx context.Context, domainID string) string {
	d, err := h.projects.GetDomain(ctx, domainID)
	if err != nil {
		h.logger.Warn("failed to resolve domain name", "domain_id", domainID, "error", err)
		return domainID
	}
	return d.Name
}
