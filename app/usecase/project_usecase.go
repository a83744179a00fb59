package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/port"
)

// ProjectUsecase drives the project panel: listing, detail, create and
// update against the identity service.
type ProjectUsecase struct {
	identity port.IdentityClient
	domains  port.DomainLookup
	audit    port.AuditRepository
	logger   *slog.Logger
}

// NewProjectUsecase creates a new project usecase. audit may be nil when the
// deployment runs without an audit store.
func NewProjectUsecase(
	identity port.IdentityClient,
	domains port.DomainLookup,
	audit port.AuditRepository,
	logger *slog.Logger,
) *ProjectUsecase {
	return &ProjectUsecase{
		identity: identity,
		domains:  domains,
		audit:    audit,
		logger:   logger.With("component", "project_usecase"),
	}
}

// ListProjectsRequest scopes a project listing.
type ListProjectsRequest struct {
	// DomainContext restricts an admin listing to one domain (from session).
	DomainContext string
	// UserID is the requesting user; used for the non-admin member listing.
	UserID string
	// Admin selects the admin-wide listing.
	Admin bool
	// Marker is the last project id of the previous page.
	Marker string
	// Filters are server-side attribute filters.
	Filters map[string]string
}

// ProjectRow is a listed project with its resolved domain name.
type ProjectRow struct {
	domain.Project
	DomainName string
}

// ProjectPage is one page of the project table.
type ProjectPage struct {
	Projects []ProjectRow
	HasMore  bool
}

// ListProjects lists projects for the table view. Admins see every project
// (optionally scoped by the session domain context); members see only the
// projects they belong to. Domain names are resolved through the lookup
// table; a lookup failure degrades to raw domain ids rather than failing
// the page.
func (u *ProjectUsecase) ListProjects(ctx context.Context, req ListProjectsRequest) (*ProjectPage, error) {
	opts := port.ProjectListOpts{
		Marker:  req.Marker,
		Filters: req.Filters,
	}
	if req.Admin {
		opts.Admin = true
		opts.DomainID = req.DomainContext
	} else {
		opts.UserID = req.UserID
	}

	projects, more, err := u.identity.ProjectList(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	lookup, err := u.domains.DomainLookup(ctx)
	if err != nil {
		u.logger.Warn("domain lookup failed, falling back to domain ids", "error", err)
		lookup = map[string]string{}
	}

	rows := make([]ProjectRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, ProjectRow{Project: p, DomainName: p.DomainName(lookup)})
	}

	return &ProjectPage{Projects: rows, HasMore: more}, nil
}

// GetProject fetches one project. admin selects the admin-scoped read used
// by the update workflow.
func (u *ProjectUsecase) GetProject(ctx context.Context, projectID string, admin bool) (*domain.Project, error) {
	project, err := u.identity.ProjectGet(ctx, projectID, admin)
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", projectID, err)
	}
	return project, nil
}

// CreateProjectRequest carries the create-workflow form data.
type CreateProjectRequest struct {
	Name        string
	Description string
	DomainID    string
	Enabled     bool
	Extra       map[string]string
	// UserRoles maps role id -> user ids to grant on the new project.
	UserRoles map[string][]string
	// GroupRoles maps role id -> group ids to grant on the new project.
	GroupRoles map[string][]string
	ActorID    string
}

// CreateProject creates the project and grants the initial user and group
// roles. A grant failure does not undo the creation: the project exists, the
// failed grant is returned so the view can surface it, and remaining grants
// are abandoned.
func (u *ProjectUsecase) CreateProject(ctx context.Context, req CreateProjectRequest) (*domain.Project, []error, error) {
	u.logger.Info("creating project", "name", req.Name, "domain_id", req.DomainID)

	project, err := domain.NewProject(req.Name, req.Description, req.DomainID, req.Enabled)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid project: %w", err)
	}
	project.Extra = req.Extra

	created, err := u.identity.ProjectCreate(ctx, *project)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create project: %w", err)
	}

	var grantErrs []error
	if err := u.grantInitialRoles(ctx, created.ID, req); err != nil {
		grantErrs = append(grantErrs, err)
	}

	u.recordAudit(ctx, created.ID, req.ActorID, domain.AuditProjectCreated, created.Name)
	u.logger.Info("project created", "project_id", created.ID, "grant_errors", len(grantErrs))

	return created, grantErrs, nil
}

// grantInitialRoles applies the workflow's user and group role selections to
// a freshly created project, stopping at the first backend failure.
func (u *ProjectUsecase) grantInitialRoles(ctx context.Context, projectID string, req CreateProjectRequest) error {
	for roleID, userIDs := range req.UserRoles {
		for _, userID := range userIDs {
			if err := u.identity.AddProjectUserRole(ctx, projectID, userID, roleID); err != nil {
				return fmt.Errorf("failed to add user %s to project with role %s: %w", userID, roleID, err)
			}
		}
	}
	for roleID, groupIDs := range req.GroupRoles {
		for _, groupID := range groupIDs {
			if err := u.identity.AddProjectGroupRole(ctx, projectID, groupID, roleID); err != nil {
				return fmt.Errorf("failed to add group %s to project with role %s: %w", groupID, roleID, err)
			}
		}
	}
	return nil
}

// UpdateProject applies the update-workflow's info step.
func (u *ProjectUsecase) UpdateProject(ctx context.Context, project domain.Project, actorID string) (*domain.Project, error) {
	u.logger.Info("updating project", "project_id", project.ID)

	updated, err := u.identity.ProjectUpdate(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to update project %s: %w", project.ID, err)
	}

	u.recordAudit(ctx, project.ID, actorID, domain.AuditProjectUpdated, updated.Name)
	return updated, nil
}

// DeleteProject removes a project.
func (u *ProjectUsecase) DeleteProject(ctx context.Context, projectID, actorID string) error {
	if err := u.identity.ProjectDelete(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	u.recordAudit(ctx, projectID, actorID, domain.AuditProjectDeleted, "")
	return nil
}

// GetDomain fetches a domain record.
func (u *ProjectUsecase) GetDomain(ctx context.Context, domainID string) (*domain.Domain, error) {
	d, err := u.identity.DomainGet(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("failed to get domain %s: %w", domainID, err)
	}
	return d, nil
}

// DefaultDomain resolves the deployment's default domain.
func (u *ProjectUsecase) DefaultDomain(ctx context.Context) (*domain.Domain, error) {
	d, err := u.identity.DefaultDomain(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get default domain: %w", err)
	}
	return d, nil
}

// AuditTrail lists the recorded mutations for a project's detail view.
func (u *ProjectUsecase) AuditTrail(ctx context.Context, projectID string, limit int) ([]*domain.AuditEntry, error) {
	if u.audit == nil {
		return nil, nil
	}
	entries, err := u.audit.ListByProject(ctx, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

// recordAudit writes an audit entry when a store is configured. Audit
// failures are logged, never surfaced to the view.
func (u *ProjectUsecase) recordAudit(ctx context.Context, projectID, actorID string, action domain.AuditAction, detail string) {
	if u.audit == nil {
		return
	}
	entry := domain.NewAuditEntry(projectID, actorID, action, detail)
	if err := u.audit.Record(ctx, entry); err != nil {
		u.logger.Warn("failed to record audit entry", "project_id", projectID, "action", action, "error", err)
	}
}
