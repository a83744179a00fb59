package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"identity-dashboard/app/domain"
)

// ProjectListOpts controls project listing scope and pagination.
type ProjectListOpts struct {
	// DomainID scopes the listing to one domain when set.
	DomainID string
	// UserID lists only projects the user is a member of (non-admin path).
	UserID string
	// Admin requests an admin-scoped listing.
	Admin bool
	// Marker is the id of the last project on the previous page.
	Marker string
	// Filters are server-side attribute filters (e.g. name).
	Filters map[string]string
}

// IdentityClient is the identity-service API surface the panel consumes.
type IdentityClient interface {
	// Projects
	ProjectList(ctx context.Context, opts ProjectListOpts) ([]domain.Project, bool, error)
	ProjectGet(ctx context.Context, projectID string, admin bool) (*domain.Project, error)
	ProjectCreate(ctx context.Context, project domain.Project) (*domain.Project, error)
	ProjectUpdate(ctx context.Context, project domain.Project) (*domain.Project, error)
	ProjectDelete(ctx context.Context, projectID string) error

	// Domains
	DomainGet(ctx context.Context, domainID string) (*domain.Domain, error)
	DomainLookup(ctx context.Context) (map[string]string, error)
	DefaultDomain(ctx context.Context) (*domain.Domain, error)

	// Directory
	UserList(ctx context.Context, domainID string) ([]domain.User, error)
	GroupList(ctx context.Context, domainID string) ([]domain.Group, error)
	RoleList(ctx context.Context) ([]domain.Role, error)
	DefaultRole(ctx context.Context) (*domain.Role, error)

	// Role assignments
	RoleAssignmentList(ctx context.Context, projectID string) ([]domain.RoleAssignment, error)
	RolesForGroup(ctx context.Context, groupID, projectID string) ([]domain.Role, error)
	AddProjectUserRole(ctx context.Context, projectID, userID, roleID string) error
	RemoveProjectUserRole(ctx context.Context, projectID, userID, roleID string) error
	AddProjectGroupRole(ctx context.Context, projectID, groupID, roleID string) error
	RemoveProjectGroupRole(ctx context.Context, projectID, groupID, roleID string) error
}

// DomainLookup is the subset of IdentityClient needed to resolve domain
// names; the cache driver decorates it.
type DomainLookup interface {
	DomainLookup(ctx context.Context) (map[string]string, error)
}

// UserDirectory lists the users eligible for project membership. Backed by
// the identity service, or by Ory Kratos when the deployment keeps its user
// records there.
type UserDirectory interface {
	UserList(ctx context.Context, domainID string) ([]domain.User, error)
}
