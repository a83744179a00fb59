package openstackapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/port"
)

// defaultDomainID is the identity service's built-in domain.
const defaultDomainID = "default"

// IdentityService implements port.IdentityClient against a keystone-shaped
// identity API.
type IdentityService struct {
	client *Client
	// pageSize bounds one project listing page.
	pageSize int
	// defaultRoleName is the role granted to new project members.
	defaultRoleName string
	logger          *slog.Logger
}

// NewIdentityService creates the identity client. pageSize bounds project
// listing pages; defaultRoleName names the role the membership step grants
// by default.
func NewIdentityService(baseURL, token string, pageSize int, defaultRoleName string, logger *slog.Logger) (*IdentityService, error) {
	client, err := NewClient("identity", baseURL, token, logger)
	if err != nil {
		return nil, err
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if defaultRoleName == "" {
		defaultRoleName = "member"
	}
	return &IdentityService{
		client:          client,
		pageSize:        pageSize,
		defaultRoleName: defaultRoleName,
		logger:          logger.With("service", "identity"),
	}, nil
}

// HealthCheck reports whether the identity service answers.
func (s *IdentityService) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

type projectDoc struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	DomainID    string            `json:"domain_id"`
	Enabled     bool              `json:"enabled"`
	Extra       map[string]string `json:"extra,omitempty"`
}

func (d projectDoc) toDomain() domain.Project {
	return domain.Project{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		DomainID:    d.DomainID,
		Enabled:     d.Enabled,
		Extra:       d.Extra,
	}
}

func projectBody(p domain.Project) map[string]interface{} {
	doc := map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"domain_id":   p.DomainID,
		"enabled":     p.Enabled,
	}
	if len(p.Extra) > 0 {
		doc["extra"] = p.Extra
	}
	return doc
}

// ProjectList lists projects one page at a time. One extra record is
// requested past the page so the caller learns whether more pages exist.
func (s *IdentityService) ProjectList(ctx context.Context, opts port.ProjectListOpts) ([]domain.Project, bool, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(s.pageSize+1))
	if opts.DomainID != "" {
		query.Set("domain_id", opts.DomainID)
	}
	if opts.UserID != "" && !opts.Admin {
		query.Set("user_id", opts.UserID)
	}
	if opts.Marker != "" {
		query.Set("marker", opts.Marker)
	}
	for name, value := range opts.Filters {
		query.Set(name, value)
	}

	var result struct {
		Projects []projectDoc `json:"projects"`
	}
	if err := s.client.get(ctx, "/v3/projects", query, &result); err != nil {
		return nil, false, err
	}

	more := len(result.Projects) > s.pageSize
	if more {
		result.Projects = result.Projects[:s.pageSize]
	}

	projects := make([]domain.Project, 0, len(result.Projects))
	for _, doc := range result.Projects {
		projects = append(projects, doc.toDomain())
	}
	return projects, more, nil
}

// ProjectGet fetches one project. admin is accepted for interface parity;
// the service token already carries the read scope.
func (s *IdentityService) ProjectGet(ctx context.Context, projectID string, admin bool) (*domain.Project, error) {
	var result struct {
		Project projectDoc `json:"project"`
	}
	if err := s.client.get(ctx, "/v3/projects/"+projectID, nil, &result); err != nil {
		return nil, err
	}
	p := result.Project.toDomain()
	return &p, nil
}

// ProjectCreate creates a project.
func (s *IdentityService) ProjectCreate(ctx context.Context, project domain.Project) (*domain.Project, error) {
	var result struct {
		Project projectDoc `json:"project"`
	}
	body := map[string]interface{}{"project": projectBody(project)}
	if err := s.client.post(ctx, "/v3/projects", body, &result); err != nil {
		return nil, err
	}
	created := result.Project.toDomain()
	s.logger.Info("project created", "project_id", created.ID, "name", created.Name)
	return &created, nil
}

// ProjectUpdate saves the project's editable attributes.
func (s *IdentityService) ProjectUpdate(ctx context.Context, project domain.Project) (*domain.Project, error) {
	var result struct {
		Project projectDoc `json:"project"`
	}
	body := map[string]interface{}{"project": projectBody(project)}
	if err := s.client.patch(ctx, "/v3/projects/"+project.ID, body, &result); err != nil {
		return nil, err
	}
	updated := result.Project.toDomain()
	return &updated, nil
}

// ProjectDelete removes a project.
func (s *IdentityService) ProjectDelete(ctx context.Context, projectID string) error {
	return s.client.delete(ctx, "/v3/projects/"+projectID)
}

type domainDoc struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// DomainGet fetches one domain.
func (s *IdentityService) DomainGet(ctx context.Context, domainID string) (*domain.Domain, error) {
	var result struct {
		Domain domainDoc `json:"domain"`
	}
	if err := s.client.get(ctx, "/v3/domains/"+domainID, nil, &result); err != nil {
		return nil, err
	}
	return &domain.Domain{
		ID:      result.Domain.ID,
		Name:    result.Domain.Name,
		Enabled: result.Domain.Enabled,
	}, nil
}

// DomainLookup returns the full domain id -> name table.
func (s *IdentityService) DomainLookup(ctx context.Context) (map[string]string, error) {
	var result struct {
		Domains []domainDoc `json:"domains"`
	}
	if err := s.client.get(ctx, "/v3/domains", nil, &result); err != nil {
		return nil, err
	}
	lookup := make(map[string]string, len(result.Domains))
	for _, d := range result.Domains {
		lookup[d.ID] = d.Name
	}
	return lookup, nil
}

// DefaultDomain resolves the deployment's built-in domain.
func (s *IdentityService) DefaultDomain(ctx context.Context) (*domain.Domain, error) {
	return s.DomainGet(ctx, defaultDomainID)
}

// UserList lists the users of a domain.
func (s *IdentityService) UserList(ctx context.Context, domainID string) ([]domain.User, error) {
	query := url.Values{}
	if domainID != "" {
		query.Set("domain_id", domainID)
	}
	var result struct {
		Users []struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			Email     string `json:"email,omitempty"`
			DomainID  string `json:"domain_id"`
			ProjectID string `json:"default_project_id,omitempty"`
			Enabled   bool   `json:"enabled"`
		} `json:"users"`
	}
	if err := s.client.get(ctx, "/v3/users", query, &result); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, domain.User{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			DomainID:  u.DomainID,
			ProjectID: u.ProjectID,
			Enabled:   u.Enabled,
		})
	}
	return users, nil
}

// GroupList lists the groups of a domain.
func (s *IdentityService) GroupList(ctx context.Context, domainID string) ([]domain.Group, error) {
	query := url.Values{}
	if domainID != "" {
		query.Set("domain_id", domainID)
	}
	var result struct {
		Groups []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description,omitempty"`
			DomainID    string `json:"domain_id"`
		} `json:"groups"`
	}
	if err := s.client.get(ctx, "/v3/groups", query, &result); err != nil {
		return nil, err
	}
	groups := make([]domain.Group, 0, len(result.Groups))
	for _, g := range result.Groups {
		groups = append(groups, domain.Group{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			DomainID:    g.DomainID,
		})
	}
	return groups, nil
}

type roleDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleList lists every grantable role.
func (s *IdentityService) RoleList(ctx context.Context) ([]domain.Role, error) {
	var result struct {
		Roles []roleDoc `json:"roles"`
	}
	if err := s.client.get(ctx, "/v3/roles", nil, &result); err != nil {
		return nil, err
	}
	roles := make([]domain.Role, 0, len(result.Roles))
	for _, r := range result.Roles {
		roles = append(roles, domain.Role{ID: r.ID, Name: r.Name})
	}
	return roles, nil
}

// DefaultRole finds the configured member role in the role listing. A nil
// role with nil error means the role does not exist on this deployment.
func (s *IdentityService) DefaultRole(ctx context.Context) (*domain.Role, error) {
	roles, err := s.RoleList(ctx)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		if role.Name == s.defaultRoleName {
			return &role, nil
		}
	}
	s.logger.Warn("default role not found", "role_name", s.defaultRoleName)
	return nil, nil
}

// RoleAssignmentList lists the user and group role bindings on a project.
func (s *IdentityService) RoleAssignmentList(ctx context.Context, projectID string) ([]domain.RoleAssignment, error) {
	query := url.Values{}
	query.Set("scope.project.id", projectID)

	var result struct {
		Assignments []struct {
			User *struct {
				ID string `json:"id"`
			} `json:"user,omitempty"`
			Group *struct {
				ID string `json:"id"`
			} `json:"group,omitempty"`
			Role roleDoc `json:"role"`
		} `json:"role_assignments"`
	}
	if err := s.client.get(ctx, "/v3/role_assignments", query, &result); err != nil {
		return nil, err
	}

	assignments := make([]domain.RoleAssignment, 0, len(result.Assignments))
	for _, a := range result.Assignments {
		assignment := domain.RoleAssignment{ProjectID: projectID, RoleID: a.Role.ID}
		switch {
		case a.User != nil:
			assignment.UserID = a.User.ID
		case a.Group != nil:
			assignment.GroupID = a.Group.ID
		default:
			continue
		}
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

// RolesForGroup lists a group's effective roles on a project.
func (s *IdentityService) RolesForGroup(ctx context.Context, groupID, projectID string) ([]domain.Role, error) {
	var result struct {
		Roles []roleDoc `json:"roles"`
	}
	path := fmt.Sprintf("/v3/projects/%s/groups/%s/roles", projectID, groupID)
	if err := s.client.get(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	roles := make([]domain.Role, 0, len(result.Roles))
	for _, r := range result.Roles {
		roles = append(roles, domain.Role{ID: r.ID, Name: r.Name})
	}
	return roles, nil
}

// AddProjectUserRole grants a role to a user on a project.
func (s *IdentityService) AddProjectUserRole(ctx context.Context, projectID, userID, roleID string) error {
	path := fmt.Sprintf("/v3/projects/%s/users/%s/roles/%s", projectID, userID, roleID)
	return s.client.put(ctx, path, nil, nil)
}

// RemoveProjectUserRole revokes a user's role on a project.
func (s *IdentityService) RemoveProjectUserRole(ctx context.Context, projectID, userID, roleID string) error {
	path := fmt.Sprintf("/v3/projects/%s/users/%s/roles/%s", projectID, userID, roleID)
	return s.client.delete(ctx, path)
}

// AddProjectGroupRole grants a role to a group on a project.
func (s *IdentityService) AddProjectGroupRole(ctx context.Context, projectID, groupID, roleID string) error {
	path := fmt.Sprintf("/v3/projects/%s/groups/%s/roles/%s", projectID, groupID, roleID)
	return s.client.put(ctx, path, nil, nil)
}

// RemoveProjectGroupRole revokes a group's role on a project.
func (s *IdentityService) RemoveProjectGroupRole(ctx context.Context, projectID, groupID, roleID string) error {
	path := fmt.Sprintf("/v3/projects/%s/groups/%s/roles/%s", projectID, groupID, roleID)
	return s.client.delete(ctx, path)
}
