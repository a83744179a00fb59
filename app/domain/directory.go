package domain

// Domain is an identity-service domain: a namespace for projects, users and
// groups. The dashboard treats it as an opaque scoping record.
type Domain struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// User is a member of a domain, optionally scoped to a default project.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	DomainID  string `json:"domain_id"`
	ProjectID string `json:"project_id,omitempty"`
	Enabled   bool   `json:"enabled"`
}

// Group is a named collection of users within a domain.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DomainID    string `json:"domain_id"`
}

// Role is a grantable role definition.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleAssignment binds a user or a group to a role on a project.
// Exactly one of UserID / GroupID is set.
type RoleAssignment struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id,omitempty"`
	GroupID   string `json:"group_id,omitempty"`
	RoleID    string `json:"role_id"`
}

// UserRolesByID folds user-scoped assignments into user id -> role ids.
func UserRolesByID(assignments []RoleAssignment) map[string][]string {
	out := make(map[string][]string)
	for _, a := range assignments {
		if a.UserID == "" {
			continue
		}
		out[a.UserID] = append(out[a.UserID], a.RoleID)
	}
	return out
}

// GroupRolesByID folds group-scoped assignments into group id -> role ids.
func GroupRolesByID(assignments []RoleAssignment) map[string][]string {
	out := make(map[string][]string)
	for _, a := range assignments {
		if a.GroupID == "" {
			continue
		}
		out[a.GroupID] = append(out[a.GroupID], a.RoleID)
	}
	return out
}
