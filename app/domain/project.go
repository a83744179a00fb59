package domain

import (
	"fmt"
	"strings"
	"time"
)

// Project represents an identity-service project (tenant): the organizational
// unit that groups users, resources and quotas.
type Project struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	DomainID    string            `json:"domain_id"`
	Enabled     bool              `json:"enabled"`
	Extra       map[string]string `json:"extra,omitempty"`
	CreatedAt   time.Time         `json:"created_at,omitempty"`
}

// NewProject creates a project with validation.
func NewProject(name, description, domainID string, enabled bool) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 64 {
		return nil, fmt.Errorf("name must be 64 characters or less")
	}
	if domainID == "" {
		return nil, fmt.Errorf("domain is required")
	}

	return &Project{
		Name:        name,
		Description: description,
		DomainID:    domainID,
		Enabled:     enabled,
	}, nil
}

// DomainName resolves the project's domain name from an id -> name table.
// Falls back to the raw domain id when the table has no entry.
func (p *Project) DomainName(lookup map[string]string) string {
	if name, ok := lookup[p.DomainID]; ok {
		return name
	}
	return p.DomainID
}
