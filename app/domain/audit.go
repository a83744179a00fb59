package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies the kind of panel mutation being recorded.
type AuditAction string

const (
	AuditProjectCreated AuditAction = "project.created"
	AuditProjectUpdated AuditAction = "project.updated"
	AuditProjectDeleted AuditAction = "project.deleted"
	AuditRolesChanged   AuditAction = "project.roles_changed"
	AuditQuotaUpdated   AuditAction = "project.quota_updated"
)

// AuditEntry records who changed what through the dashboard.
type AuditEntry struct {
	ID        uuid.UUID   `json:"id"`
	ProjectID string      `json:"project_id"`
	ActorID   string      `json:"actor_id"`
	Action    AuditAction `json:"action"`
	Detail    string      `json:"detail,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewAuditEntry creates an entry stamped with a fresh id and the current time.
func NewAuditEntry(projectID, actorID string, action AuditAction, detail string) *AuditEntry {
	return &AuditEntry{
		ID:        uuid.New(),
		ProjectID: projectID,
		ActorID:   actorID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
}
