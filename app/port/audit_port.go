package port

//go:generate mockgen -source=audit_port.go -destination=../mocks/mock_audit_port.go

import (
	"context"

	"identity-dashboard/app/domain"
)

// AuditRepository persists dashboard mutation records.
type AuditRepository interface {
	Record(ctx context.Context, entry *domain.AuditEntry) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.AuditEntry, error)
}
