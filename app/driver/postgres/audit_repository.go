package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/port"
)

// AuditRepository implements port.AuditRepository for PostgreSQL
type AuditRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAuditRepository creates a new PostgreSQL audit repository
func NewAuditRepository(db DatabaseIface, logger *slog.Logger) port.AuditRepository {
	return &AuditRepository{
		db:     db,
		logger: logger.With("component", "audit_repository"),
	}
}

// Record inserts one audit entry.
func (r *AuditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (
			id, project_id, actor_id, action, detail, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.ProjectID,
		entry.ActorID,
		string(entry.Action),
		entry.Detail,
		entry.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to record audit entry",
			"project_id", entry.ProjectID, "action", entry.Action, "error", err)
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	r.logger.Debug("audit entry recorded",
		"project_id", entry.ProjectID, "action", entry.Action)
	return nil
}

// ListByProject returns the newest entries for a project, newest first.
func (r *AuditRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.AuditEntry, error) {
	query := `
		SELECT
			id, project_id, actor_id, action, detail, created_at
		FROM audit_entries
		WHERE project_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, projectID, limit)
	if err != nil {
		r.logger.Error("failed to list audit entries", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditEntry
	for rows.Next() {
		entry := &domain.AuditEntry{}
		var action string
		if err := rows.Scan(
			&entry.ID,
			&entry.ProjectID,
			&entry.ActorID,
			&action,
			&entry.Detail,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entry.Action = domain.AuditAction(action)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit entries: %w", err)
	}

	return entries, nil
}
