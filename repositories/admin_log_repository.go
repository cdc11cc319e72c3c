package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/strandvakten/ansokan/models"
)

// AdminLogRepository handles admin action log persistence
type AdminLogRepository interface {
	Create(ctx context.Context, entry *models.AdminLogEntry) error
	Recent(ctx context.Context, limit int) ([]models.AdminLogEntry, error)
	EnsureTable(ctx context.Context) error
}

type adminLogRepository struct {
	db *sql.DB
}

// NewAdminLogRepository creates a new admin log repository
func NewAdminLogRepository(db *sql.DB) AdminLogRepository {
	return &adminLogRepository{db: db}
}

// Create inserts a new admin log entry. Details are stored serialized
// as JSON text.
func (r *adminLogRepository) Create(ctx context.Context, entry *models.AdminLogEntry) error {
	query := `
		INSERT INTO admin_logs (created_at, actor, action, application_id, details)
		VALUES (?, ?, ?, ?, ?)
	`

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	var actor sql.NullString
	if entry.Actor != "" {
		actor = sql.NullString{String: entry.Actor, Valid: true}
	}

	var applicationID sql.NullInt64
	if entry.ApplicationID != 0 {
		applicationID = sql.NullInt64{Int64: entry.ApplicationID, Valid: true}
	}

	var details sql.NullString
	if entry.Details != nil {
		data, err := json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to serialize log details: %w", err)
		}
		details = sql.NullString{String: string(data), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		entry.CreatedAt,
		actor,
		entry.Action,
		applicationID,
		details,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = id
	return nil
}

// Recent retrieves the most recent entries, newest first. When the table
// does not exist yet (a deployment upgraded from a schema predating the
// admin log), it is created and an empty list is returned.
func (r *adminLogRepository) Recent(ctx context.Context, limit int) ([]models.AdminLogEntry, error) {
	query := `
		SELECT id, created_at, actor, action, application_id, details
		FROM admin_logs
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		if isMissingTable(err) {
			if err := r.EnsureTable(ctx); err != nil {
				return nil, fmt.Errorf("failed to create admin_logs table: %w", err)
			}
			return []models.AdminLogEntry{}, nil
		}
		return nil, fmt.Errorf("failed to query admin logs: %w", err)
	}
	defer rows.Close()

	entries := []models.AdminLogEntry{}
	for rows.Next() {
		var entry models.AdminLogEntry
		var actor, details sql.NullString
		var applicationID sql.NullInt64

		err := rows.Scan(
			&entry.ID,
			&entry.CreatedAt,
			&actor,
			&entry.Action,
			&applicationID,
			&details,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin log entry: %w", err)
		}

		entry.Actor = actor.String
		entry.ApplicationID = applicationID.Int64
		if details.Valid {
			entry.Details = parseDetails(details.String)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin logs: %w", err)
	}

	return entries, nil
}

// EnsureTable creates the admin_logs table if it does not exist.
func (r *adminLogRepository) EnsureTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS admin_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			actor TEXT,
			action TEXT NOT NULL,
			application_id INTEGER,
			details TEXT
		)
	`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

// parseDetails deserializes the stored details text, falling back to the
// raw string when it is not valid JSON.
func parseDetails(raw string) any {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}
	return parsed
}

func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
