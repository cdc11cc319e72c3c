package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/strandvakten/ansokan/models"
)

// ApplicationRepository interface defines application database operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetAll(ctx context.Context) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id int, status models.Status) error
	Delete(ctx context.Context, id int) error
}

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	db *sql.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *sql.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts a new application and sets its assigned id.
func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	query := `
		INSERT INTO applications (name, email, phone, address, swimming, experience, rescue, message, created_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now()
	}
	if app.Status == "" {
		app.Status = models.StatusNew
	}

	result, err := r.db.ExecContext(ctx, query,
		app.Name,
		app.Email,
		app.Phone,
		app.Address,
		app.Swimming,
		app.Experience,
		app.Rescue,
		app.Message,
		app.CreatedAt,
		app.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	app.ID = int(id)
	return nil
}

// GetAll retrieves all applications, newest first.
func (r *applicationRepository) GetAll(ctx context.Context) ([]models.Application, error) {
	query := `
		SELECT id, name, email, phone, address, swimming, experience, rescue, message, created_at, status
		FROM applications
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		var app models.Application
		var phone, address, message, status sql.NullString

		err := rows.Scan(
			&app.ID,
			&app.Name,
			&app.Email,
			&phone,
			&address,
			&app.Swimming,
			&app.Experience,
			&app.Rescue,
			&message,
			&app.CreatedAt,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}

		// Convert NULL values to empty string / default status
		app.Phone = phone.String
		app.Address = address.String
		app.Message = message.String
		if status.Valid {
			app.Status = models.Status(status.String)
		} else {
			app.Status = models.StatusNew
		}

		apps = append(apps, app)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return apps, nil
}

// UpdateStatus sets the status of an application.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id int, status models.Status) error {
	query := `UPDATE applications SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("application %d: %w", id, ErrNotFound)
	}

	return nil
}

// Delete removes an application by ID. Admin log entries referencing the
// row are left in place as weak references.
func (r *applicationRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM applications WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("application %d: %w", id, ErrNotFound)
	}

	return nil
}
