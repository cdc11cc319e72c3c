package repositories

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when no row matches the given id.
var ErrNotFound = errors.New("not found")

// Repositories struct holds all repository interfaces
type Repositories struct {
	Application ApplicationRepository
	AdminLog    AdminLogRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Application: NewApplicationRepository(db),
		AdminLog:    NewAdminLogRepository(db),
	}
}
