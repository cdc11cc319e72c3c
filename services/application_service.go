package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/strandvakten/ansokan/models"
	"github.com/strandvakten/ansokan/repositories"
)

// ErrInvalidStatus is returned when a status outside the four known
// values is submitted.
var ErrInvalidStatus = models.ValidationErrors{{Field: "status", Message: "status must be one of Ny, Under behandling, Godkänd, Avslagen"}}

// ErrInvalidID is returned when an id is not a positive integer.
var ErrInvalidID = models.ValidationErrors{{Field: "id", Message: "id must be a positive integer"}}

// ApplicationService interface defines application business logic
type ApplicationService interface {
	Submit(ctx context.Context, form *models.ApplicationForm) (*models.Application, error)
	List(ctx context.Context) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id int, status models.Status, actor string) (*models.Application, error)
	Delete(ctx context.Context, id int, actor string) error
}

// applicationService implements ApplicationService interface
type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	adminLog        AdminLogService
}

// NewApplicationService creates a new application service
func NewApplicationService(applicationRepo repositories.ApplicationRepository, adminLog AdminLogService) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		adminLog:        adminLog,
	}
}

// Submit validates the form and persists a new application with status Ny.
func (s *applicationService) Submit(ctx context.Context, form *models.ApplicationForm) (*models.Application, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	app := &models.Application{
		Name:       strings.TrimSpace(form.Name),
		Email:      strings.TrimSpace(form.Email),
		Phone:      strings.TrimSpace(form.Phone),
		Address:    strings.TrimSpace(form.Address),
		Swimming:   form.Swimming,
		Experience: form.Experience,
		Rescue:     form.Rescue,
		Message:    form.Message,
		Status:     models.StatusNew,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	return app, nil
}

// List retrieves all applications, newest first.
func (s *applicationService) List(ctx context.Context) ([]models.Application, error) {
	return s.applicationRepo.GetAll(ctx)
}

// UpdateStatus sets a new review status on an application and records
// the change in the admin log.
func (s *applicationService) UpdateStatus(ctx context.Context, id int, status models.Status, actor string) (*models.Application, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	// The primary effect has committed; the log append is best-effort.
	s.adminLog.Append(ctx, actor, models.ActionUpdateStatus, int64(id), map[string]any{
		"newStatus": string(status),
	})

	return &models.Application{ID: id, Status: status}, nil
}

// Delete removes an application and records the deletion in the admin
// log. Log entries referencing the row are kept.
func (s *applicationService) Delete(ctx context.Context, id int, actor string) error {
	if id <= 0 {
		return ErrInvalidID
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.adminLog.Append(ctx, actor, models.ActionDeleteApplication, int64(id), nil)

	return nil
}
