package services

import (
	"context"
	"log"

	"github.com/strandvakten/ansokan/models"
	"github.com/strandvakten/ansokan/repositories"
)

// RecentLogLimit caps how many log entries are returned to the admin panel.
const RecentLogLimit = 200

// AdminLogService records and serves admin action log entries.
type AdminLogService interface {
	// Append is best-effort: a failure is logged for operator visibility
	// but never propagated, so that audit problems cannot fail or roll
	// back the admin action that triggered them.
	Append(ctx context.Context, actor, action string, applicationID int64, details map[string]any)
	Recent(ctx context.Context) ([]models.AdminLogEntry, error)
}

type adminLogService struct {
	adminLogRepo repositories.AdminLogRepository
}

// NewAdminLogService creates a new admin log service
func NewAdminLogService(adminLogRepo repositories.AdminLogRepository) AdminLogService {
	return &adminLogService{adminLogRepo: adminLogRepo}
}

// Append records one admin action.
func (s *adminLogService) Append(ctx context.Context, actor, action string, applicationID int64, details map[string]any) {
	entry := &models.AdminLogEntry{
		Actor:         actor,
		Action:        action,
		ApplicationID: applicationID,
	}
	if details != nil {
		entry.Details = details
	}

	if err := s.adminLogRepo.Create(ctx, entry); err != nil {
		log.Printf("Failed to create admin log entry: %v", err)
	}
}

// Recent returns the newest entries, capped at RecentLogLimit.
func (s *adminLogService) Recent(ctx context.Context) ([]models.AdminLogEntry, error) {
	return s.adminLogRepo.Recent(ctx, RecentLogLimit)
}
