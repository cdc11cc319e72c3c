package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/strandvakten/ansokan/models"
)

// MockApplicationRepository is a testify mock of ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) GetAll(ctx context.Context) ([]models.Application, error) {
	args := m.Called(ctx)
	var apps []models.Application
	if args.Get(0) != nil {
		apps = args.Get(0).([]models.Application)
	}
	return apps, args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id int, status models.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAdminLogRepository is a testify mock of AdminLogRepository
type MockAdminLogRepository struct {
	mock.Mock
}

func (m *MockAdminLogRepository) Create(ctx context.Context, entry *models.AdminLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAdminLogRepository) Recent(ctx context.Context, limit int) ([]models.AdminLogEntry, error) {
	args := m.Called(ctx, limit)
	var entries []models.AdminLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]models.AdminLogEntry)
	}
	return entries, args.Error(1)
}

func (m *MockAdminLogRepository) EnsureTable(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
