package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/strandvakten/ansokan/models"
	"github.com/strandvakten/ansokan/repositories"
	"github.com/strandvakten/ansokan/repositories/mocks"
)

// ApplicationServiceTestSuite is a test suite for the application lifecycle
type ApplicationServiceTestSuite struct {
	suite.Suite
	service         ApplicationService
	mockAppRepo     *mocks.MockApplicationRepository
	mockLogRepo     *mocks.MockAdminLogRepository
	adminLogService AdminLogService
}

// SetupTest sets up the test suite before each test
func (suite *ApplicationServiceTestSuite) SetupTest() {
	suite.mockAppRepo = new(mocks.MockApplicationRepository)
	suite.mockLogRepo = new(mocks.MockAdminLogRepository)
	suite.adminLogService = NewAdminLogService(suite.mockLogRepo)
	suite.service = NewApplicationService(suite.mockAppRepo, suite.adminLogService)
}

func validForm() *models.ApplicationForm {
	return &models.ApplicationForm{
		Name:       "Ann",
		Email:      "a@x.com",
		Swimming:   "yes",
		Experience: "2 years",
		Rescue:     "yes",
	}
}

func (suite *ApplicationServiceTestSuite) TestSubmit_Valid() {
	suite.mockAppRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Application")).
		Run(func(args mock.Arguments) {
			app := args.Get(1).(*models.Application)
			app.ID = 1
		}).
		Return(nil)

	app, err := suite.service.Submit(context.Background(), validForm())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, app.ID)
	assert.Equal(suite.T(), models.StatusNew, app.Status)
	suite.mockAppRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestSubmit_MissingRequiredField() {
	form := validForm()
	form.Email = ""

	app, err := suite.service.Submit(context.Background(), form)

	assert.Nil(suite.T(), app)
	var verrs models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &verrs)
	// No row may be inserted on validation failure
	suite.mockAppRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestSubmit_RepositoryError() {
	suite.mockAppRepo.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("database is locked"))

	app, err := suite.service.Submit(context.Background(), validForm())

	assert.Nil(suite.T(), app)
	assert.Error(suite.T(), err)
	var verrs models.ValidationErrors
	assert.False(suite.T(), errors.As(err, &verrs))
}

func (suite *ApplicationServiceTestSuite) TestUpdateStatus_Valid() {
	suite.mockAppRepo.On("UpdateStatus", mock.Anything, 1, models.StatusApproved).Return(nil)
	suite.mockLogRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.AdminLogEntry) bool {
		details, ok := entry.Details.(map[string]any)
		return entry.Action == models.ActionUpdateStatus &&
			entry.ApplicationID == 1 &&
			entry.Actor == "bob" &&
			ok && details["newStatus"] == "Godkänd"
	})).Return(nil).Once()

	app, err := suite.service.UpdateStatus(context.Background(), 1, models.StatusApproved, "bob")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, app.ID)
	assert.Equal(suite.T(), models.StatusApproved, app.Status)
	suite.mockAppRepo.AssertExpectations(suite.T())
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestUpdateStatus_InvalidID() {
	_, err := suite.service.UpdateStatus(context.Background(), 0, models.StatusApproved, "bob")

	var verrs models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &verrs)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	_, err := suite.service.UpdateStatus(context.Background(), 1, models.Status("Klar"), "bob")

	var verrs models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &verrs)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestUpdateStatus_NotFound() {
	notFound := repositories.ErrNotFound
	suite.mockAppRepo.On("UpdateStatus", mock.Anything, 42, models.StatusRejected).Return(notFound)

	_, err := suite.service.UpdateStatus(context.Background(), 42, models.StatusRejected, "bob")

	assert.ErrorIs(suite.T(), err, repositories.ErrNotFound)
	// A failed attempt must produce zero log entries
	suite.mockLogRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestUpdateStatus_LogFailureDoesNotPropagate() {
	suite.mockAppRepo.On("UpdateStatus", mock.Anything, 1, models.StatusInReview).Return(nil)
	suite.mockLogRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	app, err := suite.service.UpdateStatus(context.Background(), 1, models.StatusInReview, "bob")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusInReview, app.Status)
}

func (suite *ApplicationServiceTestSuite) TestDelete_Valid() {
	suite.mockAppRepo.On("Delete", mock.Anything, 1).Return(nil)
	suite.mockLogRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.AdminLogEntry) bool {
		return entry.Action == models.ActionDeleteApplication &&
			entry.ApplicationID == 1 &&
			entry.Details == nil
	})).Return(nil).Once()

	err := suite.service.Delete(context.Background(), 1, "bob")

	assert.NoError(suite.T(), err)
	suite.mockAppRepo.AssertExpectations(suite.T())
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestDelete_InvalidID() {
	err := suite.service.Delete(context.Background(), -3, "bob")

	var verrs models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &verrs)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestDelete_NotFound() {
	suite.mockAppRepo.On("Delete", mock.Anything, 42).Return(repositories.ErrNotFound)

	err := suite.service.Delete(context.Background(), 42, "bob")

	assert.ErrorIs(suite.T(), err, repositories.ErrNotFound)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func TestApplicationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}

func TestAdminLogServiceRecentLimit(t *testing.T) {
	mockLogRepo := new(mocks.MockAdminLogRepository)
	service := NewAdminLogService(mockLogRepo)

	mockLogRepo.On("Recent", mock.Anything, RecentLogLimit).
		Return([]models.AdminLogEntry{}, nil)

	entries, err := service.Recent(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, entries)
	mockLogRepo.AssertExpectations(t)
}
