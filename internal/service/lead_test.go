package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/events"
	"crm-backend/internal/logger"
	"crm-backend/internal/mocks"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	events []events.LeadStatusChanged
	err    error
}

func (p *recordingPublisher) PublishLeadStatusChanged(_ context.Context, event events.LeadStatusChanged) error {
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Healthy() bool { return true }
func (p *recordingPublisher) Close() error  { return nil }

// LeadServiceTestSuite defines the test suite for LeadService
type LeadServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockLeadRepo  *mocks.MockLeadRepositoryInterface
	mockUserRepo  *mocks.MockUserRepositoryInterface
	mockAgentRepo *mocks.MockSalesAgentRepositoryInterface
	publisher     *recordingPublisher
	leadService   *service.LeadService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *LeadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockAgentRepo = mocks.NewMockSalesAgentRepositoryInterface(suite.ctrl)
	suite.publisher = &recordingPublisher{}
	suite.leadService = service.NewLeadService(suite.mockLeadRepo, suite.mockUserRepo, suite.mockAgentRepo, suite.publisher, service.NewValidator())
	suite.ctx = logger.ContextWithRequestID(context.Background(), "req-42")
}

// TearDownTest cleans up after each test
func (suite *LeadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadServiceTestSuite) expectLead(id uint) {
	suite.mockLeadRepo.EXPECT().GetByID(gomock.Any(), id).Return(&models.Lead{BaseModel: models.BaseModel{ID: id}}, nil)
}

// TestCreateLeadDefaults tests that a minimal lead gets status new and value 0
func (suite *LeadServiceTestSuite) TestCreateLeadDefaults() {
	suite.mockLeadRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, lead *models.Lead) error {
			lead.ID = 1
			return nil
		})

	lead, err := suite.leadService.Create(suite.ctx, &service.CreateLeadRequest{FirstName: "A", LastName: "B", Status: "new"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.LeadStatusNew, lead.Status)
	assert.Equal(suite.T(), 0.0, lead.Value)
}

// TestCreateLeadNormalizesStatus tests status normalization at the boundary
func (suite *LeadServiceTestSuite) TestCreateLeadNormalizesStatus() {
	suite.mockLeadRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	lead, err := suite.leadService.Create(suite.ctx, &service.CreateLeadRequest{FirstName: "A", LastName: "B", Status: " Qualified "})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.LeadStatusQualified, lead.Status)
}

// TestCreateLeadInvalidStatus tests that unknown statuses are rejected
func (suite *LeadServiceTestSuite) TestCreateLeadInvalidStatus() {
	_, err := suite.leadService.Create(suite.ctx, &service.CreateLeadRequest{FirstName: "A", LastName: "B", Status: "won"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidLeadStatus)
}

// TestCreateLeadMissingOwner tests the owner existence check
func (suite *LeadServiceTestSuite) TestCreateLeadMissingOwner() {
	owner := uint(77)
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, owner).Return(nil, gorm.ErrRecordNotFound)
	suite.mockLeadRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.leadService.Create(suite.ctx, &service.CreateLeadRequest{FirstName: "A", LastName: "B", OwnerID: &owner})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestListLeads tests filter translation
func (suite *LeadServiceTestSuite) TestListLeads() {
	status := models.LeadStatusQualified
	source := "referral"
	skip := 20
	suite.mockLeadRepo.EXPECT().
		List(suite.ctx, repository.LeadFilter{Status: &status, Source: &source}, repository.Page{Skip: 20, Limit: 100}).
		Return([]models.Lead{{Status: status}}, nil)

	leads, err := suite.leadService.List(suite.ctx, &service.ListLeadsQuery{
		PageQuery: service.PageQuery{Skip: &skip},
		Status:    "qualified",
		Source:    source,
	})

	suite.Require().NoError(err)
	assert.Len(suite.T(), leads, 1)
}

// TestUpdateLeadSendsOnlyPresentFields tests that the sparse update names only supplied fields
func (suite *LeadServiceTestSuite) TestUpdateLeadSendsOnlyPresentFields() {
	company := "Globex"
	value := 1500.0
	suite.expectLead(1)
	suite.mockLeadRepo.EXPECT().
		Update(suite.ctx, uint(1), repository.LeadUpdate{
			Fields: map[string]interface{}{"company": "Globex", "value": 1500.0},
		}).
		Return(&models.Lead{BaseModel: models.BaseModel{ID: 1}, Company: company, Value: value}, nil, nil)

	lead, err := suite.leadService.Update(suite.ctx, 1, &service.UpdateLeadRequest{Company: &company, Value: &value})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Globex", lead.Company)
	assert.Empty(suite.T(), suite.publisher.events)
}

// TestUpdateLeadStatusPublishesEvent tests that a status transition is announced
func (suite *LeadServiceTestSuite) TestUpdateLeadStatusPublishesEvent() {
	status := "QUALIFIED"
	changedBy := uint(4)
	changedAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	suite.expectLead(1)
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, changedBy).Return(&models.User{}, nil)
	suite.mockLeadRepo.EXPECT().
		Update(suite.ctx, uint(1), repository.LeadUpdate{
			Fields:      map[string]interface{}{"status": "qualified"},
			ChangedByID: &changedBy,
			Reason:      "budget confirmed",
		}).
		Return(
			&models.Lead{BaseModel: models.BaseModel{ID: 1}, Status: models.LeadStatusQualified},
			&models.LeadStatusHistory{
				LeadID:      1,
				OldStatus:   models.LeadStatusNew,
				NewStatus:   models.LeadStatusQualified,
				ChangedByID: &changedBy,
				Reason:      "budget confirmed",
				ChangedAt:   changedAt,
			},
			nil,
		)

	lead, err := suite.leadService.Update(suite.ctx, 1, &service.UpdateLeadRequest{
		Status:       &status,
		ChangedByID:  &changedBy,
		StatusReason: "budget confirmed",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.LeadStatusQualified, lead.Status)
	suite.Require().Len(suite.publisher.events, 1)
	event := suite.publisher.events[0]
	assert.Equal(suite.T(), uint(1), event.LeadID)
	assert.Equal(suite.T(), models.LeadStatusNew, event.OldStatus)
	assert.Equal(suite.T(), models.LeadStatusQualified, event.NewStatus)
	assert.False(suite.T(), event.Closed)
	assert.Equal(suite.T(), changedAt, event.ChangedAt)
	assert.Equal(suite.T(), "req-42", event.RequestID)
}

// TestUpdateLeadClosedWonMarksEventClosed tests that a terminal status is flagged on the event
func (suite *LeadServiceTestSuite) TestUpdateLeadClosedWonMarksEventClosed() {
	status := "closed_won"
	suite.expectLead(2)
	suite.mockLeadRepo.EXPECT().
		Update(suite.ctx, uint(2), repository.LeadUpdate{Fields: map[string]interface{}{"status": "closed_won"}}).
		Return(
			&models.Lead{BaseModel: models.BaseModel{ID: 2}, Status: models.LeadStatusClosedWon},
			&models.LeadStatusHistory{LeadID: 2, OldStatus: models.LeadStatusNegotiation, NewStatus: models.LeadStatusClosedWon},
			nil,
		)

	_, err := suite.leadService.Update(suite.ctx, 2, &service.UpdateLeadRequest{Status: &status})

	suite.Require().NoError(err)
	suite.Require().Len(suite.publisher.events, 1)
	assert.True(suite.T(), suite.publisher.events[0].Closed)
	assert.Equal(suite.T(), models.LeadStatusClosedWon, suite.publisher.events[0].NewStatus)
}

// TestUpdateLeadPublishFailureIsNotFatal tests that a broker failure does not fail the update
func (suite *LeadServiceTestSuite) TestUpdateLeadPublishFailureIsNotFatal() {
	suite.publisher.err = errors.New("broker down")
	status := "contacted"
	suite.expectLead(1)
	suite.mockLeadRepo.EXPECT().
		Update(gomock.Any(), uint(1), gomock.Any()).
		Return(&models.Lead{Status: models.LeadStatusContacted}, &models.LeadStatusHistory{LeadID: 1}, nil)

	lead, err := suite.leadService.Update(suite.ctx, 1, &service.UpdateLeadRequest{Status: &status})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.LeadStatusContacted, lead.Status)
	assert.Len(suite.T(), suite.publisher.events, 1)
}

// TestUpdateLeadNotFound tests the not found mapping
func (suite *LeadServiceTestSuite) TestUpdateLeadNotFound() {
	notes := "n"
	suite.mockLeadRepo.EXPECT().GetByID(gomock.Any(), uint(9)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockLeadRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.leadService.Update(suite.ctx, 9, &service.UpdateLeadRequest{Notes: &notes})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
}

// TestUpdateLeadNotFoundBeforeReferences tests that a missing lead wins over a missing owner
func (suite *LeadServiceTestSuite) TestUpdateLeadNotFoundBeforeReferences() {
	owner := uint(77)
	suite.mockLeadRepo.EXPECT().GetByID(gomock.Any(), uint(9)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.leadService.Update(suite.ctx, 9, &service.UpdateLeadRequest{OwnerID: &owner})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
}

// TestUpdateLeadMissingOwner tests the reference check on an existing lead
func (suite *LeadServiceTestSuite) TestUpdateLeadMissingOwner() {
	owner := uint(77)
	suite.expectLead(1)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), owner).Return(nil, gorm.ErrRecordNotFound)
	suite.mockLeadRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.leadService.Update(suite.ctx, 1, &service.UpdateLeadRequest{OwnerID: &owner})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestUpdateLeadRejectsEmptyPayload tests that an update must name at least one field
func (suite *LeadServiceTestSuite) TestUpdateLeadRejectsEmptyPayload() {
	_, err := suite.leadService.Update(suite.ctx, 1, &service.UpdateLeadRequest{StatusReason: "no-op"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyUpdate)
}

// TestUpdateLeadInvalidEmail tests validation of present fields
func (suite *LeadServiceTestSuite) TestUpdateLeadInvalidEmail() {
	email := "nope"

	_, err := suite.leadService.Update(suite.ctx, 1, &service.UpdateLeadRequest{Email: &email})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestLeadServiceTestSuite runs the test suite
func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
