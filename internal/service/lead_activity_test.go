package service_test

import (
	"context"
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LeadActivityServiceTestSuite defines the test suite for LeadActivityService
type LeadActivityServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockActivityRepo *mocks.MockLeadActivityRepositoryInterface
	mockLeadRepo     *mocks.MockLeadRepositoryInterface
	mockAgentRepo    *mocks.MockSalesAgentRepositoryInterface
	mockHeadRepo     *mocks.MockHeadOfSalesRepositoryInterface
	activityService  *service.LeadActivityService
	ctx              context.Context
}

// SetupTest sets up the test suite
func (suite *LeadActivityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockActivityRepo = mocks.NewMockLeadActivityRepositoryInterface(suite.ctrl)
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockAgentRepo = mocks.NewMockSalesAgentRepositoryInterface(suite.ctrl)
	suite.mockHeadRepo = mocks.NewMockHeadOfSalesRepositoryInterface(suite.ctrl)
	suite.activityService = service.NewLeadActivityService(suite.mockActivityRepo, suite.mockLeadRepo, suite.mockAgentRepo, suite.mockHeadRepo, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *LeadActivityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadActivityServiceTestSuite) expectLead(id uint) {
	suite.mockLeadRepo.EXPECT().GetByID(suite.ctx, id).Return(&models.Lead{BaseModel: models.BaseModel{ID: id}}, nil)
}

// TestAssignAgentToLead tests a lead assignment
func (suite *LeadActivityServiceTestSuite) TestAssignAgentToLead() {
	head := uint(5)
	suite.expectLead(1)
	suite.mockAgentRepo.EXPECT().GetByID(suite.ctx, uint(2)).Return(&models.SalesAgent{}, nil)
	suite.mockHeadRepo.EXPECT().GetByID(suite.ctx, head).Return(&models.HeadOfSales{}, nil)
	suite.mockActivityRepo.EXPECT().GetAssignment(suite.ctx, uint(1), uint(2)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockActivityRepo.EXPECT().CreateAssignment(suite.ctx, gomock.Any()).Return(nil)

	assignment, err := suite.activityService.AssignAgent(suite.ctx, 1, &service.CreateLeadAssignmentRequest{
		SalesAgentID:   2,
		AssignedByID:   &head,
		AssignmentType: "secondary",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.AssignmentTypeSecondary, assignment.AssignmentType)
	assert.True(suite.T(), assignment.IsActive)
}

// TestAssignAgentToLeadTwice tests that a lead-agent pair is unique
func (suite *LeadActivityServiceTestSuite) TestAssignAgentToLeadTwice() {
	suite.expectLead(1)
	suite.mockAgentRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&models.SalesAgent{}, nil)
	suite.mockActivityRepo.EXPECT().GetAssignment(gomock.Any(), uint(1), uint(2)).Return(&models.LeadAssignment{}, nil)

	_, err := suite.activityService.AssignAgent(suite.ctx, 1, &service.CreateLeadAssignmentRequest{SalesAgentID: 2})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAgentAlreadyOnLead)
}

// TestLogActionInvalidType tests action type validation
func (suite *LeadActivityServiceTestSuite) TestLogActionInvalidType() {
	_, err := suite.activityService.LogAction(suite.ctx, 1, &service.CreateLeadActionRequest{ActionType: "fax"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestLogCommunicationDefaultsToOutbound tests the default direction
func (suite *LeadActivityServiceTestSuite) TestLogCommunicationDefaultsToOutbound() {
	suite.expectLead(1)
	suite.mockActivityRepo.EXPECT().CreateCommunication(suite.ctx, gomock.Any()).Return(nil)

	communication, err := suite.activityService.LogCommunication(suite.ctx, 1, &service.CreateLeadCommunicationRequest{Method: "phone"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.CommunicationDirectionOutbound, communication.Direction)
	assert.False(suite.T(), communication.CommunicatedAt.IsZero())
}

// TestAddOversightTwice tests that a head of sales oversees a lead at most once
func (suite *LeadActivityServiceTestSuite) TestAddOversightTwice() {
	suite.expectLead(1)
	suite.mockHeadRepo.EXPECT().GetByID(suite.ctx, uint(5)).Return(&models.HeadOfSales{}, nil)
	suite.mockActivityRepo.EXPECT().GetOversight(suite.ctx, uint(1), uint(5)).Return(&models.HeadLeadOversight{}, nil)

	_, err := suite.activityService.AddOversight(suite.ctx, 1, &service.CreateOversightRequest{HeadOfSalesID: 5})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadAlreadyOverseen)
}

// TestListStatusHistoryUnknownLead tests history of a missing lead
func (suite *LeadActivityServiceTestSuite) TestListStatusHistoryUnknownLead() {
	suite.mockLeadRepo.EXPECT().GetByID(suite.ctx, uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.activityService.ListStatusHistory(suite.ctx, 3)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
}

// TestLeadActivityServiceTestSuite runs the test suite
func TestLeadActivityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadActivityServiceTestSuite))
}
