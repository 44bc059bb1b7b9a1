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

// HeadOfSalesServiceTestSuite defines the test suite for HeadOfSalesService
type HeadOfSalesServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockHeadRepo  *mocks.MockHeadOfSalesRepositoryInterface
	mockUserRepo  *mocks.MockUserRepositoryInterface
	mockAgentRepo *mocks.MockSalesAgentRepositoryInterface
	headService   *service.HeadOfSalesService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *HeadOfSalesServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockHeadRepo = mocks.NewMockHeadOfSalesRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockAgentRepo = mocks.NewMockSalesAgentRepositoryInterface(suite.ctrl)
	suite.headService = service.NewHeadOfSalesService(suite.mockHeadRepo, suite.mockUserRepo, suite.mockAgentRepo, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *HeadOfSalesServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateHeadOfSales tests creating a head of sales profile for an existing user
func (suite *HeadOfSalesServiceTestSuite) TestCreateHeadOfSales() {
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, uint(8)).Return(&models.User{}, nil)
	suite.mockHeadRepo.EXPECT().GetByUserID(suite.ctx, uint(8)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockHeadRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	head, err := suite.headService.Create(suite.ctx, &service.CreateHeadOfSalesRequest{UserID: 8, Department: "EMEA"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), uint(8), head.UserID)
	assert.Equal(suite.T(), "EMEA", head.Department)
}

// TestCreateHeadOfSalesMissingUser tests that a profile needs an existing user
func (suite *HeadOfSalesServiceTestSuite) TestCreateHeadOfSalesMissingUser() {
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, uint(404)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockHeadRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.headService.Create(suite.ctx, &service.CreateHeadOfSalesRequest{UserID: 404})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestCreateHeadOfSalesTwice tests that a user holds at most one head of sales profile
func (suite *HeadOfSalesServiceTestSuite) TestCreateHeadOfSalesTwice() {
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, uint(8)).Return(&models.User{}, nil)
	suite.mockHeadRepo.EXPECT().GetByUserID(suite.ctx, uint(8)).Return(&models.HeadOfSales{}, nil)

	_, err := suite.headService.Create(suite.ctx, &service.CreateHeadOfSalesRequest{UserID: 8})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserAlreadyHeadOfSales)
}

// TestAssignAgent tests adding an agent to a team
func (suite *HeadOfSalesServiceTestSuite) TestAssignAgent() {
	suite.mockHeadRepo.EXPECT().GetByID(suite.ctx, uint(1)).Return(&models.HeadOfSales{}, nil)
	suite.mockAgentRepo.EXPECT().GetByID(suite.ctx, uint(2)).Return(&models.SalesAgent{}, nil)
	suite.mockHeadRepo.EXPECT().GetTeamAssignment(suite.ctx, uint(1), uint(2)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockHeadRepo.EXPECT().CreateTeamAssignment(suite.ctx, gomock.Any()).Return(nil)

	assignment, err := suite.headService.AssignAgent(suite.ctx, 1, &service.AssignAgentRequest{SalesAgentID: 2, Notes: "onboarding"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), uint(1), assignment.HeadOfSalesID)
	assert.Equal(suite.T(), uint(2), assignment.SalesAgentID)
	assert.True(suite.T(), assignment.IsActive)
}

// TestAssignAgentTwice tests that a head-agent pair is unique
func (suite *HeadOfSalesServiceTestSuite) TestAssignAgentTwice() {
	suite.mockHeadRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&models.HeadOfSales{}, nil)
	suite.mockAgentRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&models.SalesAgent{}, nil)
	suite.mockHeadRepo.EXPECT().GetTeamAssignment(gomock.Any(), uint(1), uint(2)).Return(&models.SalesTeamAssignment{}, nil)

	_, err := suite.headService.AssignAgent(suite.ctx, 1, &service.AssignAgentRequest{SalesAgentID: 2})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAgentAlreadyInTeam)
}

// TestListAgentsUnknownHead tests listing the team of a missing head of sales
func (suite *HeadOfSalesServiceTestSuite) TestListAgentsUnknownHead() {
	suite.mockHeadRepo.EXPECT().GetByID(suite.ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.headService.ListAgents(suite.ctx, 99)

	assert.ErrorIs(suite.T(), err, apperrors.ErrHeadOfSalesNotFound)
}

// TestHeadOfSalesServiceTestSuite runs the test suite
func TestHeadOfSalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HeadOfSalesServiceTestSuite))
}
