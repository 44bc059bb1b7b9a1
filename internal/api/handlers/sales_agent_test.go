package handlers_test

import (
	"net/http"
	"testing"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SalesAgentHandlerTestSuite defines the test suite for SalesAgentHandler
type SalesAgentHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAgentService *mocks.MockSalesAgentServiceInterface
	server           *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SalesAgentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgentService = mocks.NewMockSalesAgentServiceInterface(suite.ctrl)

	agentHandler := handlers.NewSalesAgentHandler(suite.mockAgentService)

	suite.server = testutils.SetupHTTPTest()
	r := suite.server.Router
	r.POST("/sales-agents/", agentHandler.CreateSalesAgent)
	r.GET("/sales-agents/", agentHandler.ListSalesAgents)
	r.GET("/sales-agents/:id", agentHandler.GetSalesAgent)
}

// TearDownTest cleans up after each test
func (suite *SalesAgentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSalesAgentForMissingUser tests the 404 path
func (suite *SalesAgentHandlerTestSuite) TestCreateSalesAgentForMissingUser() {
	suite.mockAgentService.EXPECT().
		Create(gomock.Any(), &service.CreateSalesAgentRequest{UserID: 42}).
		Return(nil, apperrors.ErrUserNotFound)

	recorder := suite.server.MakeRequest(http.MethodPost, "/sales-agents/", map[string]interface{}{"user_id": 42})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestCreateSalesAgentTwice tests the 400 path for an existing profile
func (suite *SalesAgentHandlerTestSuite) TestCreateSalesAgentTwice() {
	suite.mockAgentService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserAlreadySalesAgent)

	recorder := suite.server.MakeRequest(http.MethodPost, "/sales-agents/", map[string]interface{}{"user_id": 1})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "already a sales agent")
}

// TestListSalesAgents tests the department filter
func (suite *SalesAgentHandlerTestSuite) TestListSalesAgents() {
	suite.mockAgentService.EXPECT().
		List(gomock.Any(), &service.ListSalesAgentsQuery{Department: "enterprise"}).
		Return([]models.SalesAgent{}, nil)

	recorder := suite.server.MakeRequest(http.MethodGet, "/sales-agents/?department=enterprise", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), "[]", recorder.Body.String())
}

// TestGetSalesAgentInvalidID tests id parsing
func (suite *SalesAgentHandlerTestSuite) TestGetSalesAgentInvalidID() {
	recorder := suite.server.MakeRequest(http.MethodGet, "/sales-agents/x1", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid id")
}

// TestSalesAgentHandlerTestSuite runs the test suite
func TestSalesAgentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SalesAgentHandlerTestSuite))
}
