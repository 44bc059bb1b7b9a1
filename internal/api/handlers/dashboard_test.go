package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockDashboardService *mocks.MockDashboardServiceInterface
	server               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDashboardService = mocks.NewMockDashboardServiceInterface(suite.ctrl)

	suite.server = testutils.SetupHTTPTest()
	suite.server.Router.GET("/dashboard/stats", handlers.NewDashboardHandler(suite.mockDashboardService).GetStats)
}

// TearDownTest cleans up after each test
func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestDashboardStats tests the stats payload
func (suite *DashboardHandlerTestSuite) TestDashboardStats() {
	suite.mockDashboardService.EXPECT().Stats(gomock.Any()).Return(&service.DashboardStats{
		TotalLeads:         3,
		NewLeads:           1,
		TotalUsers:         4,
		ActiveTasks:        2,
		LeadConversionRate: 33.33,
	}, nil)

	recorder := suite.server.MakeRequest(http.MethodGet, "/dashboard/stats", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(),
		`{"total_leads":3,"new_leads":1,"total_users":4,"active_tasks":2,"lead_conversion_rate":33.33}`,
		recorder.Body.String())
}

// TestDashboardStatsFailure tests the 500 path
func (suite *DashboardHandlerTestSuite) TestDashboardStatsFailure() {
	suite.mockDashboardService.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("db down"))

	recorder := suite.server.MakeRequest(http.MethodGet, "/dashboard/stats", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "db down")
}

// TestDashboardHandlerTestSuite runs the test suite
func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
