//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"crm-backend/internal/database/models"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// DashboardRepositoryTestSuite tests the DashboardRepository against real rows
type DashboardRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DashboardRepository
	leads         *LeadRepository
	users         *UserRepository
	tasks         *TaskRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *DashboardRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewDashboardRepository(db)
	suite.leads = NewLeadRepository(db)
	suite.users = NewUserRepository(db)
	suite.tasks = NewTaskRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *DashboardRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DashboardRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestCounts tests the aggregate counters
func (suite *DashboardRepositoryTestSuite) TestCounts() {
	for _, status := range []models.LeadStatus{models.LeadStatusNew, models.LeadStatusNew, models.LeadStatusClosedWon, models.LeadStatusQualified} {
		suite.Require().NoError(suite.leads.Create(suite.ctx, suite.factories.Lead.WithStatus(status)))
	}
	suite.Require().NoError(suite.users.Create(suite.ctx, suite.factories.User.Create()))
	pending := suite.factories.Task.Create()
	done := suite.factories.Task.Create()
	done.Status = models.TaskStatusCompleted
	suite.Require().NoError(suite.tasks.Create(suite.ctx, pending))
	suite.Require().NoError(suite.tasks.Create(suite.ctx, done))

	counts, err := suite.repo.Counts(suite.ctx)

	suite.NoError(err)
	suite.Equal(int64(4), counts.TotalLeads)
	suite.Equal(int64(2), counts.NewLeads)
	suite.Equal(int64(1), counts.ClosedWonLeads)
	suite.Equal(int64(1), counts.TotalUsers)
	suite.Equal(int64(1), counts.ActiveTasks)
}

// TestCountsEmpty tests the counters on an empty store
func (suite *DashboardRepositoryTestSuite) TestCountsEmpty() {
	counts, err := suite.repo.Counts(suite.ctx)

	suite.NoError(err)
	suite.Equal(&DashboardCounts{}, counts)
}

// TestDashboardRepositoryTestSuite runs the test suite
func TestDashboardRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardRepositoryTestSuite))
}
