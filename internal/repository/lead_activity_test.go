//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"crm-backend/internal/database/models"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeadActivityRepositoryTestSuite tests the LeadActivityRepository
type LeadActivityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	activity      *LeadActivityRepository
	leads         *LeadRepository
	users         *UserRepository
	agents        *SalesAgentRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *LeadActivityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.activity = NewLeadActivityRepository(db)
	suite.leads = NewLeadRepository(db)
	suite.users = NewUserRepository(db)
	suite.agents = NewSalesAgentRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadActivityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadActivityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *LeadActivityRepositoryTestSuite) createLead() *models.Lead {
	lead := suite.factories.Lead.Create()
	suite.Require().NoError(suite.leads.Create(suite.ctx, lead))
	return lead
}

func (suite *LeadActivityRepositoryTestSuite) createAgent() *models.SalesAgent {
	user := suite.factories.User.WithRole(models.UserRoleSalesAgent)
	suite.Require().NoError(suite.users.Create(suite.ctx, user))
	agent := suite.factories.SalesAgent.Create(user.ID)
	suite.Require().NoError(suite.agents.Create(suite.ctx, agent))
	return agent
}

// TestAssignments tests that an agent is assigned to a lead at most once
func (suite *LeadActivityRepositoryTestSuite) TestAssignments() {
	lead := suite.createLead()
	agent := suite.createAgent()

	assignment := &models.LeadAssignment{
		LeadID:         lead.ID,
		SalesAgentID:   agent.ID,
		AssignmentType: models.AssignmentTypePrimary,
		IsActive:       true,
		AssignedAt:     time.Now().UTC(),
	}
	suite.Require().NoError(suite.activity.CreateAssignment(suite.ctx, assignment))

	duplicate := *assignment
	duplicate.ID = 0
	suite.ErrorIs(suite.activity.CreateAssignment(suite.ctx, &duplicate), gorm.ErrDuplicatedKey)

	found, err := suite.activity.GetAssignment(suite.ctx, lead.ID, agent.ID)
	suite.NoError(err)
	suite.Equal(assignment.ID, found.ID)
}

// TestLeadActivityRepositoryTestSuite runs the test suite
func TestLeadActivityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadActivityRepositoryTestSuite))
}
