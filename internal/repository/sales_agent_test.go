//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"crm-backend/internal/database/models"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SalesAgentRepositoryTestSuite tests the SalesAgentRepository
type SalesAgentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	users         *UserRepository
	agents        *SalesAgentRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *SalesAgentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.agents = NewSalesAgentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *SalesAgentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SalesAgentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *SalesAgentRepositoryTestSuite) createUser(role models.UserRole) *models.User {
	user := suite.factories.User.WithRole(role)
	suite.Require().NoError(suite.users.Create(suite.ctx, user))
	return user
}

// TestCreateAndGetByUserID tests creating an agent profile and reading it back
func (suite *SalesAgentRepositoryTestSuite) TestCreateAndGetByUserID() {
	user := suite.createUser(models.UserRoleSalesAgent)
	agent := suite.factories.SalesAgent.Create(user.ID)

	suite.Require().NoError(suite.agents.Create(suite.ctx, agent))
	suite.NotZero(agent.ID)

	found, err := suite.agents.GetByUserID(suite.ctx, user.ID)
	suite.NoError(err)
	suite.Equal(agent.ID, found.ID)
	suite.Equal(*agent.EmployeeID, *found.EmployeeID)
}

// TestOneProfilePerUser tests that a user can hold only one agent profile
func (suite *SalesAgentRepositoryTestSuite) TestOneProfilePerUser() {
	user := suite.createUser(models.UserRoleSalesAgent)
	suite.Require().NoError(suite.agents.Create(suite.ctx, suite.factories.SalesAgent.Create(user.ID)))

	err := suite.agents.Create(suite.ctx, suite.factories.SalesAgent.Create(user.ID))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestCreateForMissingUser tests the user foreign key
func (suite *SalesAgentRepositoryTestSuite) TestCreateForMissingUser() {
	err := suite.agents.Create(suite.ctx, suite.factories.SalesAgent.Create(424242))

	suite.ErrorIs(err, gorm.ErrForeignKeyViolated)
}

// TestListByDepartment tests the department filter
func (suite *SalesAgentRepositoryTestSuite) TestListByDepartment() {
	enterprise := suite.factories.SalesAgent.Create(suite.createUser(models.UserRoleSalesAgent).ID)
	smb := suite.factories.SalesAgent.Create(suite.createUser(models.UserRoleSalesAgent).ID)
	smb.Department = "SMB"
	suite.Require().NoError(suite.agents.Create(suite.ctx, enterprise))
	suite.Require().NoError(suite.agents.Create(suite.ctx, smb))

	department := "SMB"
	agents, err := suite.agents.List(suite.ctx, SalesAgentFilter{Department: &department}, Page{})

	suite.NoError(err)
	suite.Require().Len(agents, 1)
	suite.Equal(smb.ID, agents[0].ID)
}

// TestSalesAgentRepositoryTestSuite runs the test suite
func TestSalesAgentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SalesAgentRepositoryTestSuite))
}
