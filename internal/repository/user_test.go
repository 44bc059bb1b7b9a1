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

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(suite.ctx, user)

	suite.NoError(err)
	suite.NotZero(user.ID)
	suite.NotZero(user.CreatedAt)
	suite.NotZero(user.UpdatedAt)
}

// TestCreateDuplicateEmail tests that a second user with the same email is rejected and not stored
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.WithEmail("dup@example.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))

	second := suite.factories.User.WithEmail("dup@example.com")
	err := suite.repo.Create(suite.ctx, second)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)

	users, err := suite.repo.List(suite.ctx, UserFilter{}, Page{})
	suite.NoError(err)
	suite.Len(users, 1)
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("lookup@example.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	found, err := suite.repo.GetByEmail(suite.ctx, "lookup@example.com")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetByEmail(suite.ctx, "missing@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDNotFound tests retrieving a nonexistent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	user, err := suite.repo.GetByID(suite.ctx, 999999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(user)
}

// TestListFilters tests listing users with role, activity and pagination filters
func (suite *UserRepositoryTestSuite) TestListFilters() {
	admin := suite.factories.User.WithRole(models.UserRoleAdmin)
	agent := suite.factories.User.WithRole(models.UserRoleSalesAgent)
	inactive := suite.factories.User.WithRole(models.UserRoleSalesAgent)
	suite.Require().NoError(suite.repo.Create(suite.ctx, admin))
	suite.Require().NoError(suite.repo.Create(suite.ctx, agent))
	suite.Require().NoError(suite.repo.Create(suite.ctx, inactive))
	suite.Require().NoError(suite.baseTestSuite.DB.Model(inactive).Update("is_active", false).Error)

	role := models.UserRoleSalesAgent
	users, err := suite.repo.List(suite.ctx, UserFilter{Role: &role}, Page{})
	suite.NoError(err)
	suite.Len(users, 2)

	active := true
	users, err = suite.repo.List(suite.ctx, UserFilter{Role: &role, IsActive: &active}, Page{})
	suite.NoError(err)
	suite.Require().Len(users, 1)
	suite.Equal(agent.ID, users[0].ID)

	users, err = suite.repo.List(suite.ctx, UserFilter{}, Page{Skip: 1, Limit: 1})
	suite.NoError(err)
	suite.Require().Len(users, 1)
	suite.Equal(agent.ID, users[0].ID)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
