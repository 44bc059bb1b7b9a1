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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	server          *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)

	userHandler := handlers.NewUserHandler(suite.mockUserService)

	suite.server = testutils.SetupHTTPTest()
	r := suite.server.Router
	r.POST("/users/", userHandler.CreateUser)
	r.GET("/users/", userHandler.ListUsers)
	r.GET("/users/:id", userHandler.GetUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateUser tests that the response carries no password material
func (suite *UserHandlerTestSuite) TestCreateUser() {
	suite.mockUserService.EXPECT().
		Create(gomock.Any(), &service.CreateUserRequest{
			Email:    "ana@example.com",
			Username: "ana",
			Password: "s3cret-pass",
		}).
		Return(&service.UserResponse{ID: 1, Email: "ana@example.com", Username: "ana", Role: models.UserRoleCustomer, IsActive: true}, nil)

	recorder := suite.server.MakeRequest(http.MethodPost, "/users/", map[string]interface{}{
		"email":    "ana@example.com",
		"username": "ana",
		"password": "s3cret-pass",
	})

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	assert.Equal(suite.T(), "customer", got["role"])
	assert.NotContains(suite.T(), got, "password")
	assert.NotContains(suite.T(), got, "hashed_password")
}

// TestCreateUserDuplicateEmail tests the constraint violation mapping
func (suite *UserHandlerTestSuite) TestCreateUserDuplicateEmail() {
	suite.mockUserService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserEmailExists)

	recorder := suite.server.MakeRequest(http.MethodPost, "/users/", map[string]interface{}{
		"email":    "ana@example.com",
		"username": "ana2",
		"password": "s3cret-pass",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "email already registered")
}

// TestListUsers tests filter binding
func (suite *UserHandlerTestSuite) TestListUsers() {
	active := true
	suite.mockUserService.EXPECT().
		List(gomock.Any(), &service.ListUsersQuery{Role: "sales_agent", IsActive: &active}).
		Return([]service.UserResponse{{ID: 1}, {ID: 2}}, nil)

	recorder := suite.server.MakeRequest(http.MethodGet, "/users/?role=sales_agent&is_active=true", nil)

	var got []service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Len(suite.T(), got, 2)
}

// TestGetUserNotFound tests the 404 path
func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	suite.mockUserService.EXPECT().GetByID(gomock.Any(), uint(5)).Return(nil, apperrors.ErrUserNotFound)

	recorder := suite.server.MakeRequest(http.MethodGet, "/users/5", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
