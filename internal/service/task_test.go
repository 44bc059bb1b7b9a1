package service_test

import (
	"context"
	"testing"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTaskRepo *mocks.MockTaskRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockLeadRepo *mocks.MockLeadRepositoryInterface
	taskService  *service.TaskService
	ctx          context.Context
}

// SetupTest sets up the test suite
func (suite *TaskServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.taskService = service.NewTaskService(suite.mockTaskRepo, suite.mockUserRepo, suite.mockLeadRepo, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTaskDefaults tests default status and priority
func (suite *TaskServiceTestSuite) TestCreateTaskDefaults() {
	suite.mockTaskRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	task, err := suite.taskService.Create(suite.ctx, &service.CreateTaskRequest{Title: "Send proposal"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TaskStatusPending, task.Status)
	assert.Equal(suite.T(), models.TaskPriorityMedium, task.Priority)
	assert.Nil(suite.T(), task.DueDate)
}

// TestCreateTaskChecksReferences tests assignee and lead existence checks
func (suite *TaskServiceTestSuite) TestCreateTaskChecksReferences() {
	assignee := uint(2)
	lead := uint(3)
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, assignee).Return(&models.User{}, nil)
	suite.mockLeadRepo.EXPECT().GetByID(suite.ctx, lead).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.taskService.Create(suite.ctx, &service.CreateTaskRequest{
		Title:         "Call",
		AssignedToID:  &assignee,
		RelatedLeadID: &lead,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
}

// TestCreateTaskInvalidPriority tests enum validation
func (suite *TaskServiceTestSuite) TestCreateTaskInvalidPriority() {
	_, err := suite.taskService.Create(suite.ctx, &service.CreateTaskRequest{Title: "Call", Priority: "urgent"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTaskPriority)
}

// TestUpdateTask tests the sparse field map
func (suite *TaskServiceTestSuite) TestUpdateTask() {
	status := "In_Progress"
	due := time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	suite.mockTaskRepo.EXPECT().GetByID(suite.ctx, uint(4)).Return(&models.Task{}, nil)
	suite.mockTaskRepo.EXPECT().
		Update(suite.ctx, uint(4), map[string]interface{}{
			"status":   "in_progress",
			"due_date": due.UTC(),
		}).
		Return(&models.Task{Status: models.TaskStatusInProgress}, nil)

	task, err := suite.taskService.Update(suite.ctx, 4, &service.UpdateTaskRequest{Status: &status, DueDate: &due})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TaskStatusInProgress, task.Status)
}

// TestUpdateTaskNotFound tests the not found mapping
func (suite *TaskServiceTestSuite) TestUpdateTaskNotFound() {
	title := "x"
	suite.mockTaskRepo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTaskRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.taskService.Update(suite.ctx, 4, &service.UpdateTaskRequest{Title: &title})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTaskNotFound)
}

// TestUpdateTaskNotFoundBeforeReferences tests that a missing task wins over a missing assignee
func (suite *TaskServiceTestSuite) TestUpdateTaskNotFoundBeforeReferences() {
	assignee := uint(12)
	suite.mockTaskRepo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.taskService.Update(suite.ctx, 4, &service.UpdateTaskRequest{AssignedToID: &assignee})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTaskNotFound)
}

// TestUpdateTaskMissingRelatedLead tests the reference check on an existing task
func (suite *TaskServiceTestSuite) TestUpdateTaskMissingRelatedLead() {
	lead := uint(30)
	suite.mockTaskRepo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(&models.Task{}, nil)
	suite.mockLeadRepo.EXPECT().GetByID(gomock.Any(), lead).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTaskRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.taskService.Update(suite.ctx, 4, &service.UpdateTaskRequest{RelatedLeadID: &lead})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
}

// TestListTasks tests filter translation
func (suite *TaskServiceTestSuite) TestListTasks() {
	status := models.TaskStatusPending
	priority := models.TaskPriorityHigh
	assignee := uint(2)
	suite.mockTaskRepo.EXPECT().
		List(suite.ctx, repository.TaskFilter{Status: &status, Priority: &priority, AssignedToID: &assignee}, repository.Page{Limit: 100}).
		Return([]models.Task{}, nil)

	tasks, err := suite.taskService.List(suite.ctx, &service.ListTasksQuery{Status: "pending", Priority: "high", AssignedToID: &assignee})

	suite.Require().NoError(err)
	assert.Empty(suite.T(), tasks)
}

// TestTaskServiceTestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
