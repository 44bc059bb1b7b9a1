package service

import (
	"context"
	"fmt"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TaskService handles business logic for tasks
type TaskService struct {
	repo      repository.TaskRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	leadRepo  repository.LeadRepositoryInterface
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(
	repo repository.TaskRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	validator *validator.Validate,
) *TaskService {
	return &TaskService{
		repo:      repo,
		userRepo:  userRepo,
		leadRepo:  leadRepo,
		validator: validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title         string     `json:"title" validate:"required,max=200"`
	Description   string     `json:"description,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Status        string     `json:"status,omitempty" example:"pending"`
	Priority      string     `json:"priority,omitempty" example:"medium"`
	AssignedToID  *uint      `json:"assigned_to_id,omitempty"`
	RelatedLeadID *uint      `json:"related_lead_id,omitempty"`
}

// UpdateTaskRequest represents a partial task update. Only non-null fields are applied.
type UpdateTaskRequest struct {
	Title         *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string    `json:"description,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
	AssignedToID  *uint      `json:"assigned_to_id,omitempty"`
	RelatedLeadID *uint      `json:"related_lead_id,omitempty"`
}

// ListTasksQuery holds the filters for listing tasks
type ListTasksQuery struct {
	PageQuery
	Status        string `form:"status"`
	Priority      string `form:"priority"`
	AssignedToID  *uint  `form:"assigned_to_id"`
	RelatedLeadID *uint  `form:"related_lead_id"`
}

// Create creates a new task
func (s *TaskService) Create(ctx context.Context, req *CreateTaskRequest) (*models.Task, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	status := models.TaskStatusPending
	if req.Status != "" {
		parsed, ok := models.ParseTaskStatus(req.Status)
		if !ok {
			return nil, apperrors.ErrInvalidTaskStatus
		}
		status = parsed
	}
	priority := models.TaskPriorityMedium
	if req.Priority != "" {
		parsed, ok := models.ParseTaskPriority(req.Priority)
		if !ok {
			return nil, apperrors.ErrInvalidTaskPriority
		}
		priority = parsed
	}

	if err := s.checkReferences(ctx, req.AssignedToID, req.RelatedLeadID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:         req.Title,
		Description:   req.Description,
		DueDate:       utcPtr(req.DueDate),
		Status:        status,
		Priority:      priority,
		AssignedToID:  req.AssignedToID,
		RelatedLeadID: req.RelatedLeadID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, translateStoreError(err, "create task", nil, nil)
	}
	return task, nil
}

// GetByID retrieves a task by ID
func (s *TaskService) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "get task", apperrors.ErrTaskNotFound, nil)
	}
	return task, nil
}

// List retrieves tasks matching the query, earliest due date first
func (s *TaskService) List(ctx context.Context, query *ListTasksQuery) ([]models.Task, error) {
	page, err := query.page()
	if err != nil {
		return nil, err
	}

	filter := repository.TaskFilter{
		AssignedToID:  query.AssignedToID,
		RelatedLeadID: query.RelatedLeadID,
	}
	if query.Status != "" {
		status, ok := models.ParseTaskStatus(query.Status)
		if !ok {
			return nil, apperrors.ErrInvalidTaskStatus
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, ok := models.ParseTaskPriority(query.Priority)
		if !ok {
			return nil, apperrors.ErrInvalidTaskPriority
		}
		filter.Priority = &priority
	}

	tasks, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// Update applies a partial update to a task
func (s *TaskService) Update(ctx context.Context, id uint, req *UpdateTaskRequest) (*models.Task, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	fields, err := req.fields()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, apperrors.ErrEmptyUpdate
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, translateStoreError(err, "get task", apperrors.ErrTaskNotFound, nil)
	}
	if err := s.checkReferences(ctx, req.AssignedToID, req.RelatedLeadID); err != nil {
		return nil, err
	}

	task, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, translateStoreError(err, "update task", apperrors.ErrTaskNotFound, nil)
	}
	return task, nil
}

func (s *TaskService) checkReferences(ctx context.Context, assigneeID, leadID *uint) error {
	if assigneeID != nil {
		if _, err := s.userRepo.GetByID(ctx, *assigneeID); err != nil {
			return translateStoreError(err, "get assignee", apperrors.ErrUserNotFound, nil)
		}
	}
	if leadID != nil {
		if _, err := s.leadRepo.GetByID(ctx, *leadID); err != nil {
			return translateStoreError(err, "get related lead", apperrors.ErrLeadNotFound, nil)
		}
	}
	return nil
}

func (r *UpdateTaskRequest) fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.DueDate != nil {
		fields["due_date"] = r.DueDate.UTC()
	}
	if r.Status != nil {
		status, ok := models.ParseTaskStatus(*r.Status)
		if !ok {
			return nil, apperrors.ErrInvalidTaskStatus
		}
		fields["status"] = string(status)
	}
	if r.Priority != nil {
		priority, ok := models.ParseTaskPriority(*r.Priority)
		if !ok {
			return nil, apperrors.ErrInvalidTaskPriority
		}
		fields["priority"] = string(priority)
	}
	if r.AssignedToID != nil {
		fields["assigned_to_id"] = *r.AssignedToID
	}
	if r.RelatedLeadID != nil {
		fields["related_lead_id"] = *r.RelatedLeadID
	}
	return fields, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
