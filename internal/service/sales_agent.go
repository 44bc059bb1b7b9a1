package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// SalesAgentService handles business logic for sales agent profiles
type SalesAgentService struct {
	repo      repository.SalesAgentRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewSalesAgentService creates a new sales agent service
func NewSalesAgentService(repo repository.SalesAgentRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *SalesAgentService {
	return &SalesAgentService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateSalesAgentRequest represents the request to create a sales agent profile
type CreateSalesAgentRequest struct {
	UserID         uint       `json:"user_id" validate:"required"`
	EmployeeID     *string    `json:"employee_id,omitempty" validate:"omitempty,min=1,max=50"`
	Department     string     `json:"department" validate:"max=100"`
	HireDate       *time.Time `json:"hire_date,omitempty"`
	Quota          float64    `json:"quota" validate:"gte=0"`
	CommissionRate float64    `json:"commission_rate" validate:"gte=0,lte=100"`
}

// ListSalesAgentsQuery holds the filters for listing sales agents
type ListSalesAgentsQuery struct {
	PageQuery
	Department string `form:"department"`
}

// Create creates a sales agent profile for an existing user
func (s *SalesAgentService) Create(ctx context.Context, req *CreateSalesAgentRequest) (*models.SalesAgent, error) {
	if req.EmployeeID != nil {
		trimmed := strings.TrimSpace(*req.EmployeeID)
		req.EmployeeID = &trimmed
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, translateStoreError(err, "get user", apperrors.ErrUserNotFound, nil)
	}

	_, err := s.repo.GetByUserID(ctx, req.UserID)
	if found, err := exists(err, "check existing sales agent"); err != nil {
		return nil, err
	} else if found {
		return nil, apperrors.ErrUserAlreadySalesAgent
	}

	if req.EmployeeID != nil {
		_, err := s.repo.GetByEmployeeID(ctx, *req.EmployeeID)
		if found, err := exists(err, "check existing employee id"); err != nil {
			return nil, err
		} else if found {
			return nil, apperrors.ErrEmployeeIDExists
		}
	}

	hireDate := time.Now().UTC()
	if req.HireDate != nil {
		hireDate = req.HireDate.UTC()
	}

	agent := &models.SalesAgent{
		UserID:         req.UserID,
		EmployeeID:     req.EmployeeID,
		Department:     req.Department,
		HireDate:       hireDate,
		Quota:          req.Quota,
		CommissionRate: req.CommissionRate,
	}
	if err := s.repo.Create(ctx, agent); err != nil {
		return nil, translateStoreError(err, "create sales agent", nil, apperrors.ErrUserAlreadySalesAgent)
	}

	return agent, nil
}

// GetByID retrieves a sales agent by ID
func (s *SalesAgentService) GetByID(ctx context.Context, id uint) (*models.SalesAgent, error) {
	agent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "get sales agent", apperrors.ErrSalesAgentNotFound, nil)
	}
	return agent, nil
}

// List retrieves sales agents matching the query
func (s *SalesAgentService) List(ctx context.Context, query *ListSalesAgentsQuery) ([]models.SalesAgent, error) {
	page, err := query.page()
	if err != nil {
		return nil, err
	}

	filter := repository.SalesAgentFilter{}
	if query.Department != "" {
		filter.Department = &query.Department
	}

	agents, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales agents: %w", err)
	}
	if agents == nil {
		agents = []models.SalesAgent{}
	}
	return agents, nil
}
