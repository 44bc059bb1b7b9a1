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

// HeadOfSalesService handles heads of sales and the agents on their teams
type HeadOfSalesService struct {
	repo      repository.HeadOfSalesRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	agentRepo repository.SalesAgentRepositoryInterface
	validator *validator.Validate
}

// NewHeadOfSalesService creates a new head of sales service
func NewHeadOfSalesService(
	repo repository.HeadOfSalesRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	agentRepo repository.SalesAgentRepositoryInterface,
	validator *validator.Validate,
) *HeadOfSalesService {
	return &HeadOfSalesService{
		repo:      repo,
		userRepo:  userRepo,
		agentRepo: agentRepo,
		validator: validator,
	}
}

// CreateHeadOfSalesRequest represents the request to create a head of sales profile
type CreateHeadOfSalesRequest struct {
	UserID     uint   `json:"user_id" validate:"required"`
	Department string `json:"department" validate:"max=100"`
}

// AssignAgentRequest represents the request to put an agent on a head of sales' team
type AssignAgentRequest struct {
	SalesAgentID uint       `json:"sales_agent_id" validate:"required"`
	AssignedDate *time.Time `json:"assigned_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// Create creates a head of sales profile for an existing user
func (s *HeadOfSalesService) Create(ctx context.Context, req *CreateHeadOfSalesRequest) (*models.HeadOfSales, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, translateStoreError(err, "get user", apperrors.ErrUserNotFound, nil)
	}

	_, err := s.repo.GetByUserID(ctx, req.UserID)
	if found, err := exists(err, "check existing head of sales"); err != nil {
		return nil, err
	} else if found {
		return nil, apperrors.ErrUserAlreadyHeadOfSales
	}

	head := &models.HeadOfSales{
		UserID:     req.UserID,
		Department: req.Department,
	}
	if err := s.repo.Create(ctx, head); err != nil {
		return nil, translateStoreError(err, "create head of sales", nil, apperrors.ErrUserAlreadyHeadOfSales)
	}
	return head, nil
}

// GetByID retrieves a head of sales by ID
func (s *HeadOfSalesService) GetByID(ctx context.Context, id uint) (*models.HeadOfSales, error) {
	head, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "get head of sales", apperrors.ErrHeadOfSalesNotFound, nil)
	}
	return head, nil
}

// List retrieves heads of sales
func (s *HeadOfSalesService) List(ctx context.Context, query *PageQuery) ([]models.HeadOfSales, error) {
	page, err := query.page()
	if err != nil {
		return nil, err
	}

	heads, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list heads of sales: %w", err)
	}
	if heads == nil {
		heads = []models.HeadOfSales{}
	}
	return heads, nil
}

// AssignAgent puts a sales agent on the team of a head of sales
func (s *HeadOfSalesService) AssignAgent(ctx context.Context, headID uint, req *AssignAgentRequest) (*models.SalesTeamAssignment, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, headID); err != nil {
		return nil, translateStoreError(err, "get head of sales", apperrors.ErrHeadOfSalesNotFound, nil)
	}
	if _, err := s.agentRepo.GetByID(ctx, req.SalesAgentID); err != nil {
		return nil, translateStoreError(err, "get sales agent", apperrors.ErrSalesAgentNotFound, nil)
	}

	_, err := s.repo.GetTeamAssignment(ctx, headID, req.SalesAgentID)
	if found, err := exists(err, "check existing team assignment"); err != nil {
		return nil, err
	} else if found {
		return nil, apperrors.ErrAgentAlreadyInTeam
	}

	assignedDate := time.Now().UTC()
	if req.AssignedDate != nil {
		assignedDate = req.AssignedDate.UTC()
	}

	assignment := &models.SalesTeamAssignment{
		HeadOfSalesID: headID,
		SalesAgentID:  req.SalesAgentID,
		AssignedDate:  assignedDate,
		IsActive:      true,
		Notes:         req.Notes,
	}
	if err := s.repo.CreateTeamAssignment(ctx, assignment); err != nil {
		return nil, translateStoreError(err, "create team assignment", nil, apperrors.ErrAgentAlreadyInTeam)
	}
	return assignment, nil
}

// ListAgents retrieves the team assignments of a head of sales
func (s *HeadOfSalesService) ListAgents(ctx context.Context, headID uint) ([]models.SalesTeamAssignment, error) {
	if _, err := s.repo.GetByID(ctx, headID); err != nil {
		return nil, translateStoreError(err, "get head of sales", apperrors.ErrHeadOfSalesNotFound, nil)
	}

	assignments, err := s.repo.ListTeamAssignments(ctx, headID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team assignments: %w", err)
	}
	if assignments == nil {
		assignments = []models.SalesTeamAssignment{}
	}
	return assignments, nil
}
