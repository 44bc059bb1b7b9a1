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

// LeadActivityService handles the assignments, history, actions, communications
// and oversight records of a lead
type LeadActivityService struct {
	repo      repository.LeadActivityRepositoryInterface
	leadRepo  repository.LeadRepositoryInterface
	agentRepo repository.SalesAgentRepositoryInterface
	headRepo  repository.HeadOfSalesRepositoryInterface
	validator *validator.Validate
}

// NewLeadActivityService creates a new lead activity service
func NewLeadActivityService(
	repo repository.LeadActivityRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	agentRepo repository.SalesAgentRepositoryInterface,
	headRepo repository.HeadOfSalesRepositoryInterface,
	validator *validator.Validate,
) *LeadActivityService {
	return &LeadActivityService{
		repo:      repo,
		leadRepo:  leadRepo,
		agentRepo: agentRepo,
		headRepo:  headRepo,
		validator: validator,
	}
}

// CreateLeadAssignmentRequest represents the request to assign an agent to a lead
type CreateLeadAssignmentRequest struct {
	SalesAgentID   uint   `json:"sales_agent_id" validate:"required"`
	AssignedByID   *uint  `json:"assigned_by_id,omitempty"`
	AssignmentType string `json:"assignment_type,omitempty" example:"primary"`
}

// CreateLeadActionRequest represents the request to log an action on a lead
type CreateLeadActionRequest struct {
	SalesAgentID *uint      `json:"sales_agent_id,omitempty"`
	ActionType   string     `json:"action_type" validate:"required" example:"call"`
	Description  string     `json:"description,omitempty"`
	ActionDate   *time.Time `json:"action_date,omitempty"`
}

// CreateLeadCommunicationRequest represents the request to log a communication with a lead
type CreateLeadCommunicationRequest struct {
	SalesAgentID   *uint      `json:"sales_agent_id,omitempty"`
	Method         string     `json:"method" validate:"required" example:"email"`
	Direction      string     `json:"direction,omitempty" example:"outbound"`
	Summary        string     `json:"summary,omitempty"`
	CommunicatedAt *time.Time `json:"communicated_at,omitempty"`
}

// CreateOversightRequest represents the request to put a lead under a head of sales' oversight
type CreateOversightRequest struct {
	HeadOfSalesID uint   `json:"head_of_sales_id" validate:"required"`
	Notes         string `json:"notes,omitempty"`
}

// AssignAgent assigns a sales agent to a lead
func (s *LeadActivityService) AssignAgent(ctx context.Context, leadID uint, req *CreateLeadAssignmentRequest) (*models.LeadAssignment, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	assignmentType := models.AssignmentTypePrimary
	if req.AssignmentType != "" {
		parsed, ok := models.ParseAssignmentType(req.AssignmentType)
		if !ok {
			return nil, apperrors.NewValidationError("assignment_type", "unknown assignment type")
		}
		assignmentType = parsed
	}

	if err := s.requireLead(ctx, leadID); err != nil {
		return nil, err
	}
	if err := s.requireAgent(ctx, &req.SalesAgentID); err != nil {
		return nil, err
	}
	if req.AssignedByID != nil {
		if _, err := s.headRepo.GetByID(ctx, *req.AssignedByID); err != nil {
			return nil, translateStoreError(err, "get head of sales", apperrors.ErrHeadOfSalesNotFound, nil)
		}
	}

	_, err := s.repo.GetAssignment(ctx, leadID, req.SalesAgentID)
	if found, err := exists(err, "check existing lead assignment"); err != nil {
		return nil, err
	} else if found {
		return nil, apperrors.ErrAgentAlreadyOnLead
	}

	assignment := &models.LeadAssignment{
		LeadID:         leadID,
		SalesAgentID:   req.SalesAgentID,
		AssignedByID:   req.AssignedByID,
		AssignmentType: assignmentType,
		IsActive:       true,
		AssignedAt:     time.Now().UTC(),
	}
	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		return nil, translateStoreError(err, "create lead assignment", nil, apperrors.ErrAgentAlreadyOnLead)
	}
	return assignment, nil
}

// ListAssignments retrieves the agent assignments of a lead
func (s *LeadActivityService) ListAssignments(ctx context.Context, leadID uint) ([]models.LeadAssignment, error) {
	if err := s.requireLead(ctx, leadID); err != nil {
		return nil, err
	}
	assignments, err := s.repo.ListAssignments(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead assignments: %w", err)
	}
	if assignments == nil {
		assignments = []models.LeadAssignment{}
	}
	return assignments, nil
}

// ListStatusHistory retrieves the status transitions of a lead, oldest first
func (s *LeadActivityService) ListStatusHistory(ctx context.Context, leadID uint) ([]models.LeadStatusHistory, error) {
	if err := s.requireLead(ctx, leadID); err != nil {
		return nil, err
	}
	history, err := s.repo.ListStatusHistory(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead status history: %w", err)
	}
	if history == nil {
		history = []models.LeadStatusHistory{}
	}
	return history, nil
}

// LogAction records an action taken on a lead
func (s *LeadActivityService) LogAction(ctx context.Context, leadID uint, req *CreateLeadActionRequest) (*models.LeadAction, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	actionType, ok := models.ParseActionType(req.ActionType)
	if !ok {
		return nil, apperrors.NewValidationError("action_type", "unknown action type")
	}

	if err := s.requireLead(ctx, leadID); err != nil {
		return nil, err
	}
	if err := s.requireAgent(ctx, req.SalesAgentID); err != nil {
		return nil, err
	}

	action := &models.LeadAction{
		LeadID:       leadID,
		SalesAgentID: req.SalesAgentID,
		ActionType:   actionType,
		Description:  req.Description,
		ActionDate:   timeOrNow(req.ActionDate),
	}
	if err := s.repo.CreateAction(ctx, action); err != nil {
		return nil, translateStoreError(err, "create lead action", nil, nil)
	}
	return action, nil
}

// ListActions retrieves the actions of a lead, most recent first
func (s *LeadActivityService) ListActions(ctx context.Context, leadID uint) ([]models.LeadAction, error) {
	if err := s.requireLead(ctx, leadID); err != nil {
		return nil, err
	}
	actions, err := s.repo.ListActions(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead actions: %w", err)
	}
	if actions == nil {
		actions = []models.LeadAction{}
	}
	return actions, nil
}

// LogCommunication records a communication with a lead
func (s *LeadActivityService) LogCommunication(ctx context.Context, leadID uint, req *CreateLeadCommunicationRequest) (*models.LeadCommunication, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	method, ok := models.ParseCommunicationMethod(req.Method)
	if !ok {
		return nil, apperrors.NewValidationError("method", "unknown communication method")
	}
	direction := models.CommunicationDirectionOutbound
	if req.Direction != "" {
		if direction, ok = models.ParseCommunicationDirection(req.Direction); !ok {
			return nil, apperrors.NewValidationError("direction", "unknown communication direction")
		}
	}

	if err := s.requireLead(ctx, leadID); err != nil {
		return nil, err
	}
	if err := s.requireAgent(ctx, req.SalesAgentID); err != nil {
		return nil, err
	}

	communication := &models.LeadCommunication{
		LeadID:         leadID,
		SalesAgentID:   req.SalesAgentID,
		Method:         method,
		Direction:      direction,
		Summary:        req.Summary,
		CommunicatedAt: timeOrNow(req.CommunicatedAt),
	}
	if err := s.repo.CreateCommunication(ctx, communication); err != nil {
		return nil, translateStoreError(err, "create lead communication", nil, nil)
	}
	return communication, nil
}

// ListCommunications retrieves the communications of a lead, most recent first
func (s *LeadActivityService) ListCommunications(ctx context.Context, leadID uint) ([]models.LeadCommunication, error) {
	if err := s.requireLead(ctx, leadID); err != nil {
		return nil, err
	}
	communications, err := s.repo.ListCommunications(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead communications: %w", err)
	}
	if communications == nil {
		communications = []models.LeadCommunication{}
	}
	return communications, nil
}

// AddOversight puts a lead under the oversight of a head of sales
func (s *LeadActivityService) AddOversight(ctx context.Context, leadID uint, req *CreateOversightRequest) (*models.HeadLeadOversight, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.requireLead(ctx, leadID); err != nil {
		return nil, err
	}
	if _, err := s.headRepo.GetByID(ctx, req.HeadOfSalesID); err != nil {
		return nil, translateStoreError(err, "get head of sales", apperrors.ErrHeadOfSalesNotFound, nil)
	}

	_, err := s.repo.GetOversight(ctx, leadID, req.HeadOfSalesID)
	if found, err := exists(err, "check existing oversight"); err != nil {
		return nil, err
	} else if found {
		return nil, apperrors.ErrLeadAlreadyOverseen
	}

	oversight := &models.HeadLeadOversight{
		LeadID:        leadID,
		HeadOfSalesID: req.HeadOfSalesID,
		Notes:         req.Notes,
	}
	if err := s.repo.CreateOversight(ctx, oversight); err != nil {
		return nil, translateStoreError(err, "create oversight", nil, apperrors.ErrLeadAlreadyOverseen)
	}
	return oversight, nil
}

// ListOversights retrieves the oversight records of a lead
func (s *LeadActivityService) ListOversights(ctx context.Context, leadID uint) ([]models.HeadLeadOversight, error) {
	if err := s.requireLead(ctx, leadID); err != nil {
		return nil, err
	}
	oversights, err := s.repo.ListOversights(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list oversights: %w", err)
	}
	if oversights == nil {
		oversights = []models.HeadLeadOversight{}
	}
	return oversights, nil
}

func (s *LeadActivityService) requireLead(ctx context.Context, leadID uint) error {
	if _, err := s.leadRepo.GetByID(ctx, leadID); err != nil {
		return translateStoreError(err, "get lead", apperrors.ErrLeadNotFound, nil)
	}
	return nil
}

func (s *LeadActivityService) requireAgent(ctx context.Context, agentID *uint) error {
	if agentID == nil {
		return nil
	}
	if _, err := s.agentRepo.GetByID(ctx, *agentID); err != nil {
		return translateStoreError(err, "get sales agent", apperrors.ErrSalesAgentNotFound, nil)
	}
	return nil
}

func timeOrNow(t *time.Time) time.Time {
	if t == nil {
		return time.Now().UTC()
	}
	return t.UTC()
}
