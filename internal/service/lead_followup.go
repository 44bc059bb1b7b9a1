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

// FollowupService handles business logic for lead follow-ups
type FollowupService struct {
	repo      repository.LeadFollowupRepositoryInterface
	leadRepo  repository.LeadRepositoryInterface
	agentRepo repository.SalesAgentRepositoryInterface
	validator *validator.Validate
}

// NewFollowupService creates a new follow-up service
func NewFollowupService(
	repo repository.LeadFollowupRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	agentRepo repository.SalesAgentRepositoryInterface,
	validator *validator.Validate,
) *FollowupService {
	return &FollowupService{
		repo:      repo,
		leadRepo:  leadRepo,
		agentRepo: agentRepo,
		validator: validator,
	}
}

// CreateFollowupRequest represents the request to schedule a follow-up
type CreateFollowupRequest struct {
	LeadID       uint       `json:"lead_id" validate:"required"`
	SalesAgentID *uint      `json:"sales_agent_id,omitempty"`
	FollowupDate *time.Time `json:"followup_date" validate:"required"`
	FollowupType string     `json:"followup_type,omitempty" validate:"max=50"`
	Notes        string     `json:"notes,omitempty"`
	Outcome      string     `json:"outcome,omitempty"`
	Status       string     `json:"status,omitempty" example:"scheduled"`
}

// Create schedules a follow-up on an existing lead
func (s *FollowupService) Create(ctx context.Context, req *CreateFollowupRequest) (*models.LeadFollowup, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	status := models.FollowupStatusScheduled
	if req.Status != "" {
		parsed, ok := models.ParseFollowupStatus(req.Status)
		if !ok {
			return nil, apperrors.NewValidationError("status", "unknown follow-up status")
		}
		status = parsed
	}

	if _, err := s.leadRepo.GetByID(ctx, req.LeadID); err != nil {
		return nil, translateStoreError(err, "get lead", apperrors.ErrLeadNotFound, nil)
	}
	if req.SalesAgentID != nil {
		if _, err := s.agentRepo.GetByID(ctx, *req.SalesAgentID); err != nil {
			return nil, translateStoreError(err, "get sales agent", apperrors.ErrSalesAgentNotFound, nil)
		}
	}

	followup := &models.LeadFollowup{
		LeadID:       req.LeadID,
		SalesAgentID: req.SalesAgentID,
		FollowupDate: req.FollowupDate.UTC(),
		FollowupType: req.FollowupType,
		Notes:        req.Notes,
		Outcome:      req.Outcome,
		Status:       status,
		Completed:    status == models.FollowupStatusCompleted,
	}
	if err := s.repo.Create(ctx, followup); err != nil {
		return nil, translateStoreError(err, "create follow-up", nil, nil)
	}
	return followup, nil
}

// ListByLead retrieves the follow-ups of a lead ordered by follow-up date
func (s *FollowupService) ListByLead(ctx context.Context, leadID uint) ([]models.LeadFollowup, error) {
	if _, err := s.leadRepo.GetByID(ctx, leadID); err != nil {
		return nil, translateStoreError(err, "get lead", apperrors.ErrLeadNotFound, nil)
	}

	followups, err := s.repo.ListByLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow-ups: %w", err)
	}
	if followups == nil {
		followups = []models.LeadFollowup{}
	}
	return followups, nil
}
