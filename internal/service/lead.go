package service

import (
	"context"
	"fmt"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/events"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// LeadService handles business logic for leads
type LeadService struct {
	repo      repository.LeadRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	agentRepo repository.SalesAgentRepositoryInterface
	publisher events.Publisher
	validator *validator.Validate
}

// NewLeadService creates a new lead service
func NewLeadService(
	repo repository.LeadRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	agentRepo repository.SalesAgentRepositoryInterface,
	publisher events.Publisher,
	validator *validator.Validate,
) *LeadService {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &LeadService{
		repo:      repo,
		userRepo:  userRepo,
		agentRepo: agentRepo,
		publisher: publisher,
		validator: validator,
	}
}

// CreateLeadRequest represents the request to create a lead
type CreateLeadRequest struct {
	FirstName    string  `json:"first_name" validate:"required,max=100"`
	LastName     string  `json:"last_name" validate:"required,max=100"`
	Email        string  `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        string  `json:"phone,omitempty" validate:"max=50"`
	Company      string  `json:"company,omitempty" validate:"max=200"`
	JobTitle     string  `json:"job_title,omitempty" validate:"max=100"`
	Source       string  `json:"source,omitempty" validate:"max=100"`
	Status       string  `json:"status,omitempty" example:"new"`
	Value        float64 `json:"value" validate:"gte=0"`
	Budget       float64 `json:"budget" validate:"gte=0"`
	Notes        string  `json:"notes,omitempty"`
	OwnerID      *uint   `json:"owner_id,omitempty"`
	SalesAgentID *uint   `json:"sales_agent_id,omitempty"`
}

// UpdateLeadRequest represents a partial lead update. Only non-null fields are applied.
type UpdateLeadRequest struct {
	FirstName    *string  `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName     *string  `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email        *string  `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        *string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company      *string  `json:"company,omitempty" validate:"omitempty,max=200"`
	JobTitle     *string  `json:"job_title,omitempty" validate:"omitempty,max=100"`
	Source       *string  `json:"source,omitempty" validate:"omitempty,max=100"`
	Status       *string  `json:"status,omitempty"`
	Value        *float64 `json:"value,omitempty" validate:"omitempty,gte=0"`
	Budget       *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Notes        *string  `json:"notes,omitempty"`
	OwnerID      *uint    `json:"owner_id,omitempty"`
	SalesAgentID *uint    `json:"sales_agent_id,omitempty"`

	// Recorded on the status history row when the status changes
	ChangedByID  *uint  `json:"changed_by_id,omitempty"`
	StatusReason string `json:"status_reason,omitempty"`
}

// ListLeadsQuery holds the filters for listing leads
type ListLeadsQuery struct {
	PageQuery
	Status       string `form:"status"`
	OwnerID      *uint  `form:"owner_id"`
	SalesAgentID *uint  `form:"sales_agent_id"`
	Source       string `form:"source"`
}

// Create creates a new lead
func (s *LeadService) Create(ctx context.Context, req *CreateLeadRequest) (*models.Lead, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	status := models.LeadStatusNew
	if req.Status != "" {
		parsed, ok := models.ParseLeadStatus(req.Status)
		if !ok {
			return nil, apperrors.ErrInvalidLeadStatus
		}
		status = parsed
	}

	if err := s.checkReferences(ctx, req.OwnerID, req.SalesAgentID, nil); err != nil {
		return nil, err
	}

	lead := &models.Lead{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		JobTitle:     req.JobTitle,
		Source:       req.Source,
		Status:       status,
		Value:        req.Value,
		Budget:       req.Budget,
		Notes:        req.Notes,
		OwnerID:      req.OwnerID,
		SalesAgentID: req.SalesAgentID,
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, translateStoreError(err, "create lead", nil, nil)
	}

	logger.WithContext(ctx).WithField("lead_id", lead.ID).Debug("Lead created")
	return lead, nil
}

// GetByID retrieves a lead by ID
func (s *LeadService) GetByID(ctx context.Context, id uint) (*models.Lead, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "get lead", apperrors.ErrLeadNotFound, nil)
	}
	return lead, nil
}

// List retrieves leads matching the query, newest first
func (s *LeadService) List(ctx context.Context, query *ListLeadsQuery) ([]models.Lead, error) {
	page, err := query.page()
	if err != nil {
		return nil, err
	}

	filter := repository.LeadFilter{
		OwnerID:      query.OwnerID,
		SalesAgentID: query.SalesAgentID,
	}
	if query.Status != "" {
		status, ok := models.ParseLeadStatus(query.Status)
		if !ok {
			return nil, apperrors.ErrInvalidLeadStatus
		}
		filter.Status = &status
	}
	if query.Source != "" {
		filter.Source = &query.Source
	}

	leads, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	return leads, nil
}

// Update applies a partial update to a lead. A status change is recorded in the
// lead's status history and announced to the event publisher.
func (s *LeadService) Update(ctx context.Context, id uint, req *UpdateLeadRequest) (*models.Lead, error) {
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
		return nil, translateStoreError(err, "get lead", apperrors.ErrLeadNotFound, nil)
	}
	if err := s.checkReferences(ctx, req.OwnerID, req.SalesAgentID, req.ChangedByID); err != nil {
		return nil, err
	}

	lead, history, err := s.repo.Update(ctx, id, repository.LeadUpdate{
		Fields:      fields,
		ChangedByID: req.ChangedByID,
		Reason:      req.StatusReason,
	})
	if err != nil {
		return nil, translateStoreError(err, "update lead", apperrors.ErrLeadNotFound, nil)
	}

	if history != nil {
		s.publishStatusChange(ctx, history)
	}
	return lead, nil
}

// publishStatusChange announces a status transition. Delivery failures are logged, not returned:
// the transition is already committed.
func (s *LeadService) publishStatusChange(ctx context.Context, history *models.LeadStatusHistory) {
	event := events.LeadStatusChanged{
		LeadID:      history.LeadID,
		OldStatus:   history.OldStatus,
		NewStatus:   history.NewStatus,
		Closed:      history.NewStatus.IsClosed(),
		ChangedByID: history.ChangedByID,
		Reason:      history.Reason,
		ChangedAt:   history.ChangedAt,
	}
	if requestID, ok := ctx.Value(logger.RequestIDKey).(string); ok {
		event.RequestID = requestID
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"lead_id":    history.LeadID,
		"old_status": history.OldStatus,
		"new_status": history.NewStatus,
		"closed":     event.Closed,
	})
	if err := s.publisher.PublishLeadStatusChanged(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish lead status change")
		return
	}
	log.Info("Lead status changed")
}

// checkReferences verifies that the optional owner, agent and actor exist
func (s *LeadService) checkReferences(ctx context.Context, ownerID, agentID, changedByID *uint) error {
	if ownerID != nil {
		if _, err := s.userRepo.GetByID(ctx, *ownerID); err != nil {
			return translateStoreError(err, "get owner", apperrors.ErrUserNotFound, nil)
		}
	}
	if agentID != nil {
		if _, err := s.agentRepo.GetByID(ctx, *agentID); err != nil {
			return translateStoreError(err, "get sales agent", apperrors.ErrSalesAgentNotFound, nil)
		}
	}
	if changedByID != nil {
		if _, err := s.userRepo.GetByID(ctx, *changedByID); err != nil {
			return translateStoreError(err, "get user", apperrors.ErrUserNotFound, nil)
		}
	}
	return nil
}

// fields converts the present request fields into a column map
func (r *UpdateLeadRequest) fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	setString := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}

	setString("first_name", r.FirstName)
	setString("last_name", r.LastName)
	setString("email", r.Email)
	setString("phone", r.Phone)
	setString("company", r.Company)
	setString("job_title", r.JobTitle)
	setString("source", r.Source)
	setString("notes", r.Notes)

	if r.Status != nil {
		status, ok := models.ParseLeadStatus(*r.Status)
		if !ok {
			return nil, apperrors.ErrInvalidLeadStatus
		}
		fields["status"] = string(status)
	}
	if r.Value != nil {
		fields["value"] = *r.Value
	}
	if r.Budget != nil {
		fields["budget"] = *r.Budget
	}
	if r.OwnerID != nil {
		fields["owner_id"] = *r.OwnerID
	}
	if r.SalesAgentID != nil {
		fields["sales_agent_id"] = *r.SalesAgentID
	}
	return fields, nil
}
