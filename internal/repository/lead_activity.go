package repository

import (
	"context"

	"crm-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeadActivityRepository handles the assignment, history, action, communication
// and oversight records attached to leads
type LeadActivityRepository struct {
	db *gorm.DB
}

// NewLeadActivityRepository creates a new lead activity repository
func NewLeadActivityRepository(db *gorm.DB) *LeadActivityRepository {
	return &LeadActivityRepository{db: db}
}

// CreateAssignment assigns an agent to a lead
func (r *LeadActivityRepository) CreateAssignment(ctx context.Context, assignment *models.LeadAssignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(assignment).Error
}

// GetAssignment retrieves the assignment of an agent to a lead
func (r *LeadActivityRepository) GetAssignment(ctx context.Context, leadID, agentID uint) (*models.LeadAssignment, error) {
	var assignment models.LeadAssignment
	err := r.db.WithContext(ctx).
		First(&assignment, "lead_id = ? AND sales_agent_id = ?", leadID, agentID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListAssignments retrieves the agent assignments of a lead
func (r *LeadActivityRepository) ListAssignments(ctx context.Context, leadID uint) ([]models.LeadAssignment, error) {
	var assignments []models.LeadAssignment
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("assigned_at ASC, id ASC").
		Find(&assignments).Error
	return assignments, err
}

// ListStatusHistory retrieves the status transitions of a lead in the order they happened
func (r *LeadActivityRepository) ListStatusHistory(ctx context.Context, leadID uint) ([]models.LeadStatusHistory, error) {
	var history []models.LeadStatusHistory
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("changed_at ASC, id ASC").
		Find(&history).Error
	return history, err
}

// CreateAction logs an action against a lead
func (r *LeadActivityRepository) CreateAction(ctx context.Context, action *models.LeadAction) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(action).Error
}

// ListActions retrieves the actions of a lead, most recent first
func (r *LeadActivityRepository) ListActions(ctx context.Context, leadID uint) ([]models.LeadAction, error) {
	var actions []models.LeadAction
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("action_date DESC, id DESC").
		Find(&actions).Error
	return actions, err
}

// CreateCommunication logs a communication with a lead
func (r *LeadActivityRepository) CreateCommunication(ctx context.Context, communication *models.LeadCommunication) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(communication).Error
}

// ListCommunications retrieves the communications of a lead, most recent first
func (r *LeadActivityRepository) ListCommunications(ctx context.Context, leadID uint) ([]models.LeadCommunication, error) {
	var communications []models.LeadCommunication
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("communicated_at DESC, id DESC").
		Find(&communications).Error
	return communications, err
}

// CreateOversight records that a head of sales oversees a lead
func (r *LeadActivityRepository) CreateOversight(ctx context.Context, oversight *models.HeadLeadOversight) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(oversight).Error
}

// GetOversight retrieves the oversight record of a head of sales on a lead
func (r *LeadActivityRepository) GetOversight(ctx context.Context, leadID, headID uint) (*models.HeadLeadOversight, error) {
	var oversight models.HeadLeadOversight
	err := r.db.WithContext(ctx).
		First(&oversight, "lead_id = ? AND head_of_sales_id = ?", leadID, headID).Error
	if err != nil {
		return nil, err
	}
	return &oversight, nil
}

// ListOversights retrieves the oversight records of a lead
func (r *LeadActivityRepository) ListOversights(ctx context.Context, leadID uint) ([]models.HeadLeadOversight, error) {
	var oversights []models.HeadLeadOversight
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at ASC, id ASC").
		Find(&oversights).Error
	return oversights, err
}
