package repository

import (
	"context"

	"crm-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeadFollowupRepository handles database operations for lead follow-ups
type LeadFollowupRepository struct {
	db *gorm.DB
}

// NewLeadFollowupRepository creates a new follow-up repository
func NewLeadFollowupRepository(db *gorm.DB) *LeadFollowupRepository {
	return &LeadFollowupRepository{db: db}
}

// Create creates a new follow-up
func (r *LeadFollowupRepository) Create(ctx context.Context, followup *models.LeadFollowup) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(followup).Error
}

// ListByLead retrieves the follow-ups of a lead ordered by follow-up date
func (r *LeadFollowupRepository) ListByLead(ctx context.Context, leadID uint) ([]models.LeadFollowup, error) {
	var followups []models.LeadFollowup
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("followup_date ASC, id ASC").
		Find(&followups).Error
	return followups, err
}
