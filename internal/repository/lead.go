package repository

import (
	"context"

	"crm-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(lead).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(ctx context.Context, id uint) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List retrieves leads matching all given filters, newest first
func (r *LeadRepository) List(ctx context.Context, filter LeadFilter, page Page) ([]models.Lead, error) {
	query := r.db.WithContext(ctx).Model(&models.Lead{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.SalesAgentID != nil {
		query = query.Where("sales_agent_id = ?", *filter.SalesAgentID)
	}
	if filter.Source != nil {
		query = query.Where("source = ?", *filter.Source)
	}

	var leads []models.Lead
	err := paginate(query.Order("created_at DESC, id DESC"), page).Find(&leads).Error
	return leads, err
}

// Update applies a sparse update to a lead inside a transaction holding the row lock.
// Only the columns named in update.Fields change; updated_at always moves forward.
// When the status changes, a history row is appended and returned.
func (r *LeadRepository) Update(ctx context.Context, id uint, update LeadUpdate) (*models.Lead, *models.LeadStatusHistory, error) {
	var updated models.Lead
	var history *models.LeadStatusHistory

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Lead
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, "id = ?", id).Error; err != nil {
			return err
		}

		fields := make(map[string]interface{}, len(update.Fields)+1)
		for column, value := range update.Fields {
			fields[column] = value
		}
		fields["updated_at"] = models.NextUpdatedAt(current.UpdatedAt)

		if err := tx.Model(&models.Lead{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return err
		}
		if err := tx.First(&updated, "id = ?", id).Error; err != nil {
			return err
		}

		if updated.Status != current.Status {
			history = &models.LeadStatusHistory{
				LeadID:      id,
				OldStatus:   current.Status,
				NewStatus:   updated.Status,
				ChangedByID: update.ChangedByID,
				Reason:      update.Reason,
				ChangedAt:   updated.UpdatedAt,
			}
			if err := tx.Omit(clause.Associations).Create(history).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &updated, history, nil
}
