package repository

import (
	"context"

	"crm-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SalesAgentRepository handles database operations for sales agent profiles
type SalesAgentRepository struct {
	db *gorm.DB
}

// NewSalesAgentRepository creates a new sales agent repository
func NewSalesAgentRepository(db *gorm.DB) *SalesAgentRepository {
	return &SalesAgentRepository{db: db}
}

// Create creates a new sales agent profile
func (r *SalesAgentRepository) Create(ctx context.Context, agent *models.SalesAgent) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(agent).Error
}

// GetByID retrieves a sales agent by ID
func (r *SalesAgentRepository) GetByID(ctx context.Context, id uint) (*models.SalesAgent, error) {
	var agent models.SalesAgent
	err := r.db.WithContext(ctx).First(&agent, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByUserID retrieves the sales agent profile of a user
func (r *SalesAgentRepository) GetByUserID(ctx context.Context, userID uint) (*models.SalesAgent, error) {
	var agent models.SalesAgent
	err := r.db.WithContext(ctx).First(&agent, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByEmployeeID retrieves a sales agent by employee ID
func (r *SalesAgentRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.SalesAgent, error) {
	var agent models.SalesAgent
	err := r.db.WithContext(ctx).First(&agent, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// List retrieves sales agents, optionally restricted to a department
func (r *SalesAgentRepository) List(ctx context.Context, filter SalesAgentFilter, page Page) ([]models.SalesAgent, error) {
	query := r.db.WithContext(ctx).Model(&models.SalesAgent{})
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}

	var agents []models.SalesAgent
	err := paginate(query.Order("id ASC"), page).Find(&agents).Error
	return agents, err
}
