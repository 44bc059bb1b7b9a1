package repository

import (
	"context"

	"crm-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HeadOfSalesRepository handles database operations for heads of sales and their teams
type HeadOfSalesRepository struct {
	db *gorm.DB
}

// NewHeadOfSalesRepository creates a new head of sales repository
func NewHeadOfSalesRepository(db *gorm.DB) *HeadOfSalesRepository {
	return &HeadOfSalesRepository{db: db}
}

// Create creates a new head of sales profile
func (r *HeadOfSalesRepository) Create(ctx context.Context, head *models.HeadOfSales) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(head).Error
}

// GetByID retrieves a head of sales by ID
func (r *HeadOfSalesRepository) GetByID(ctx context.Context, id uint) (*models.HeadOfSales, error) {
	var head models.HeadOfSales
	err := r.db.WithContext(ctx).First(&head, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &head, nil
}

// GetByUserID retrieves the head of sales profile of a user
func (r *HeadOfSalesRepository) GetByUserID(ctx context.Context, userID uint) (*models.HeadOfSales, error) {
	var head models.HeadOfSales
	err := r.db.WithContext(ctx).First(&head, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &head, nil
}

// List retrieves heads of sales ordered by ID
func (r *HeadOfSalesRepository) List(ctx context.Context, page Page) ([]models.HeadOfSales, error) {
	var heads []models.HeadOfSales
	err := paginate(r.db.WithContext(ctx).Order("id ASC"), page).Find(&heads).Error
	return heads, err
}

// CreateTeamAssignment puts an agent under a head of sales
func (r *HeadOfSalesRepository) CreateTeamAssignment(ctx context.Context, assignment *models.SalesTeamAssignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(assignment).Error
}

// GetTeamAssignment retrieves the assignment of an agent to a head of sales
func (r *HeadOfSalesRepository) GetTeamAssignment(ctx context.Context, headID, agentID uint) (*models.SalesTeamAssignment, error) {
	var assignment models.SalesTeamAssignment
	err := r.db.WithContext(ctx).
		First(&assignment, "head_of_sales_id = ? AND sales_agent_id = ?", headID, agentID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListTeamAssignments retrieves all agent assignments of a head of sales
func (r *HeadOfSalesRepository) ListTeamAssignments(ctx context.Context, headID uint) ([]models.SalesTeamAssignment, error) {
	var assignments []models.SalesTeamAssignment
	err := r.db.WithContext(ctx).
		Where("head_of_sales_id = ?", headID).
		Order("assigned_date ASC, id ASC").
		Find(&assignments).Error
	return assignments, err
}
