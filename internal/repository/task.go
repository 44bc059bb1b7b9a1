package repository

import (
	"context"

	"crm-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks matching all given filters, earliest due date first
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter, page Page) ([]models.Task, error) {
	query := r.db.WithContext(ctx).Model(&models.Task{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", string(*filter.Priority))
	}
	if filter.AssignedToID != nil {
		query = query.Where("assigned_to_id = ?", *filter.AssignedToID)
	}
	if filter.RelatedLeadID != nil {
		query = query.Where("related_lead_id = ?", *filter.RelatedLeadID)
	}

	var tasks []models.Task
	err := paginate(query.Order("due_date ASC NULLS LAST, id ASC"), page).Find(&tasks).Error
	return tasks, err
}

// Update applies a sparse update to a task. Only the named columns change;
// updated_at always moves forward.
func (r *TaskRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Task, error) {
	var updated models.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Task
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, "id = ?", id).Error; err != nil {
			return err
		}

		fields := make(map[string]interface{}, len(updates)+1)
		for column, value := range updates {
			fields[column] = value
		}
		fields["updated_at"] = models.NextUpdatedAt(current.UpdatedAt)

		if err := tx.Model(&models.Task{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
