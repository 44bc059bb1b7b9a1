package repository

import (
	"context"
	"fmt"

	"crm-backend/internal/database/models"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// DashboardRepository runs the aggregate queries behind the dashboard
type DashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// countsQuery builds one SELECT returning every counter as a scalar sub-select,
// so all counters are read from the same snapshot.
func countsQuery() (string, []interface{}, error) {
	count := func(table string) sq.SelectBuilder {
		return sq.Select("COUNT(*)").From(table)
	}

	return sq.Select().
		Column(sq.Alias(count("leads"), "total_leads")).
		Column(sq.Alias(count("leads").Where(sq.Eq{"status": string(models.LeadStatusNew)}), "new_leads")).
		Column(sq.Alias(count("leads").Where(sq.Eq{"status": string(models.LeadStatusClosedWon)}), "closed_won_leads")).
		Column(sq.Alias(count("users"), "total_users")).
		Column(sq.Alias(count("tasks").Where(sq.Eq{"status": []string{
			string(models.TaskStatusPending),
			string(models.TaskStatusInProgress),
		}}), "active_tasks")).
		ToSql()
}

// Counts returns the raw dashboard counters
func (r *DashboardRepository) Counts(ctx context.Context) (*DashboardCounts, error) {
	query, args, err := countsQuery()
	if err != nil {
		return nil, fmt.Errorf("build dashboard query: %w", err)
	}

	var counts DashboardCounts
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&counts).Error; err != nil {
		return nil, err
	}
	return &counts, nil
}
