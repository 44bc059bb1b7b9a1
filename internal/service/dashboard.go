package service

import (
	"context"
	"fmt"
	"math"

	"crm-backend/internal/repository"
)

// DashboardService computes the dashboard statistics
type DashboardService struct {
	repo repository.DashboardRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo repository.DashboardRepositoryInterface) *DashboardService {
	return &DashboardService{repo: repo}
}

// DashboardStats is the dashboard summary
type DashboardStats struct {
	TotalLeads         int64   `json:"total_leads"`
	NewLeads           int64   `json:"new_leads"`
	TotalUsers         int64   `json:"total_users"`
	ActiveTasks        int64   `json:"active_tasks"`
	LeadConversionRate float64 `json:"lead_conversion_rate"`
}

// Stats returns the dashboard counters and the lead conversion rate
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard counts: %w", err)
	}

	return &DashboardStats{
		TotalLeads:         counts.TotalLeads,
		NewLeads:           counts.NewLeads,
		TotalUsers:         counts.TotalUsers,
		ActiveTasks:        counts.ActiveTasks,
		LeadConversionRate: conversionRate(counts.ClosedWonLeads, counts.TotalLeads),
	}, nil
}

// conversionRate is closedWon / total as a percentage rounded to 2 decimals, 0 when there are no leads
func conversionRate(closedWon, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(closedWon) / float64(total) * 100
	return math.Round(rate*100) / 100
}
