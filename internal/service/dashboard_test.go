package service_test

import (
	"context"
	"errors"
	"testing"

	"crm-backend/internal/mocks"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_Stats(t *testing.T) {
	testCases := []struct {
		name     string
		counts   repository.DashboardCounts
		expected float64
	}{
		{"no leads", repository.DashboardCounts{}, 0},
		{"one of three won", repository.DashboardCounts{TotalLeads: 3, ClosedWonLeads: 1}, 33.33},
		{"two of three won", repository.DashboardCounts{TotalLeads: 3, ClosedWonLeads: 2}, 66.67},
		{"all won", repository.DashboardCounts{TotalLeads: 4, ClosedWonLeads: 4}, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDashboardRepositoryInterface(ctrl)
			counts := tc.counts
			counts.NewLeads = 1
			counts.TotalUsers = 2
			counts.ActiveTasks = 5
			repo.EXPECT().Counts(gomock.Any()).Return(&counts, nil)

			stats, err := service.NewDashboardService(repo).Stats(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tc.expected, stats.LeadConversionRate)
			assert.Equal(t, tc.counts.TotalLeads, stats.TotalLeads)
			assert.Equal(t, int64(1), stats.NewLeads)
			assert.Equal(t, int64(2), stats.TotalUsers)
			assert.Equal(t, int64(5), stats.ActiveTasks)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockDashboardRepositoryInterface(ctrl)
		repo.EXPECT().Counts(gomock.Any()).Return(nil, errors.New("timeout"))

		stats, err := service.NewDashboardService(repo).Stats(context.Background())

		assert.Nil(t, stats)
		assert.ErrorContains(t, err, "timeout")
	})
}
