package repository

import (
	"context"
	"testing"

	"crm-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CreateKeepsIsActive(t *testing.T) {
	testCases := []struct {
		name     string
		isActive bool
	}{
		{"Inactive product", false},
		{"Active product", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock, db := setupMockDB(t)
			repo := NewProductRepository(db)

			mock.ExpectBegin()
			mock.ExpectQuery(`INSERT INTO "products" .*"is_active".* RETURNING "id"`).
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Widget", "W-1", "", sqlmock.AnyArg(), tc.isActive).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			mock.ExpectCommit()

			product := &models.Product{Name: "Widget", SKU: "W-1", IsActive: tc.isActive}
			require.NoError(t, repo.Create(context.Background(), product))

			assert.Equal(t, uint(1), product.ID)
			assert.Equal(t, tc.isActive, product.IsActive)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
