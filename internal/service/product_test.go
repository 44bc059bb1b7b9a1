package service_test

import (
	"context"
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockProductRepositoryInterface(ctrl)
		repo.EXPECT().GetBySKU(ctx, "SKU-1").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		product, err := service.NewProductService(repo, service.NewValidator()).
			Create(ctx, &service.CreateProductRequest{Name: "Widget", SKU: " SKU-1 ", Price: 10})

		require.NoError(t, err)
		assert.True(t, product.IsActive)
		assert.Equal(t, "SKU-1", product.SKU)
	})

	t.Run("keeps an explicit inactive flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockProductRepositoryInterface(ctrl)
		repo.EXPECT().GetBySKU(ctx, "SKU-2").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Product) error {
			assert.False(t, p.IsActive)
			return nil
		})

		inactive := false
		product, err := service.NewProductService(repo, service.NewValidator()).
			Create(ctx, &service.CreateProductRequest{Name: "Gadget", SKU: "SKU-2", IsActive: &inactive})

		require.NoError(t, err)
		assert.False(t, product.IsActive)
	})

	t.Run("rejects duplicate sku", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockProductRepositoryInterface(ctrl)
		repo.EXPECT().GetBySKU(ctx, "SKU-1").Return(&models.Product{SKU: "SKU-1"}, nil)

		_, err := service.NewProductService(repo, service.NewValidator()).
			Create(ctx, &service.CreateProductRequest{Name: "Widget", SKU: "SKU-1"})

		assert.ErrorIs(t, err, apperrors.ErrProductSKUExists)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockProductRepositoryInterface(ctrl)

		_, err := service.NewProductService(repo, service.NewValidator()).
			Create(ctx, &service.CreateProductRequest{Name: "Widget", SKU: "SKU-1", Price: -1})

		assert.True(t, apperrors.IsValidation(err))
	})
}
