package service

import (
	"context"
	"fmt"
	"strings"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic for the product catalog
type ProductService struct {
	repo      repository.ProductRepositoryInterface
	validator *validator.Validate
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepositoryInterface, validator *validator.Validate) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProductRequest represents the request to create a product
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	SKU         string  `json:"sku" validate:"required,max=64"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ListProductsQuery holds the filters for listing products
type ListProductsQuery struct {
	PageQuery
	IsActive *bool `form:"is_active"`
}

// Create adds a product to the catalog
func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	req.SKU = strings.TrimSpace(req.SKU)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	_, err := s.repo.GetBySKU(ctx, req.SKU)
	if found, err := exists(err, "check existing product"); err != nil {
		return nil, err
	} else if found {
		return nil, apperrors.ErrProductSKUExists
	}

	product := &models.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, translateStoreError(err, "create product", nil, apperrors.ErrProductSKUExists)
	}
	return product, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "get product", apperrors.ErrProductNotFound, nil)
	}
	return product, nil
}

// List retrieves products matching the query
func (s *ProductService) List(ctx context.Context, query *ListProductsQuery) ([]models.Product, error) {
	page, err := query.page()
	if err != nil {
		return nil, err
	}

	products, err := s.repo.List(ctx, repository.ProductFilter{IsActive: query.IsActive}, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
