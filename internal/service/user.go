package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for users
type UserService struct {
	repo       repository.UserRepositoryInterface
	validator  *validator.Validate
	bcryptCost int
}

// NewUserService creates a new user service. Passwords are hashed with the given bcrypt cost.
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:       repo,
		validator:  validator,
		bcryptCost: bcryptCost,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	FullName string `json:"full_name" validate:"max=200"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role,omitempty" example:"sales_agent"`
}

// ListUsersQuery holds the filters for listing users
type ListUsersQuery struct {
	PageQuery
	Role     string `form:"role"`
	IsActive *bool  `form:"is_active"`
}

// UserResponse represents a user without credentials
type UserResponse struct {
	ID        uint            `json:"id"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	FullName  string          `json:"full_name"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Create registers a new user with a hashed password
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	role := models.UserRoleCustomer
	if req.Role != "" {
		parsed, ok := models.ParseUserRole(req.Role)
		if !ok {
			return nil, apperrors.ErrInvalidUserRole
		}
		role = parsed
	}

	_, err := s.repo.GetByEmail(ctx, req.Email)
	if found, err := exists(err, "check existing user by email"); err != nil {
		return nil, err
	} else if found {
		return nil, apperrors.ErrUserEmailExists
	}

	_, err = s.repo.GetByUsername(ctx, req.Username)
	if found, err := exists(err, "check existing user by username"); err != nil {
		return nil, err
	} else if found {
		return nil, apperrors.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, translateStoreError(err, "create user", nil, nil)
	}

	return toUserResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "get user", apperrors.ErrUserNotFound, nil)
	}
	return toUserResponse(user), nil
}

// List retrieves users matching the query
func (s *UserService) List(ctx context.Context, query *ListUsersQuery) ([]UserResponse, error) {
	page, err := query.page()
	if err != nil {
		return nil, err
	}

	filter := repository.UserFilter{IsActive: query.IsActive}
	if query.Role != "" {
		role, ok := models.ParseUserRole(query.Role)
		if !ok {
			return nil, apperrors.ErrInvalidUserRole
		}
		filter.Role = &role
	}

	users, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}
	return responses, nil
}

// VerifyPassword reports whether password matches the stored hash
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FullName:  user.FullName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
