package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	// DefaultLimit is the page size used when a list request does not give one
	DefaultLimit = 100
	// MaxLimit is the largest accepted page size
	MaxLimit = 1000
)

// NewValidator creates a validator that reports JSON field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// PageQuery is the offset/limit window accepted by list operations
type PageQuery struct {
	Skip  *int `form:"skip" json:"skip,omitempty"`
	Limit *int `form:"limit" json:"limit,omitempty"`
}

// page applies the defaults and rejects out-of-range values
func (q PageQuery) page() (repository.Page, error) {
	page := repository.Page{Skip: 0, Limit: DefaultLimit}
	if q.Skip != nil {
		page.Skip = *q.Skip
	}
	if q.Limit != nil {
		page.Limit = *q.Limit
	}
	if page.Skip < 0 || page.Limit < 1 || page.Limit > MaxLimit {
		return repository.Page{}, apperrors.ErrInvalidPaginationParams
	}
	return page, nil
}

// validate runs struct validation and converts the first failure into a ValidationError
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return apperrors.NewValidationError(fe.Field(), msg)
	}
	return apperrors.NewValidationError("", err.Error())
}

// translateStoreError maps store errors to application errors.
// notFound and duplicate may be nil, in which case generic errors are used.
func translateStoreError(err error, action string, notFound, duplicate error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		if duplicate != nil {
			return duplicate
		}
		return apperrors.ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.ErrReferencedEntityMissing
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// exists reports whether a lookup found its row; store failures other than "not found" are returned
func exists(err error, action string) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to %s: %w", action, err)
}
