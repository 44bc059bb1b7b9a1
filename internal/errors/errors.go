package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConstraintViolationError represents a failed uniqueness or referential precondition
type ConstraintViolationError struct {
	Entity string
	Reason string // e.g. "with this email", "user already has a sales agent profile"
}

func (e *ConstraintViolationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s constraint violated: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s constraint violated", e.Entity)
}

// Is enables errors.Is() comparison for ConstraintViolationError
func (e *ConstraintViolationError) Is(target error) bool {
	t, ok := target.(*ConstraintViolationError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Reason == t.Reason
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrSalesAgentNotFound  = &NotFoundError{Entity: "sales agent"}
	ErrHeadOfSalesNotFound = &NotFoundError{Entity: "head of sales"}
	ErrLeadNotFound        = &NotFoundError{Entity: "lead"}
	ErrTaskNotFound        = &NotFoundError{Entity: "task"}
	ErrProductNotFound     = &NotFoundError{Entity: "product"}
)

// Constraint Violation Errors
var (
	ErrUserEmailExists         = &ConstraintViolationError{Entity: "user", Reason: "email already registered"}
	ErrUsernameExists          = &ConstraintViolationError{Entity: "user", Reason: "username already taken"}
	ErrUserAlreadySalesAgent   = &ConstraintViolationError{Entity: "sales agent", Reason: "user is already a sales agent"}
	ErrEmployeeIDExists        = &ConstraintViolationError{Entity: "sales agent", Reason: "employee id already in use"}
	ErrUserAlreadyHeadOfSales  = &ConstraintViolationError{Entity: "head of sales", Reason: "user is already a head of sales"}
	ErrAgentAlreadyInTeam      = &ConstraintViolationError{Entity: "sales team assignment", Reason: "agent is already assigned to this head of sales"}
	ErrAgentAlreadyOnLead      = &ConstraintViolationError{Entity: "lead assignment", Reason: "agent is already assigned to this lead"}
	ErrLeadAlreadyOverseen     = &ConstraintViolationError{Entity: "lead oversight", Reason: "head of sales already oversees this lead"}
	ErrProductSKUExists        = &ConstraintViolationError{Entity: "product", Reason: "sku already in use"}
	ErrReferencedEntityMissing = &ConstraintViolationError{Entity: "reference", Reason: "referenced entity does not exist"}
	ErrDuplicateKey            = &ConstraintViolationError{Entity: "record", Reason: "unique constraint violated"}
)

// Validation Errors
var (
	ErrInvalidPaginationParams = &ValidationError{Field: "skip/limit", Message: "skip must be >= 0 and limit between 1 and 1000"}
	ErrInvalidLeadStatus       = &ValidationError{Field: "status", Message: "unknown lead status"}
	ErrInvalidTaskStatus       = &ValidationError{Field: "status", Message: "unknown task status"}
	ErrInvalidTaskPriority     = &ValidationError{Field: "priority", Message: "unknown task priority"}
	ErrInvalidUserRole         = &ValidationError{Field: "role", Message: "unknown user role"}
	ErrEmptyUpdate             = &ValidationError{Message: "update payload contains no fields"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConstraintViolation checks if an error is a ConstraintViolationError
func IsConstraintViolation(err error) bool {
	var cvErr *ConstraintViolationError
	return errors.As(err, &cvErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
