package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"crm-backend/internal/database/models"
)

var sequence atomic.Uint64

// nextSeq returns a process-wide unique number for building unique emails, usernames and SKUs
func nextSeq() uint64 {
	return sequence.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with unique email and username
func (f *UserFactory) Create() *models.User {
	n := nextSeq()
	return &models.User{
		Email:        fmt.Sprintf("user%d@example.com", n),
		Username:     fmt.Sprintf("user%d", n),
		FullName:     "Jane Doe",
		PasswordHash: "$2a$04$abcdefghijklmnopqrstuuJ4a1pYmIu6w2V2y6D5xq2mJ9v8xGm2K",
		Role:         models.UserRoleCustomer,
		IsActive:     true,
	}
}

// WithEmail creates a test User with a custom email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole creates a test User with a custom role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// SalesAgentFactory provides methods to create test SalesAgent data
type SalesAgentFactory struct{}

// NewSalesAgentFactory creates a new SalesAgentFactory
func NewSalesAgentFactory() *SalesAgentFactory {
	return &SalesAgentFactory{}
}

// Create creates a test SalesAgent profile for the given user
func (f *SalesAgentFactory) Create(userID uint) *models.SalesAgent {
	employeeID := fmt.Sprintf("EMP-%04d", nextSeq())
	return &models.SalesAgent{
		UserID:         userID,
		EmployeeID:     &employeeID,
		Department:     "Enterprise",
		HireDate:       time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		Quota:          100000,
		CommissionRate: 0.05,
	}
}

// HeadOfSalesFactory provides methods to create test HeadOfSales data
type HeadOfSalesFactory struct{}

// NewHeadOfSalesFactory creates a new HeadOfSalesFactory
func NewHeadOfSalesFactory() *HeadOfSalesFactory {
	return &HeadOfSalesFactory{}
}

// Create creates a test HeadOfSales profile for the given user
func (f *HeadOfSalesFactory) Create(userID uint) *models.HeadOfSales {
	return &models.HeadOfSales{
		UserID:     userID,
		Department: "Enterprise",
	}
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead in the "new" status
func (f *LeadFactory) Create() *models.Lead {
	n := nextSeq()
	return &models.Lead{
		FirstName: "Alex",
		LastName:  fmt.Sprintf("Prospect%d", n),
		Email:     fmt.Sprintf("lead%d@example.com", n),
		Company:   "Acme Corp",
		Source:    "website",
		Status:    models.LeadStatusNew,
	}
}

// WithStatus creates a test Lead with a custom status
func (f *LeadFactory) WithStatus(status models.LeadStatus) *models.Lead {
	lead := f.Create()
	lead.Status = status
	return lead
}

// WithSource creates a test Lead with a custom source
func (f *LeadFactory) WithSource(source string) *models.Lead {
	lead := f.Create()
	lead.Source = source
	return lead
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a pending, medium-priority test Task
func (f *TaskFactory) Create() *models.Task {
	return &models.Task{
		Title:    fmt.Sprintf("Call back #%d", nextSeq()),
		Status:   models.TaskStatusPending,
		Priority: models.TaskPriorityMedium,
	}
}

// WithDueDate creates a test Task due at the given time
func (f *TaskFactory) WithDueDate(due time.Time) *models.Task {
	task := f.Create()
	task.DueDate = &due
	return task
}

// ProductFactory provides methods to create test Product data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates an active test Product with a unique SKU
func (f *ProductFactory) Create() *models.Product {
	n := nextSeq()
	return &models.Product{
		Name:     fmt.Sprintf("Product %d", n),
		SKU:      fmt.Sprintf("SKU-%06d", n),
		Price:    49.99,
		IsActive: true,
	}
}

// FactorySet contains all factories for easy access in tests
type FactorySet struct {
	User        *UserFactory
	SalesAgent  *SalesAgentFactory
	HeadOfSales *HeadOfSalesFactory
	Lead        *LeadFactory
	Task        *TaskFactory
	Product     *ProductFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		SalesAgent:  NewSalesAgentFactory(),
		HeadOfSales: NewHeadOfSalesFactory(),
		Lead:        NewLeadFactory(),
		Task:        NewTaskFactory(),
		Product:     NewProductFactory(),
	}
}
