package repository

import (
	"context"

	"crm-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Page is an offset/limit window over an ordered result set
type Page struct {
	Skip  int
	Limit int
}

// UserFilter holds the optional equality filters for listing users
type UserFilter struct {
	Role     *models.UserRole
	IsActive *bool
}

// SalesAgentFilter holds the optional equality filters for listing sales agents
type SalesAgentFilter struct {
	Department *string
}

// LeadFilter holds the optional equality filters for listing leads
type LeadFilter struct {
	Status       *models.LeadStatus
	OwnerID      *uint
	SalesAgentID *uint
	Source       *string
}

// TaskFilter holds the optional equality filters for listing tasks
type TaskFilter struct {
	Status        *models.TaskStatus
	Priority      *models.TaskPriority
	AssignedToID  *uint
	RelatedLeadID *uint
}

// ProductFilter holds the optional equality filters for listing products
type ProductFilter struct {
	IsActive *bool
}

// LeadUpdate is a sparse lead update. Fields holds column name -> new value;
// ChangedByID and Reason annotate the status history row written when the status changes.
type LeadUpdate struct {
	Fields      map[string]interface{}
	ChangedByID *uint
	Reason      string
}

// DashboardCounts holds the raw counters behind the dashboard
type DashboardCounts struct {
	TotalLeads     int64 `gorm:"column:total_leads"`
	NewLeads       int64 `gorm:"column:new_leads"`
	ClosedWonLeads int64 `gorm:"column:closed_won_leads"`
	TotalUsers     int64 `gorm:"column:total_users"`
	ActiveTasks    int64 `gorm:"column:active_tasks"`
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, filter UserFilter, page Page) ([]models.User, error)
}

// SalesAgentRepositoryInterface defines the interface for sales agent repository operations
type SalesAgentRepositoryInterface interface {
	Create(ctx context.Context, agent *models.SalesAgent) error
	GetByID(ctx context.Context, id uint) (*models.SalesAgent, error)
	GetByUserID(ctx context.Context, userID uint) (*models.SalesAgent, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.SalesAgent, error)
	List(ctx context.Context, filter SalesAgentFilter, page Page) ([]models.SalesAgent, error)
}

// HeadOfSalesRepositoryInterface defines the interface for head of sales and team assignment operations
type HeadOfSalesRepositoryInterface interface {
	Create(ctx context.Context, head *models.HeadOfSales) error
	GetByID(ctx context.Context, id uint) (*models.HeadOfSales, error)
	GetByUserID(ctx context.Context, userID uint) (*models.HeadOfSales, error)
	List(ctx context.Context, page Page) ([]models.HeadOfSales, error)
	CreateTeamAssignment(ctx context.Context, assignment *models.SalesTeamAssignment) error
	GetTeamAssignment(ctx context.Context, headID, agentID uint) (*models.SalesTeamAssignment, error)
	ListTeamAssignments(ctx context.Context, headID uint) ([]models.SalesTeamAssignment, error)
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id uint) (*models.Lead, error)
	List(ctx context.Context, filter LeadFilter, page Page) ([]models.Lead, error)
	Update(ctx context.Context, id uint, update LeadUpdate) (*models.Lead, *models.LeadStatusHistory, error)
}

// LeadActivityRepositoryInterface defines the interface for the records hanging off a lead
type LeadActivityRepositoryInterface interface {
	CreateAssignment(ctx context.Context, assignment *models.LeadAssignment) error
	GetAssignment(ctx context.Context, leadID, agentID uint) (*models.LeadAssignment, error)
	ListAssignments(ctx context.Context, leadID uint) ([]models.LeadAssignment, error)
	ListStatusHistory(ctx context.Context, leadID uint) ([]models.LeadStatusHistory, error)
	CreateAction(ctx context.Context, action *models.LeadAction) error
	ListActions(ctx context.Context, leadID uint) ([]models.LeadAction, error)
	CreateCommunication(ctx context.Context, communication *models.LeadCommunication) error
	ListCommunications(ctx context.Context, leadID uint) ([]models.LeadCommunication, error)
	CreateOversight(ctx context.Context, oversight *models.HeadLeadOversight) error
	GetOversight(ctx context.Context, leadID, headID uint) (*models.HeadLeadOversight, error)
	ListOversights(ctx context.Context, leadID uint) ([]models.HeadLeadOversight, error)
}

// LeadFollowupRepositoryInterface defines the interface for follow-up repository operations
type LeadFollowupRepositoryInterface interface {
	Create(ctx context.Context, followup *models.LeadFollowup) error
	ListByLead(ctx context.Context, leadID uint) ([]models.LeadFollowup, error)
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	List(ctx context.Context, filter TaskFilter, page Page) ([]models.Task, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Task, error)
}

// ProductRepositoryInterface defines the interface for product repository operations
type ProductRepositoryInterface interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	List(ctx context.Context, filter ProductFilter, page Page) ([]models.Product, error)
}

// DashboardRepositoryInterface defines the interface for dashboard aggregate queries
type DashboardRepositoryInterface interface {
	Counts(ctx context.Context) (*DashboardCounts, error)
}
