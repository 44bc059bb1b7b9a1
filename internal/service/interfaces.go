package service

import (
	"context"

	"crm-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetByID(ctx context.Context, id uint) (*UserResponse, error)
	List(ctx context.Context, query *ListUsersQuery) ([]UserResponse, error)
}

// SalesAgentServiceInterface defines the interface for sales agent service
type SalesAgentServiceInterface interface {
	Create(ctx context.Context, req *CreateSalesAgentRequest) (*models.SalesAgent, error)
	GetByID(ctx context.Context, id uint) (*models.SalesAgent, error)
	List(ctx context.Context, query *ListSalesAgentsQuery) ([]models.SalesAgent, error)
}

// HeadOfSalesServiceInterface defines the interface for head of sales service
type HeadOfSalesServiceInterface interface {
	Create(ctx context.Context, req *CreateHeadOfSalesRequest) (*models.HeadOfSales, error)
	GetByID(ctx context.Context, id uint) (*models.HeadOfSales, error)
	List(ctx context.Context, query *PageQuery) ([]models.HeadOfSales, error)
	AssignAgent(ctx context.Context, headID uint, req *AssignAgentRequest) (*models.SalesTeamAssignment, error)
	ListAgents(ctx context.Context, headID uint) ([]models.SalesTeamAssignment, error)
}

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*models.Lead, error)
	GetByID(ctx context.Context, id uint) (*models.Lead, error)
	List(ctx context.Context, query *ListLeadsQuery) ([]models.Lead, error)
	Update(ctx context.Context, id uint, req *UpdateLeadRequest) (*models.Lead, error)
}

// LeadActivityServiceInterface defines the interface for the records hanging off a lead
type LeadActivityServiceInterface interface {
	AssignAgent(ctx context.Context, leadID uint, req *CreateLeadAssignmentRequest) (*models.LeadAssignment, error)
	ListAssignments(ctx context.Context, leadID uint) ([]models.LeadAssignment, error)
	ListStatusHistory(ctx context.Context, leadID uint) ([]models.LeadStatusHistory, error)
	LogAction(ctx context.Context, leadID uint, req *CreateLeadActionRequest) (*models.LeadAction, error)
	ListActions(ctx context.Context, leadID uint) ([]models.LeadAction, error)
	LogCommunication(ctx context.Context, leadID uint, req *CreateLeadCommunicationRequest) (*models.LeadCommunication, error)
	ListCommunications(ctx context.Context, leadID uint) ([]models.LeadCommunication, error)
	AddOversight(ctx context.Context, leadID uint, req *CreateOversightRequest) (*models.HeadLeadOversight, error)
	ListOversights(ctx context.Context, leadID uint) ([]models.HeadLeadOversight, error)
}

// FollowupServiceInterface defines the interface for follow-up service
type FollowupServiceInterface interface {
	Create(ctx context.Context, req *CreateFollowupRequest) (*models.LeadFollowup, error)
	ListByLead(ctx context.Context, leadID uint) ([]models.LeadFollowup, error)
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	Create(ctx context.Context, req *CreateTaskRequest) (*models.Task, error)
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	List(ctx context.Context, query *ListTasksQuery) ([]models.Task, error)
	Update(ctx context.Context, id uint, req *UpdateTaskRequest) (*models.Task, error)
}

// ProductServiceInterface defines the interface for product service
type ProductServiceInterface interface {
	Create(ctx context.Context, req *CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, query *ListProductsQuery) ([]models.Product, error)
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

var (
	_ UserServiceInterface         = (*UserService)(nil)
	_ SalesAgentServiceInterface   = (*SalesAgentService)(nil)
	_ HeadOfSalesServiceInterface  = (*HeadOfSalesService)(nil)
	_ LeadServiceInterface         = (*LeadService)(nil)
	_ LeadActivityServiceInterface = (*LeadActivityService)(nil)
	_ FollowupServiceInterface     = (*FollowupService)(nil)
	_ TaskServiceInterface         = (*TaskService)(nil)
	_ ProductServiceInterface      = (*ProductService)(nil)
	_ DashboardServiceInterface    = (*DashboardService)(nil)
)
