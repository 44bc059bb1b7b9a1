package routes

import (
	"net/http"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/api/middleware"
	"crm-backend/internal/config"
	"crm-backend/internal/database"
	"crm-backend/internal/events"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the services behind the HTTP surface
type Services struct {
	Users        service.UserServiceInterface
	SalesAgents  service.SalesAgentServiceInterface
	HeadsOfSales service.HeadOfSalesServiceInterface
	Leads        service.LeadServiceInterface
	LeadActivity service.LeadActivityServiceInterface
	Followups    service.FollowupServiceInterface
	Tasks        service.TaskServiceInterface
	Products     service.ProductServiceInterface
	Dashboard    service.DashboardServiceInterface
}

// NewServices wires the repositories and services over db
func NewServices(db *gorm.DB, cfg *config.Config, publisher events.Publisher) *Services {
	validator := service.NewValidator()

	userRepo := repository.NewUserRepository(db)
	agentRepo := repository.NewSalesAgentRepository(db)
	headRepo := repository.NewHeadOfSalesRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	activityRepo := repository.NewLeadActivityRepository(db)
	followupRepo := repository.NewLeadFollowupRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	productRepo := repository.NewProductRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	return &Services{
		Users:        service.NewUserService(userRepo, validator, cfg.BcryptCost),
		SalesAgents:  service.NewSalesAgentService(agentRepo, userRepo, validator),
		HeadsOfSales: service.NewHeadOfSalesService(headRepo, userRepo, agentRepo, validator),
		Leads:        service.NewLeadService(leadRepo, userRepo, agentRepo, publisher, validator),
		LeadActivity: service.NewLeadActivityService(activityRepo, leadRepo, agentRepo, headRepo, validator),
		Followups:    service.NewFollowupService(followupRepo, leadRepo, agentRepo, validator),
		Tasks:        service.NewTaskService(taskRepo, userRepo, leadRepo, validator),
		Products:     service.NewProductService(productRepo, validator),
		Dashboard:    service.NewDashboardService(dashboardRepo),
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, publisher events.Publisher) *gin.Engine {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	health := handlers.NewHealthHandler(handlers.PingFunc(func() error { return database.Ping(db) }), publisher)
	return NewRouter(cfg, NewServices(db, cfg, publisher), health)
}

// NewRouter builds the gin engine over already-wired services
func NewRouter(cfg *config.Config, services *Services, healthHandler *handlers.HealthHandler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg))

	userHandler := handlers.NewUserHandler(services.Users)
	agentHandler := handlers.NewSalesAgentHandler(services.SalesAgents)
	headHandler := handlers.NewHeadOfSalesHandler(services.HeadsOfSales)
	leadHandler := handlers.NewLeadHandler(services.Leads)
	activityHandler := handlers.NewLeadActivityHandler(services.LeadActivity)
	followupHandler := handlers.NewFollowupHandler(services.Followups)
	taskHandler := handlers.NewTaskHandler(services.Tasks)
	productHandler := handlers.NewProductHandler(services.Products)
	dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)

	// Health check routes
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := router.Group("/users")
	{
		users.POST("/", userHandler.CreateUser)
		users.GET("/", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
	}

	agents := router.Group("/sales-agents")
	{
		agents.POST("/", agentHandler.CreateSalesAgent)
		agents.GET("/", agentHandler.ListSalesAgents)
		agents.GET("/:id", agentHandler.GetSalesAgent)
	}

	heads := router.Group("/heads-of-sales")
	{
		heads.POST("/", headHandler.CreateHeadOfSales)
		heads.GET("/", headHandler.ListHeadsOfSales)
		heads.GET("/:id", headHandler.GetHeadOfSales)
		heads.POST("/:id/agents", headHandler.AssignAgent)
		heads.GET("/:id/agents", headHandler.ListAgents)
	}

	leads := router.Group("/leads")
	{
		leads.POST("/", leadHandler.CreateLead)
		leads.GET("/", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PUT("/:id", leadHandler.UpdateLead)
		leads.GET("/:id/followups", followupHandler.ListLeadFollowups)
		leads.POST("/:id/assignments", activityHandler.CreateAssignment)
		leads.GET("/:id/assignments", activityHandler.ListAssignments)
		leads.GET("/:id/status-history", activityHandler.ListStatusHistory)
		leads.POST("/:id/actions", activityHandler.CreateAction)
		leads.GET("/:id/actions", activityHandler.ListActions)
		leads.POST("/:id/communications", activityHandler.CreateCommunication)
		leads.GET("/:id/communications", activityHandler.ListCommunications)
		leads.POST("/:id/oversights", activityHandler.CreateOversight)
		leads.GET("/:id/oversights", activityHandler.ListOversights)
	}

	router.POST("/lead-followups/", followupHandler.CreateFollowup)

	tasks := router.Group("/tasks")
	{
		tasks.POST("/", taskHandler.CreateTask)
		tasks.GET("/", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
	}

	products := router.Group("/products")
	{
		products.POST("/", productHandler.CreateProduct)
		products.GET("/", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	router.GET("/dashboard/stats", dashboardHandler.GetStats)

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(string(logger.RequestIDKey)),
		})
	})

	return router
}
