package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crm-backend/internal/config"
	"crm-backend/internal/database"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/events"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed records reference each other by natural key (username, email, sku)
type UserData struct {
	Email    string `yaml:"email"`
	Username string `yaml:"username"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type SalesAgentData struct {
	Username       string  `yaml:"username"`
	EmployeeID     string  `yaml:"employee_id"`
	Department     string  `yaml:"department"`
	Quota          float64 `yaml:"quota"`
	CommissionRate float64 `yaml:"commission_rate"`
}

type HeadOfSalesData struct {
	Username   string   `yaml:"username"`
	Department string   `yaml:"department"`
	Team       []string `yaml:"team"` // usernames of sales agents
}

type LeadData struct {
	FirstName  string  `yaml:"first_name"`
	LastName   string  `yaml:"last_name"`
	Email      string  `yaml:"email"`
	Company    string  `yaml:"company"`
	Source     string  `yaml:"source"`
	Status     string  `yaml:"status"`
	Value      float64 `yaml:"value"`
	Owner      string  `yaml:"owner"`       // username
	SalesAgent string  `yaml:"sales_agent"` // username
}

type TaskData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	DueInDays   *int   `yaml:"due_in_days"`
	Status      string `yaml:"status"`
	Priority    string `yaml:"priority"`
	AssignedTo  string `yaml:"assigned_to"`  // username
	RelatedLead string `yaml:"related_lead"` // lead email
}

type ProductData struct {
	Name        string  `yaml:"name"`
	SKU         string  `yaml:"sku"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
}

// SeedFile is the layout of every YAML file under the seed directory
type SeedFile struct {
	Users        []UserData        `yaml:"users"`
	SalesAgents  []SalesAgentData  `yaml:"sales_agents"`
	HeadsOfSales []HeadOfSalesData `yaml:"heads_of_sales"`
	Leads        []LeadData        `yaml:"leads"`
	Tasks        []TaskData        `yaml:"tasks"`
	Products     []ProductData     `yaml:"products"`
}

type seeder struct {
	db        *gorm.DB
	userRepo  *repository.UserRepository
	agentRepo *repository.SalesAgentRepository
	headRepo  *repository.HeadOfSalesRepository

	users    *service.UserService
	agents   *service.SalesAgentService
	heads    *service.HeadOfSalesService
	leads    *service.LeadService
	tasks    *service.TaskService
	products *service.ProductService
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	seed, err := loadSeedFiles(cfg.SeedDataDir)
	if err != nil {
		log.Fatalf("Failed to read seed data: %v", err)
	}

	if err := newSeeder(db, cfg).load(context.Background(), seed); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeedFiles merges every .yaml file found under dataDir
func loadSeedFiles(dataDir string) (*SeedFile, error) {
	merged := &SeedFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Users = append(merged.Users, file.Users...)
		merged.SalesAgents = append(merged.SalesAgents, file.SalesAgents...)
		merged.HeadsOfSales = append(merged.HeadsOfSales, file.HeadsOfSales...)
		merged.Leads = append(merged.Leads, file.Leads...)
		merged.Tasks = append(merged.Tasks, file.Tasks...)
		merged.Products = append(merged.Products, file.Products...)
		return nil
	})

	return merged, err
}

func newSeeder(db *gorm.DB, cfg *config.Config) *seeder {
	v := service.NewValidator()
	userRepo := repository.NewUserRepository(db)
	agentRepo := repository.NewSalesAgentRepository(db)
	headRepo := repository.NewHeadOfSalesRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	return &seeder{
		db:        db,
		userRepo:  userRepo,
		agentRepo: agentRepo,
		headRepo:  headRepo,
		users:     service.NewUserService(userRepo, v, cfg.BcryptCost),
		agents:    service.NewSalesAgentService(agentRepo, userRepo, v),
		heads:     service.NewHeadOfSalesService(headRepo, userRepo, agentRepo, v),
		leads:     service.NewLeadService(leadRepo, userRepo, agentRepo, events.NewNoopPublisher(), v),
		tasks:     service.NewTaskService(repository.NewTaskRepository(db), userRepo, leadRepo, v),
		products:  service.NewProductService(repository.NewProductRepository(db), v),
	}
}

func (s *seeder) load(ctx context.Context, seed *SeedFile) error {
	created := 0
	for _, u := range seed.Users {
		ok, err := s.createUser(ctx, u)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Username, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Users: %d created, %d total", created, len(seed.Users))

	created = 0
	for _, a := range seed.SalesAgents {
		ok, err := s.createSalesAgent(ctx, a)
		if err != nil {
			return fmt.Errorf("failed to create sales agent %s: %w", a.Username, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Sales agents: %d created, %d total", created, len(seed.SalesAgents))

	created = 0
	for _, h := range seed.HeadsOfSales {
		ok, err := s.createHeadOfSales(ctx, h)
		if err != nil {
			return fmt.Errorf("failed to create head of sales %s: %w", h.Username, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Heads of sales: %d created, %d total", created, len(seed.HeadsOfSales))

	created = 0
	for _, l := range seed.Leads {
		ok, err := s.createLead(ctx, l)
		if err != nil {
			return fmt.Errorf("failed to create lead %s: %w", l.Email, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Leads: %d created, %d total", created, len(seed.Leads))

	created = 0
	for _, t := range seed.Tasks {
		ok, err := s.createTask(ctx, t)
		if err != nil {
			return fmt.Errorf("failed to create task %q: %w", t.Title, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Tasks: %d created, %d total", created, len(seed.Tasks))

	created = 0
	for _, p := range seed.Products {
		ok, err := s.createProduct(ctx, p)
		if err != nil {
			return fmt.Errorf("failed to create product %s: %w", p.SKU, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Products: %d created, %d total", created, len(seed.Products))

	return nil
}

func (s *seeder) createUser(ctx context.Context, u UserData) (bool, error) {
	if _, err := s.userRepo.GetByUsername(ctx, u.Username); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	_, err := s.users.Create(ctx, &service.CreateUserRequest{
		Email:    u.Email,
		Username: u.Username,
		FullName: u.FullName,
		Password: u.Password,
		Role:     u.Role,
	})
	return err == nil, err
}

func (s *seeder) userID(ctx context.Context, username string) (uint, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("user %s: %w", username, err)
	}
	return user.ID, nil
}

func (s *seeder) agentID(ctx context.Context, username string) (uint, error) {
	userID, err := s.userID(ctx, username)
	if err != nil {
		return 0, err
	}
	agent, err := s.agentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("sales agent %s: %w", username, err)
	}
	return agent.ID, nil
}

func (s *seeder) createSalesAgent(ctx context.Context, a SalesAgentData) (bool, error) {
	userID, err := s.userID(ctx, a.Username)
	if err != nil {
		return false, err
	}
	if _, err := s.agentRepo.GetByUserID(ctx, userID); err == nil {
		return false, nil
	}

	req := &service.CreateSalesAgentRequest{
		UserID:         userID,
		Department:     a.Department,
		Quota:          a.Quota,
		CommissionRate: a.CommissionRate,
	}
	if a.EmployeeID != "" {
		req.EmployeeID = &a.EmployeeID
	}
	_, err = s.agents.Create(ctx, req)
	return err == nil, err
}

func (s *seeder) createHeadOfSales(ctx context.Context, h HeadOfSalesData) (bool, error) {
	userID, err := s.userID(ctx, h.Username)
	if err != nil {
		return false, err
	}

	created := false
	head, err := s.headRepo.GetByUserID(ctx, userID)
	if err != nil {
		if head, err = s.heads.Create(ctx, &service.CreateHeadOfSalesRequest{UserID: userID, Department: h.Department}); err != nil {
			return false, err
		}
		created = true
	}

	for _, member := range h.Team {
		agentID, err := s.agentID(ctx, member)
		if err != nil {
			return false, err
		}
		if _, err := s.headRepo.GetTeamAssignment(ctx, head.ID, agentID); err == nil {
			continue
		}
		if _, err := s.heads.AssignAgent(ctx, head.ID, &service.AssignAgentRequest{SalesAgentID: agentID}); err != nil {
			return false, err
		}
	}
	return created, nil
}

func (s *seeder) createLead(ctx context.Context, l LeadData) (bool, error) {
	var existing models.Lead
	if err := s.db.WithContext(ctx).Where("email = ?", l.Email).First(&existing).Error; err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	req := &service.CreateLeadRequest{
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Email:     l.Email,
		Company:   l.Company,
		Source:    l.Source,
		Status:    l.Status,
		Value:     l.Value,
	}
	if l.Owner != "" {
		id, err := s.userID(ctx, l.Owner)
		if err != nil {
			return false, err
		}
		req.OwnerID = &id
	}
	if l.SalesAgent != "" {
		id, err := s.agentID(ctx, l.SalesAgent)
		if err != nil {
			return false, err
		}
		req.SalesAgentID = &id
	}

	_, err := s.leads.Create(ctx, req)
	return err == nil, err
}

func (s *seeder) createTask(ctx context.Context, t TaskData) (bool, error) {
	var existing models.Task
	if err := s.db.WithContext(ctx).Where("title = ?", t.Title).First(&existing).Error; err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	req := &service.CreateTaskRequest{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
	}
	if t.DueInDays != nil {
		due := time.Now().UTC().AddDate(0, 0, *t.DueInDays)
		req.DueDate = &due
	}
	if t.AssignedTo != "" {
		id, err := s.userID(ctx, t.AssignedTo)
		if err != nil {
			return false, err
		}
		req.AssignedToID = &id
	}
	if t.RelatedLead != "" {
		var lead models.Lead
		if err := s.db.WithContext(ctx).Where("email = ?", t.RelatedLead).First(&lead).Error; err != nil {
			return false, fmt.Errorf("lead %s: %w", t.RelatedLead, err)
		}
		req.RelatedLeadID = &lead.ID
	}

	_, err := s.tasks.Create(ctx, req)
	return err == nil, err
}

func (s *seeder) createProduct(ctx context.Context, p ProductData) (bool, error) {
	_, err := s.products.Create(ctx, &service.CreateProductRequest{
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price,
	})
	var violation *apperrors.ConstraintViolationError
	if errors.As(err, &violation) {
		return false, nil
	}
	return err == nil, err
}
