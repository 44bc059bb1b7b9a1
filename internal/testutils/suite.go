package testutils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"crm-backend/internal/config"
	"crm-backend/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgImage    = "postgres"
	pgTag      = "16-alpine"
	pgUser     = "crm"
	pgPassword = "crm"
	pgDatabase = "crm_test"
)

// One Postgres container is shared by every suite in the test binary
var (
	containerOnce sync.Once
	containerErr  error
	pool          *dockertest.Pool
	resource      *dockertest.Resource
	sharedDB      *gorm.DB
	sharedConfig  *config.Config
)

// BaseTestSuite hands repository suites a migrated database that is emptied between tests
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("failed to start test database: %v", containerErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the pool and purges the container; TestMain calls it once per package
func CleanupSharedContainer() {
	if sharedDB != nil {
		_ = database.Close(sharedDB)
		sharedDB = nil
	}
	if pool != nil && resource != nil {
		if err := pool.Purge(resource); err != nil {
			log.Printf("could not purge postgres container: %v", err)
		}
		pool, resource = nil, nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container stays up for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every CRM table in one statement and resets the id sequences
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables, err := tableNames(s.DB)
	if err != nil {
		s.failNow(err)
		return
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		s.failNow(err)
	}
}

func (s *BaseTestSuite) failNow(err error) {
	if s.T() != nil {
		s.T().Fatalf("clean test database: %v", err)
	}
	log.Printf("clean test database: %v", err)
}

func tableNames(db *gorm.DB) ([]string, error) {
	all := database.Models()
	names := make([]string, 0, len(all))
	for _, m := range all {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, err
		}
		names = append(names, `"`+stmt.Schema.Table+`"`)
	}
	return names, nil
}

func startPostgres() error {
	p, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("connect to docker: %w", err)
	}
	if err := p.Client.Ping(); err != nil {
		return fmt.Errorf("ping docker: %w", err)
	}
	pool = p

	res, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: pgImage,
		Tag:        pgTag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("start postgres: %w", err)
	}
	resource = res
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return err
		}
		return conn.Close(ctx)
	}); err != nil {
		return fmt.Errorf("wait for postgres: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	sharedDB = db

	sharedConfig = &config.Config{
		Environment:        "test",
		Port:               "8080",
		LogLevel:           "debug",
		DatabaseURL:        dsn,
		DatabaseName:       pgDatabase,
		AllowedOrigins:     []string{"*"},
		BcryptCost:         4,
		AMQPExchange:       "crm.events",
		ShutdownTimeoutSec: 5,
	}
	return nil
}
