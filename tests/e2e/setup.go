//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"checkin-core/cmd/bootstrap"
	"checkin-core/cmd/bootstrap/components"
	"checkin-core/internal/infra/db"
	"checkin-core/internal/pkg/config"
	"checkin-core/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	schemaFile   = "migrations/001_initial_schema.sql"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container

	dayCounter atomic.Int64
)

// NextDate hands out a fresh service day. The running app caches every record
// it has seen, so subtests never share a day with each other.
func NextDate() string {
	n := dayCounter.Add(1)
	return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(n)).Format(time.DateOnly)
}

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	dbConfig := createDatabase(t, postgresAddr(t))
	pool, closePool, err := db.Connect(context.Background(), dbConfig)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)

	require.NoError(t, applySchema(pool), "migration failed")
	require.NoError(t, dbtest.SeedReferenceData(pool), "failed to seed reference data")

	s.DB = pool
	s.Config = config.NewTestConfig()
	s.Config.DB = dbConfig
	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupTest() {}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}

// startApp wires the full application against pool, background workers
// included, and stops it when the test ends.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return cfg },
			bootstrap.NewLocation,
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.JWTModule,
		bootstrap.LocalCacheModule,
		bootstrap.SyncBusModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.BackgroundModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop app", "error", err.Error())
		}
	})
	return router
}

type containerAddr struct {
	Host string
	Port nat.Port
}

func postgresAddr(t *testing.T) containerAddr {
	t.Helper()

	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		postgresContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
						testUser, testPassword, host, port.Port())
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "checkin-e2e"},
			},
			Started: true,
		})
		require.NoError(t, err, "failed to start postgres container")
	})
	require.NotNil(t, postgresContainer, "postgres container did not start")

	ctx := context.Background()
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	return containerAddr{Host: host, Port: port}
}

// createDatabase makes one database per suite so suites can run in parallel
// against the shared container.
func createDatabase(t *testing.T, addr containerAddr) config.DBConfig {
	t.Helper()

	name := "checkin_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, addr.Host, addr.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	// CREATE DATABASE fails while another session is copying template1
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt+1, "error", err.Error())
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     addr.Host,
		Port:     addr.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 8,
	}
}

// applySchema runs the migration file, found relative to whichever package
// directory go test was started in.
func applySchema(pool *pgxpool.Pool) error {
	var (
		sql []byte
		err error
	)
	for _, dir := range []string{".", "..", filepath.Join("..", ".."), filepath.Join("..", "..", "..")} {
		if sql, err = os.ReadFile(filepath.Join(dir, schemaFile)); err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", schemaFile, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("failed to apply %s: %w", schemaFile, err)
	}
	return nil
}
