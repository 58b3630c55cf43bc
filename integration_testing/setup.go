//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/2beens/calisthenix/internal"
	"github.com/2beens/calisthenix/internal/config"
	"github.com/2beens/calisthenix/internal/db"
	"github.com/2beens/calisthenix/internal/library"
	"github.com/2beens/calisthenix/internal/templates"
)

const (
	serverPort  = 9000
	metricsPort = "9001"
	serverHost  = "127.0.0.1"
	dbName      = "calisthenix"

	testUserID               = "it-user"
	testCoachRateLimitPerMin = 3
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

// httpClient does not follow redirects, so the login response and its
// session cookie can be inspected.
var httpClient = &http.Client{
	Timeout: 10 * time.Second,
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

type env struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newEnv(ctx context.Context) *env {
	e := &env{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	var err error
	e.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = e.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := e.redisSetup()
	if err != nil {
		e.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := e.postgresSetup(ctx)
	if err != nil {
		e.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	e.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			RedisPassword:           "",
			GeminiAPIKey:            "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		e.cleanup()
		log.Fatalf("new server: %s", err)
	}

	e.server.Serve(ctx, cfg.Host, cfg.Port)

	if err := e.dockerPool.Retry(func() error {
		resp, err := httpClient.Get(serverEndpoint + "/")
		if err != nil {
			return err
		}
		return resp.Body.Close()
	}); err != nil {
		e.cleanup()
		log.Fatalf("server not reachable: %s", err)
	}

	return e
}

func (e *env) cleanup() {
	if e.DB != nil {
		if err := e.DB.Close(); err != nil {
			log.Printf(" --> db close error: %s", err)
		}
	}
	if e.server != nil {
		e.server.GracefulShutdown()
	}
	for _, teardown := range e.teardown {
		teardown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Environment:                 "development",
		Host:                        serverHost,
		Port:                        serverPort,
		LogLevel:                    "debug",
		PrometheusMetricsHost:       serverHost,
		PrometheusMetricsPort:       metricsPort,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresPort:                postgresPort,
		PostgresHost:                "localhost",
		PostgresDBName:              dbName,
		PostgresUser:                "postgres",
		AuthMode:                    config.AuthModeSession,
		DevLoginEnabled:             true,
		StaticUserID:                testUserID,
		StaticUserEmail:             "it-user@calisthenix.dev",
		StaticUserName:              "Integration Tester",
		SessionTTL:                  time.Hour,
		StreakTimezone:              "UTC",
		LibraryCacheSize:            1,
		CoachModel:                  "gemini-test",
		CoachRateLimitAllowedPerMin: testCoachRateLimitPerMin,
	}
}

func (e *env) redisSetup() (string, error) {
	redisResource, err := e.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	e.teardown = append(e.teardown, func() {
		if err := redisResource.Close(); err != nil {
			log.Printf("redis teardown: %s", err)
		}
	})

	return redisResource.GetPort("6379/tcp"), nil
}

// postgresSetup starts postgres, applies the schema and seeds the catalog
// and the system templates, the way cmd/seed does.
func (e *env) postgresSetup(ctx context.Context) (string, error) {
	pgResource, err := e.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + dbName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	e.teardown = append(e.teardown, func() {
		if err := pgResource.Close(); err != nil {
			log.Printf("postgres teardown: %s", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, dbName)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	e.DB = sqlDB

	if err := e.dockerPool.Retry(sqlDB.Ping); err != nil {
		return "", fmt.Errorf("ping db: %w", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return "", fmt.Errorf("create connection pool: %w", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		return "", err
	}

	libraryRepo := library.NewRepo(pool)
	for _, entry := range library.SeedEntries() {
		if _, err := libraryRepo.Upsert(ctx, entry); err != nil {
			return "", fmt.Errorf("seed library entry %s: %w", entry.Slug, err)
		}
	}

	seeded, err := templates.SeedSystemTemplates(ctx, templates.NewRepo(pool))
	if err != nil {
		return "", fmt.Errorf("seed templates: %w", err)
	}
	log.Printf("postgres setup done, system templates: %d", seeded)

	return pgPort, nil
}
