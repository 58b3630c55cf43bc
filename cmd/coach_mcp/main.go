// Package main runs the coach context MCP server over stdio, for local MCP
// clients. It exposes the training data of the single user passed with -user.
package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/calisthenix/internal/cache"
	"github.com/2beens/calisthenix/internal/coach"
	coachmcp "github.com/2beens/calisthenix/internal/coach/mcp"
	"github.com/2beens/calisthenix/internal/config"
	"github.com/2beens/calisthenix/internal/db"
	"github.com/2beens/calisthenix/internal/library"
	"github.com/2beens/calisthenix/internal/records"
	"github.com/2beens/calisthenix/internal/stats"
	"github.com/2beens/calisthenix/internal/templates"
	"github.com/2beens/calisthenix/internal/users"
	"github.com/2beens/calisthenix/internal/workouts"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userID := flag.String("user", "", "user id whose training data is exposed (defaults to the configured static user)")
	flag.Parse()

	// stdout carries the MCP protocol, logrus writes to stderr
	log.SetLevel(log.WarnLevel)

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if *userID == "" {
		*userID = cfg.StaticUserID
	}
	if *userID == "" {
		log.Fatal("user id not set, use -user or static_user_id in config")
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	usersRepo := users.NewRepo(dbPool)
	libraryService := library.NewService(library.NewRepo(dbPool), cache.NewJSONCache("library", cfg.LibraryCacheSize))
	statsService := stats.NewService(usersRepo, stats.NewRepo(dbPool), cfg.Location())
	workoutsService := workouts.NewService(workouts.NewRepo(dbPool), statsService, nil)
	templatesService := templates.NewService(templates.NewRepo(dbPool), libraryService, workoutsService)

	coachService := coach.NewService(coach.NewServiceParams{
		Profiles:  usersRepo,
		Workouts:  workoutsService,
		Templates: templatesService,
		Records:   records.NewRepo(dbPool),
		Library:   libraryService,
		Location:  cfg.Location(),
	})

	server := coachmcp.NewServer(coachmcp.ServerParams{
		UserID:   *userID,
		Pool:     dbPool,
		Coach:    coachService,
		Workouts: workoutsService,
		Stats:    statsService,
	})

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
