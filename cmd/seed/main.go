// Package main migrates the database schema and seeds the exercise library and
// the built-in workout templates. With -demo it also records a demo user with
// a few weeks of generated training history.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/calisthenix/internal/config"
	"github.com/2beens/calisthenix/internal/db"
	"github.com/2beens/calisthenix/internal/library"
	"github.com/2beens/calisthenix/internal/templates"
)

func main() {
	fmt.Println("seeding ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	reset := flag.Bool("reset", false, "drop all tables before migrating (destroys all data)")
	demo := flag.Bool("demo", false, "add a demo user with generated training history")
	demoUserID := flag.String("demo-user", "demo-user", "id of the demo user")
	demoDays := flag.Int("demo-days", 21, "number of days of demo history")
	demoSeed := flag.Int64("demo-seed", 0, "seed for the demo data generator (0 for random)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	log.SetLevel(log.DebugLevel)

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: cfg.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	if *reset {
		log.Warnln("!! attention: dropping all tables ...")
		if err := db.Reset(ctx, dbPool); err != nil {
			log.Fatalf("reset db: %s", err)
		}
	} else if err := db.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("migrate db: %s", err)
	}

	libraryRepo := library.NewRepo(dbPool)
	entries := library.SeedEntries()
	for _, e := range entries {
		if _, err := libraryRepo.Upsert(ctx, e); err != nil {
			log.Fatalf("upsert library entry %s: %s", e.Slug, err)
		}
	}
	log.Infof("exercise library seeded: %d entries", len(entries))

	seeded, err := templates.SeedSystemTemplates(ctx, templates.NewRepo(dbPool))
	if err != nil {
		log.Fatalf("seed system templates: %s", err)
	}
	log.Infof("system templates seeded: %d", seeded)

	if !*demo {
		return
	}

	summary, err := seedDemoHistory(ctx, dbPool, demoParams{
		UserID:   *demoUserID,
		Days:     *demoDays,
		Seed:     *demoSeed,
		Location: cfg.Location(),
	})
	if err != nil {
		log.Fatalf("seed demo history: %s", err)
	}
	log.Infof("demo user [%s] seeded: %d workouts, %d journal entries, %d records",
		*demoUserID, summary.Workouts, summary.JournalEntries, summary.Records)
}
