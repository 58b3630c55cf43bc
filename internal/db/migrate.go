package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

//go:embed schema.sql
var Schema string

const dropAll = `
DROP TABLE IF EXISTS workout_template_exercises;
DROP TABLE IF EXISTS workout_templates;
DROP TABLE IF EXISTS exercise_library;
DROP TABLE IF EXISTS personal_records;
DROP TABLE IF EXISTS journal_entries;
DROP TABLE IF EXISTS exercises;
DROP TABLE IF EXISTS workouts;
DROP TABLE IF EXISTS users;
`

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Migrate creates all tables and indexes that do not exist yet.
func Migrate(ctx context.Context, db execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debugln("db schema applied")
	return nil
}

// Reset drops every table and applies the schema from scratch.
func Reset(ctx context.Context, db execer) error {
	if _, err := db.Exec(ctx, dropAll); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	log.Warnln("all tables dropped")
	return Migrate(ctx, db)
}
