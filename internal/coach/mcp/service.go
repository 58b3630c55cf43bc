package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/calisthenix/internal/stats"
	"github.com/2beens/calisthenix/internal/workouts"
)

type digester interface {
	Digest(ctx context.Context, userID string) (string, error)
}

type workoutLister interface {
	List(ctx context.Context, userID string, params workouts.ListParams) ([]workouts.Workout, error)
}

type weeklyVolumer interface {
	WeeklyVolume(ctx context.Context, userID string) ([]stats.DayVolume, error)
}

// contextService provides one user's training data to the MCP tools.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	TrainingContext(ctx context.Context) (string, error)
	WorkoutsForTimeRange(ctx context.Context, from, to time.Time) ([]workouts.Workout, error)
	WeeklyVolume(ctx context.Context) ([]stats.DayVolume, error)
}

// ContextService serves the training data of a single user, fixed at construction.
type ContextService struct {
	userID   string
	schema   SchemaRepo
	coach    digester
	workouts workoutLister
	stats    weeklyVolumer
}

func NewContextService(userID string, schemaRepo SchemaRepo, coach digester, workoutsLister workoutLister, stats weeklyVolumer) *ContextService {
	return &ContextService{
		userID:   userID,
		schema:   schemaRepo,
		coach:    coach,
		workouts: workoutsLister,
		stats:    stats,
	}
}

// GetSchema returns the training tables' columns as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetTrainingColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Calisthenix DB Schema\n\nNo training tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Calisthenix DB Schema\n\n")
	for _, tableName := range tableOrder {
		b.WriteString("## " + tableName + "\n\n")
		b.WriteString("| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// TrainingContext returns the same digest the coach chat sends to the model.
func (s *ContextService) TrainingContext(ctx context.Context) (string, error) {
	return s.coach.Digest(ctx, s.userID)
}

func (s *ContextService) WorkoutsForTimeRange(ctx context.Context, from, to time.Time) ([]workouts.Workout, error) {
	return s.workouts.List(ctx, s.userID, workouts.ListParams{
		Limit:         workouts.MaxListLimit,
		From:          &from,
		To:            &to,
		WithExercises: true,
	})
}

func (s *ContextService) WeeklyVolume(ctx context.Context) ([]stats.DayVolume, error) {
	return s.stats.WeeklyVolume(ctx, s.userID)
}
