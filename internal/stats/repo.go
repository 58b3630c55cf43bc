package stats

import (
	"context"
	"time"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkoutVolume struct {
	Date   time.Time
	Volume int
}

type Totals struct {
	WorkoutCount         int
	CompletedWorkouts    int
	TotalVolume          int
	TotalDurationSeconds int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// WorkoutVolumes lists (date, volume) of the user's workouts in [from, to).
func (r *Repo) WorkoutVolumes(ctx context.Context, userID string, from, to time.Time) (_ []WorkoutVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.workout-volumes")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT date, total_volume
		FROM workouts
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var volumes []WorkoutVolume
	for rows.Next() {
		var v WorkoutVolume
		if err := rows.Scan(&v.Date, &v.Volume); err != nil {
			return nil, err
		}
		volumes = append(volumes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return volumes, nil
}

func (r *Repo) Totals(ctx context.Context, userID string) (_ *Totals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.totals")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	t := &Totals{}
	if err := r.db.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = 'completed'),
			COALESCE(sum(total_volume), 0),
			COALESCE(sum(duration), 0)
		FROM workouts
		WHERE user_id = $1
	`, userID).Scan(&t.WorkoutCount, &t.CompletedWorkouts, &t.TotalVolume, &t.TotalDurationSeconds); err != nil {
		return nil, err
	}
	return t, nil
}
