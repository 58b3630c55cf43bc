package records

import (
	"context"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListRecent(ctx context.Context, userID string, limit int) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list-recent")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, exercise_name, value, achieved_at
		FROM personal_records
		WHERE user_id = $1
		ORDER BY achieved_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0, limit)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.ExerciseName, &rec.Value, &rec.AchievedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *Repo) Add(ctx context.Context, rec Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	added := &Record{}
	if err := r.db.QueryRow(ctx, `
		INSERT INTO personal_records (user_id, exercise_name, value, achieved_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, exercise_name, value, achieved_at
	`, rec.UserID, rec.ExerciseName, rec.Value, rec.AchievedAt).Scan(
		&added.ID, &added.UserID, &added.ExerciseName, &added.Value, &added.AchievedAt,
	); err != nil {
		return nil, err
	}
	return added, nil
}
