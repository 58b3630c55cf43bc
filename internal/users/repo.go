package users

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, first_name, last_name, profile_image_url, display_name,
	current_level, level_progress, streak, last_workout_date, weight, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanUser(row pgx.Row) (*User, error) {
	u := &User{}
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.DisplayName,
		&u.CurrentLevel, &u.LevelProgress, &u.Streak, &u.LastWorkoutDate, &u.Weight,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// Upsert creates the user or refreshes its identity fields. The display name
// is only derived on insert, a later profile edit is kept.
func (r *Repo) Upsert(ctx context.Context, params UpsertParams) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url, display_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = now()
		RETURNING `+userColumns,
		params.ID,
		nilIfEmpty(params.Email),
		nilIfEmpty(params.FirstName),
		nilIfEmpty(params.LastName),
		nilIfEmpty(params.ProfileImageURL),
		DisplayNameFor(params.FirstName, params.LastName),
	))
}

func (r *Repo) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update-profile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanUser(r.db.QueryRow(ctx, `
		UPDATE users SET
			display_name = COALESCE($2, display_name),
			weight = COALESCE($3, weight),
			current_level = COALESCE($4, current_level),
			level_progress = COALESCE($5, level_progress),
			updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, req.DisplayName, req.Weight, req.CurrentLevel, req.LevelProgress,
	))
}

func (r *Repo) UpdateStreak(ctx context.Context, id string, streak int, lastWorkoutDate time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update-streak")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE users SET streak = $2, last_workout_date = $3, updated_at = now()
		WHERE id = $1
	`, id, streak, lastWorkoutDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) CountWorkouts(ctx context.Context, id string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.count-workouts")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM workouts WHERE user_id = $1`, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
