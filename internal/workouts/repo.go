package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const workoutColumns = `id, user_id, name, date, duration, total_volume, notes, status, completed_at, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanWorkout(row pgx.Row) (*Workout, error) {
	w := &Workout{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.Name, &w.Date, &w.Duration, &w.TotalVolume,
		&w.Notes, &w.Status, &w.CompletedAt, &w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *Repo) Add(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	added, err := scanWorkout(r.db.QueryRow(ctx, `
		INSERT INTO workouts (user_id, name, date, duration, total_volume, notes, status, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+workoutColumns,
		w.UserID, w.Name, w.Date, w.Duration, w.TotalVolume, w.Notes, w.Status, w.CompletedAt,
	))
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("id", id))

	w, err := scanWorkout(r.db.QueryRow(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *Repo) List(ctx context.Context, userID string, params ListParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("limit", params.Limit))

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date < $3)
		ORDER BY date DESC, id DESC
		LIMIT $4
	`, userID, params.From, params.To, params.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Workout, 0)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repo) Update(ctx context.Context, w *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("id", w.ID))

	tag, err := r.db.Exec(ctx, `
		UPDATE workouts
		SET name = $1, duration = $2, total_volume = $3, notes = $4, status = $5, completed_at = $6
		WHERE id = $7
	`, w.Name, w.Duration, w.TotalVolume, w.Notes, w.Status, w.CompletedAt, w.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) UpdateVolume(ctx context.Context, id int, totalVolume int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updatevolume")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `UPDATE workouts SET total_volume = $1 WHERE id = $2`, totalVolume, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// Delete removes the workout together with its exercises.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM exercises WHERE workout_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	e := &Exercise{}
	if err := row.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.Sets, &e.Order); err != nil {
		return nil, err
	}
	if e.Sets == nil {
		e.Sets = []Set{}
	}
	return e, nil
}

func (r *Repo) ListExercises(ctx context.Context, workoutIDs ...int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercises.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("workouts", len(workoutIDs)))

	rows, err := r.db.Query(ctx, `
		SELECT id, workout_id, name, sets, order_index
		FROM exercises
		WHERE workout_id = ANY($1)
		ORDER BY workout_id, order_index, id
	`, workoutIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repo) GetExercise(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercises.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	e, err := scanExercise(r.db.QueryRow(ctx, `
		SELECT id, workout_id, name, sets, order_index
		FROM exercises
		WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repo) AddExercise(ctx context.Context, e Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercises.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if e.Sets == nil {
		e.Sets = []Set{}
	}
	added, err := scanExercise(r.db.QueryRow(ctx, `
		INSERT INTO exercises (workout_id, name, sets, order_index)
		VALUES ($1, $2, $3, $4)
		RETURNING id, workout_id, name, sets, order_index
	`, e.WorkoutID, e.Name, e.Sets, e.Order))
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (r *Repo) UpdateExercise(ctx context.Context, e *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercises.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if e.Sets == nil {
		e.Sets = []Set{}
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE exercises
		SET name = $1, sets = $2, order_index = $3
		WHERE id = $4
	`, e.Name, e.Sets, e.Order, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) DeleteExercise(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercises.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}
