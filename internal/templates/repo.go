package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const templateColumns = `t.id, t.user_id, t.name, t.description, t.difficulty, t.category, t.is_public, t.created_at, t.updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID string, filter ListFilter) (_ []ListItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT
			t.id, t.user_id, t.name, t.description, t.difficulty, t.category, t.is_public, t.created_at,
			t.user_id = $1 AS is_owner,
			(SELECT count(*) FROM workout_template_exercises e WHERE e.template_id = t.id) AS exercise_count
		FROM workout_templates t
		WHERE (t.user_id = $1 OR t.is_public)
		  AND ($2 = '' OR t.difficulty = $2)
		  AND ($3 = '' OR t.category = $3)
		ORDER BY is_owner DESC, t.created_at DESC
	`, userID, filter.Difficulty, filter.Category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ListItem, 0)
	for rows.Next() {
		var item ListItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Name, &item.Description, &item.Difficulty, &item.Category,
			&item.IsPublic, &item.CreatedAt, &item.IsOwner, &item.ExerciseCount,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", id))

	t := &Template{}
	err = r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM workout_templates t WHERE t.id = $1`, id).Scan(
		&t.ID, &t.UserID, &t.Name, &t.Description, &t.Difficulty, &t.Category, &t.IsPublic, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT
			e.id, e.exercise_id, e.order_index, e.default_sets, e.default_reps, e.default_rest_seconds, e.notes,
			l.id, l.name, l.slug, l.category, l.difficulty
		FROM workout_template_exercises e
		JOIN exercise_library l ON l.id = e.exercise_id
		WHERE e.template_id = $1
		ORDER BY e.order_index, e.id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t.Exercises = make([]TemplateExercise, 0)
	for rows.Next() {
		var e TemplateExercise
		var summary ExerciseSummary
		if err := rows.Scan(
			&e.ID, &e.ExerciseID, &e.OrderIndex, &e.DefaultSets, &e.DefaultReps, &e.DefaultRestSeconds, &e.Notes,
			&summary.ID, &summary.Name, &summary.Slug, &summary.Category, &summary.Difficulty,
		); err != nil {
			return nil, err
		}
		e.Exercise = &summary
		t.Exercises = append(t.Exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

func insertExercises(ctx context.Context, tx pgx.Tx, templateID string, exercises []TemplateExercise) error {
	for _, e := range exercises {
		if _, err := tx.Exec(ctx, `
			INSERT INTO workout_template_exercises
				(template_id, exercise_id, order_index, default_sets, default_reps, default_rest_seconds, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, templateID, e.ExerciseID, e.OrderIndex, e.DefaultSets, e.DefaultReps, e.DefaultRestSeconds, e.Notes); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return fmt.Errorf("%w: %s", ErrInvalidExerciseReference, e.ExerciseID)
			}
			return err
		}
	}
	return nil
}

// Create inserts the template and its exercises in one transaction.
func (r *Repo) Create(ctx context.Context, t *Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("%w: rollback: %s", err, rollbackErr)
			}
			return
		}
		err = tx.Commit(ctx)
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO workout_templates (id, user_id, name, description, difficulty, category, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, t.ID, t.UserID, t.Name, t.Description, t.Difficulty, t.Category, t.IsPublic).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return err
	}

	return insertExercises(ctx, tx, t.ID, t.Exercises)
}

// Update replaces the template fields and its whole exercise list.
func (r *Repo) Update(ctx context.Context, t *Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("%w: rollback: %s", err, rollbackErr)
			}
			return
		}
		err = tx.Commit(ctx)
	}()

	err = tx.QueryRow(ctx, `
		UPDATE workout_templates
		SET name = $2, description = $3, difficulty = $4, category = $5, is_public = $6, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, t.ID, t.Name, t.Description, t.Difficulty, t.Category, t.IsPublic).Scan(&t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrTemplateNotFound
	}
	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM workout_template_exercises WHERE template_id = $1`, t.ID); err != nil {
		return err
	}

	return insertExercises(ctx, tx, t.ID, t.Exercises)
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// ListOwned returns up to limit templates owned by the user, newest first, with exercises.
func (r *Repo) ListOwned(ctx context.Context, userID string, limit int) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list-owned")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT t.id FROM workout_templates t
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	list := make([]Template, 0, len(ids))
	for _, id := range ids {
		t, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		list = append(list, *t)
	}
	return list, nil
}
