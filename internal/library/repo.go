package library

import (
	"context"
	"errors"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const entryColumns = `id, name, slug, category, difficulty, short_description, long_description,
	muscles_primary, muscles_secondary, equipment, progressions, regressions, tips,
	demo_image_url, demo_gif_url`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanEntry(row pgx.Row) (*Entry, error) {
	e := &Entry{}
	err := row.Scan(
		&e.ID, &e.Name, &e.Slug, &e.Category, &e.Difficulty, &e.ShortDescription, &e.LongDescription,
		&e.MusclesPrimary, &e.MusclesSecondary, &e.Equipment, &e.Progressions, &e.Regressions, &e.Tips,
		&e.DemoImageURL, &e.DemoGifURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func collectEntries(rows pgx.Rows) ([]Entry, error) {
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("category", params.Category),
		attribute.String("difficulty", params.Difficulty),
	)

	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM exercise_library
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR category = $2)
		  AND ($3 = '' OR difficulty = $3)
		ORDER BY name
		LIMIT $4 OFFSET $5
	`, params.Query, params.Category, params.Difficulty, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.get-by-slug")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("slug", slug))

	return scanEntry(r.db.QueryRow(ctx, `SELECT `+entryColumns+` FROM exercise_library WHERE slug = $1`, slug))
}

// FindByName matches the name case-insensitively.
func (r *Repo) FindByName(ctx context.Context, name string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.find-by-name")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanEntry(r.db.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM exercise_library
		WHERE lower(name) = lower($1)
		LIMIT 1
	`, name))
}

func (r *Repo) GetByIDs(ctx context.Context, ids []string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.get-by-ids")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("ids", len(ids)))

	if len(ids) == 0 {
		return []Entry{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM exercise_library
		WHERE id = ANY($1::uuid[])
	`, ids)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

// Upsert inserts the entry or refreshes it by slug, returning the stored id.
func (r *Repo) Upsert(ctx context.Context, e Entry) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var id string
	err = r.db.QueryRow(ctx, `
		INSERT INTO exercise_library (
			id, name, slug, category, difficulty, short_description, long_description,
			muscles_primary, muscles_secondary, equipment, progressions, regressions, tips,
			demo_image_url, demo_gif_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			difficulty = EXCLUDED.difficulty,
			short_description = EXCLUDED.short_description,
			long_description = EXCLUDED.long_description,
			muscles_primary = EXCLUDED.muscles_primary,
			muscles_secondary = EXCLUDED.muscles_secondary,
			equipment = EXCLUDED.equipment,
			progressions = EXCLUDED.progressions,
			regressions = EXCLUDED.regressions,
			tips = EXCLUDED.tips,
			demo_image_url = EXCLUDED.demo_image_url,
			demo_gif_url = EXCLUDED.demo_gif_url
		RETURNING id
	`,
		e.ID, e.Name, e.Slug, e.Category, e.Difficulty, e.ShortDescription, e.LongDescription,
		e.MusclesPrimary, e.MusclesSecondary, e.Equipment, e.Progressions, e.Regressions, e.Tips,
		e.DemoImageURL, e.DemoGifURL,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}
