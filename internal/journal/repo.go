package journal

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `id, user_id, date, energy_level, mood, notes, photo_url, created_at`

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
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.EnergyLevel, &e.Mood, &e.Notes, &e.PhotoURL, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repo) queryEntries(ctx context.Context, sql string, args ...any) ([]Entry, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
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

func (r *Repo) List(ctx context.Context, userID string, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.queryEntries(ctx, `
		SELECT `+entryColumns+`
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
		LIMIT $2
	`, userID, limit)
}

// ListBetween returns the entries dated in [from, to).
func (r *Repo) ListBetween(ctx context.Context, userID string, from, to time.Time) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.list-between")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.queryEntries(ctx, `
		SELECT `+entryColumns+`
		FROM journal_entries
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC, id DESC
	`, userID, from, to)
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanEntry(r.db.QueryRow(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE id = $1`, id))
}

func (r *Repo) Add(ctx context.Context, e Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanEntry(r.db.QueryRow(ctx, `
		INSERT INTO journal_entries (user_id, date, energy_level, mood, notes, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+entryColumns,
		e.UserID, e.Date, e.EnergyLevel, e.Mood, e.Notes, e.PhotoURL,
	))
}

func (r *Repo) Update(ctx context.Context, e *Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE journal_entries
		SET date = $2, energy_level = $3, mood = $4, notes = $5, photo_url = $6
		WHERE id = $1
	`, e.ID, e.Date, e.EnergyLevel, e.Mood, e.Notes, e.PhotoURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}
