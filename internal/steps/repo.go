package steps

import (
	"context"
	"errors"

	"github.com/lufitapp/lufit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNoEntry = errors.New("no steps entry for that date")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Upsert stores the step count for one user and date, overwriting any
// previous value for that day.
func (r *Repo) Upsert(ctx context.Context, userID int, date string, stepCount int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.steps.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO daily_steps (user_id, date, steps)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE SET steps = EXCLUDED.steps`,
		userID, date, stepCount,
	)
	return err
}

// Get returns the steps entry for one date.
func (r *Repo) Get(ctx context.Context, userID int, date string) (_ *DailySteps, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.steps.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var entry DailySteps
	err = r.db.QueryRow(ctx, `
		SELECT user_id, date, steps, created_at
		FROM daily_steps
		WHERE user_id = $1 AND date = $2`,
		userID, date,
	).Scan(&entry.UserID, &entry.Date, &entry.Steps, &entry.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoEntry
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns all entries between from and to inclusive, oldest first.
func (r *Repo) List(ctx context.Context, userID int, from, to string) (_ []DailySteps, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.steps.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, date, steps, created_at
		FROM daily_steps
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []DailySteps
	for rows.Next() {
		var entry DailySteps
		if err := rows.Scan(&entry.UserID, &entry.Date, &entry.Steps, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
