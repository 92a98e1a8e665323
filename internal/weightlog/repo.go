package weightlog

import (
	"context"
	"fmt"

	"github.com/lufitapp/lufit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Add appends a measurement and mirrors the new weight into the user
// profile, both in one transaction. A user without a profile just gets
// the log entry.
func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weightlog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", entry.UserID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
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

	if err = tx.QueryRow(
		ctx,
		`INSERT INTO weight_log (user_id, weight, date, unit)
			VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;`,
		entry.UserID, entry.Weight, entry.Date, entry.Unit,
	).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert weight log: %w", err)
	}

	if _, err = tx.Exec(
		ctx,
		`UPDATE user_profile SET weight = $1 WHERE user_id = $2;`,
		entry.Weight, entry.UserID,
	); err != nil {
		return nil, fmt.Errorf("mirror weight into profile: %w", err)
	}

	return &entry, nil
}

// List returns all measurements for a user, newest first. Unknown stored
// unit values are normalized to kg on the way out.
func (r *Repo) List(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weightlog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, weight, date, unit, created_at
		FROM weight_log
		WHERE user_id = $1
		ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Weight,
			&entry.Date, &entry.Unit, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entry.Unit = NormalizeUnit(entry.Unit)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
