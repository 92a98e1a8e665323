package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/lufitapp/lufit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEntryNotFound = errors.New("library entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Seed loads the fixed catalog. Entries already present are left untouched,
// so running it on every startup is safe.
func (r *Repo) Seed(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for _, entry := range seedEntries {
		_, err = r.db.Exec(ctx, `
			INSERT INTO exercise_library (name, target_muscle, equipment, difficulty_level)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING`,
			entry.Name, entry.TargetMuscle, entry.Equipment, entry.DifficultyLevel,
		)
		if err != nil {
			return fmt.Errorf("seed entry %q: %w", entry.Name, err)
		}
	}
	return nil
}

// Search finds catalog entries whose name contains the given substring,
// case-insensitive.
func (r *Repo) Search(ctx context.Context, query string, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, target_muscle, equipment, difficulty_level
		FROM exercise_library
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2`,
		query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return rows2entries(rows)
}

// Get returns a single catalog entry.
func (r *Repo) Get(ctx context.Context, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var entry Entry
	err = r.db.QueryRow(ctx, `
		SELECT id, name, target_muscle, equipment, difficulty_level
		FROM exercise_library
		WHERE id = $1`,
		id,
	).Scan(&entry.ID, &entry.Name, &entry.TargetMuscle, &entry.Equipment, &entry.DifficultyLevel)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByMuscle picks up to limit entries for a muscle at the given
// difficulty. When the strict match comes up short, the remainder is
// filled from Intermedio entries, never repeating an id.
func (r *Repo) ListByMuscle(ctx context.Context, muscle, difficulty string, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.listByMuscle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := r.listByMuscleAndDifficulty(ctx, muscle, difficulty, limit, nil)
	if err != nil {
		return nil, err
	}

	if len(entries) < limit && difficulty != DifficultyIntermediate {
		taken := make([]int, 0, len(entries))
		for _, entry := range entries {
			taken = append(taken, entry.ID)
		}
		fallback, err := r.listByMuscleAndDifficulty(ctx, muscle, DifficultyIntermediate, limit-len(entries), taken)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fallback...)
	}

	return entries, nil
}

func (r *Repo) listByMuscleAndDifficulty(
	ctx context.Context,
	muscle, difficulty string,
	limit int,
	excludeIDs []int,
) ([]Entry, error) {
	if excludeIDs == nil {
		// nil would encode to a NULL array and filter out every row
		excludeIDs = []int{}
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, name, target_muscle, equipment, difficulty_level
		FROM exercise_library
		WHERE target_muscle = $1 AND difficulty_level = $2 AND id != ALL($3)
		ORDER BY RANDOM()
		LIMIT $4`,
		muscle, difficulty, excludeIDs, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return rows2entries(rows)
}

func rows2entries(rows pgx.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.ID, &entry.Name, &entry.TargetMuscle,
			&entry.Equipment, &entry.DifficultyLevel,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
