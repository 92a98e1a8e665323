package routines

import (
	"context"
	"errors"
	"fmt"

	"github.com/lufitapp/lufit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrRoutineNotFound     = errors.New("routine not found")
	ErrRoutineLimitReached = errors.New("routine limit reached")
	ErrLastRoutine         = errors.New("cannot delete the only routine")
	ErrWeekNotFound        = errors.New("week not found")
	ErrDayNotFound         = errors.New("day not found")
	ErrLastDay             = errors.New("cannot delete the only day")
	ErrExerciseNotFound    = errors.New("exercise not found")
	// ErrSetIndexOutOfRange - logged sets live at indexes 1..series_target.
	ErrSetIndexOutOfRange = errors.New("set index exceeds series target")
	// ErrExerciseIdentity - an exercise needs a library reference or a
	// custom name, exactly one of them.
	ErrExerciseIdentity = errors.New("exercise needs either library id or custom name")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// inTx runs fn inside a transaction, committing on success and rolling
// back on error. Multi-statement writes (cascade deletes, copies, bulk
// order rewrites) go through here so they land atomically.
func (r *Repo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
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
	return fn(tx)
}

type CreateRoutineParams struct {
	UserID  int
	Name    string
	NumDays int
	// SeedDefault marks the starter routine: it becomes active, gets the
	// pre-filled template week, and bypasses the routine limit.
	SeedDefault bool
}

func (r *Repo) CreateRoutine(ctx context.Context, params CreateRoutineParams) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))

	routine := Routine{
		UserID:   params.UserID,
		Name:     params.Name,
		IsActive: params.SeedDefault,
		NumDays:  params.NumDays,
	}

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if !params.SeedDefault {
			var count int
			if err := tx.QueryRow(
				ctx,
				`SELECT COUNT(*) FROM routine WHERE user_id = $1;`,
				params.UserID,
			).Scan(&count); err != nil {
				return fmt.Errorf("count routines: %w", err)
			}
			if count >= MaxRoutinesPerUser {
				return ErrRoutineLimitReached
			}
		}

		if err := tx.QueryRow(
			ctx,
			`INSERT INTO routine (user_id, name, is_active, num_days)
				VALUES ($1, $2, $3, $4)
			RETURNING id, created_at;`,
			routine.UserID, routine.Name, routine.IsActive, routine.NumDays,
		).Scan(&routine.ID, &routine.CreatedAt); err != nil {
			return fmt.Errorf("insert routine: %w", err)
		}

		var weekID int
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO week (routine_id, user_id, name) VALUES ($1, $2, 'Semana 1') RETURNING id;`,
			routine.ID, routine.UserID,
		).Scan(&weekID); err != nil {
			return fmt.Errorf("insert first week: %w", err)
		}

		if params.SeedDefault {
			return seedTemplateWeek(ctx, tx, weekID)
		}
		return seedEmptyWeek(ctx, tx, weekID, params.NumDays)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("routine.id", routine.ID))
	return &routine, nil
}

func seedTemplateWeek(ctx context.Context, tx pgx.Tx, weekID int) error {
	for i, day := range DefaultRoutineTemplate {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO day_title (week_id, day_index, title, day_order) VALUES ($1, $2, $3, $4);`,
			weekID, day.DayIndex, day.Title, i,
		); err != nil {
			return fmt.Errorf("insert day title: %w", err)
		}
		for order, ex := range day.Exs {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO exercise
					(week_id, day_index, custom_name, series_target, reps_target, order_index)
					VALUES ($1, $2, $3, $4, $5, $6);`,
				weekID, day.DayIndex, ex.Name, ex.SeriesTarget, ex.RepsTarget, order,
			); err != nil {
				return fmt.Errorf("insert template exercise: %w", err)
			}
		}
	}
	return nil
}

func seedEmptyWeek(ctx context.Context, tx pgx.Tx, weekID, numDays int) error {
	for i := 1; i <= numDays; i++ {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO day_title (week_id, day_index, title, day_order) VALUES ($1, $2, $3, $4);`,
			weekID, i, fmt.Sprintf("Día %d", i), i-1,
		); err != nil {
			return fmt.Errorf("insert day title: %w", err)
		}
	}
	return nil
}

func (r *Repo) ListRoutines(ctx context.Context, userID int) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, is_active, num_days, created_at
			FROM routine WHERE user_id = $1
			ORDER BY is_active DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routines := make([]Routine, 0)
	for rows.Next() {
		var routine Routine
		if err := rows.Scan(
			&routine.ID, &routine.UserID, &routine.Name,
			&routine.IsActive, &routine.NumDays, &routine.CreatedAt,
		); err != nil {
			return nil, err
		}
		routines = append(routines, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return routines, nil
}

func (r *Repo) GetRoutine(ctx context.Context, userID, routineID int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	var routine Routine
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, name, is_active, num_days, created_at
			FROM routine WHERE id = $1 AND user_id = $2;`,
		routineID, userID,
	).Scan(
		&routine.ID, &routine.UserID, &routine.Name,
		&routine.IsActive, &routine.NumDays, &routine.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRoutineNotFound
	}
	if err != nil {
		return nil, err
	}
	return &routine, nil
}

// RenameRoutine changes a routine's name, nothing else.
func (r *Repo) RenameRoutine(ctx context.Context, userID, routineID int, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE routine SET name = $1 WHERE id = $2 AND user_id = $3;`,
		name, routineID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

func (r *Repo) SetActiveRoutine(ctx context.Context, userID, routineID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.setActive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`UPDATE routine SET is_active = FALSE WHERE user_id = $1;`,
			userID,
		); err != nil {
			return err
		}
		tag, err := tx.Exec(
			ctx,
			`UPDATE routine SET is_active = TRUE WHERE id = $1 AND user_id = $2;`,
			routineID, userID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrRoutineNotFound
		}
		return nil
	})
}

// DeleteRoutine removes a routine and everything under it: sets, then
// exercises, then day titles, then weeks, then the routine itself, all
// in one transaction. The last remaining routine of a user cannot go.
func (r *Repo) DeleteRoutine(ctx context.Context, userID, routineID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(
			ctx,
			`SELECT COUNT(*) FROM routine WHERE user_id = $1;`,
			userID,
		).Scan(&count); err != nil {
			return fmt.Errorf("count routines: %w", err)
		}
		if count <= 1 {
			return ErrLastRoutine
		}

		if _, err := tx.Exec(
			ctx,
			`DELETE FROM exercise_set WHERE exercise_id IN (
				SELECT e.id FROM exercise e
				JOIN week w ON e.week_id = w.id
				WHERE w.routine_id = $1 AND w.user_id = $2
			);`,
			routineID, userID,
		); err != nil {
			return fmt.Errorf("delete sets: %w", err)
		}
		if _, err := tx.Exec(
			ctx,
			`DELETE FROM exercise WHERE week_id IN (
				SELECT id FROM week WHERE routine_id = $1 AND user_id = $2
			);`,
			routineID, userID,
		); err != nil {
			return fmt.Errorf("delete exercises: %w", err)
		}
		if _, err := tx.Exec(
			ctx,
			`DELETE FROM day_title WHERE week_id IN (
				SELECT id FROM week WHERE routine_id = $1 AND user_id = $2
			);`,
			routineID, userID,
		); err != nil {
			return fmt.Errorf("delete day titles: %w", err)
		}
		if _, err := tx.Exec(
			ctx,
			`DELETE FROM week WHERE routine_id = $1 AND user_id = $2;`,
			routineID, userID,
		); err != nil {
			return fmt.Errorf("delete weeks: %w", err)
		}

		tag, err := tx.Exec(
			ctx,
			`DELETE FROM routine WHERE id = $1 AND user_id = $2;`,
			routineID, userID,
		)
		if err != nil {
			return fmt.Errorf("delete routine: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrRoutineNotFound
		}
		return nil
	})
}

// DuplicateRoutine creates an inactive copy of a routine. Every week of
// the source is cloned, name included: day titles and exercise targets
// carry over, completion flags reset, and logged sets stay behind.
func (r *Repo) DuplicateRoutine(ctx context.Context, userID, routineID int, newName string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.duplicate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	var copied Routine
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(
			ctx,
			`SELECT COUNT(*) FROM routine WHERE user_id = $1;`,
			userID,
		).Scan(&count); err != nil {
			return fmt.Errorf("count routines: %w", err)
		}
		if count >= MaxRoutinesPerUser {
			return ErrRoutineLimitReached
		}

		var source Routine
		err := tx.QueryRow(
			ctx,
			`SELECT id, name, num_days FROM routine WHERE id = $1 AND user_id = $2;`,
			routineID, userID,
		).Scan(&source.ID, &source.Name, &source.NumDays)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRoutineNotFound
		}
		if err != nil {
			return err
		}

		copied = Routine{
			UserID:  userID,
			Name:    newName,
			NumDays: source.NumDays,
		}
		if copied.Name == "" {
			copied.Name = source.Name + " (copia)"
		}
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO routine (user_id, name, is_active, num_days)
				VALUES ($1, $2, FALSE, $3)
			RETURNING id, created_at;`,
			copied.UserID, copied.Name, copied.NumDays,
		).Scan(&copied.ID, &copied.CreatedAt); err != nil {
			return fmt.Errorf("insert routine copy: %w", err)
		}

		rows, err := tx.Query(
			ctx,
			`SELECT id, name FROM week WHERE routine_id = $1 ORDER BY id;`,
			routineID,
		)
		if err != nil {
			return fmt.Errorf("list source weeks: %w", err)
		}
		type sourceWeek struct {
			id   int
			name string
		}
		var sourceWeeks []sourceWeek
		for rows.Next() {
			var week sourceWeek
			if err := rows.Scan(&week.id, &week.name); err != nil {
				rows.Close()
				return fmt.Errorf("scan source week: %w", err)
			}
			sourceWeeks = append(sourceWeeks, week)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("list source weeks: %w", err)
		}

		for _, week := range sourceWeeks {
			var newWeekID int
			if err := tx.QueryRow(
				ctx,
				`INSERT INTO week (routine_id, user_id, name) VALUES ($1, $2, $3) RETURNING id;`,
				copied.ID, userID, week.name,
			).Scan(&newWeekID); err != nil {
				return fmt.Errorf("insert week copy: %w", err)
			}
			if err := copyWeekContents(ctx, tx, week.id, newWeekID); err != nil {
				return err
			}
		}

		if len(sourceWeeks) == 0 {
			var newWeekID int
			if err := tx.QueryRow(
				ctx,
				`INSERT INTO week (routine_id, user_id, name) VALUES ($1, $2, 'Semana 1') RETURNING id;`,
				copied.ID, userID,
			).Scan(&newWeekID); err != nil {
				return fmt.Errorf("insert week copy: %w", err)
			}
			return seedEmptyWeek(ctx, tx, newWeekID, copied.NumDays)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("routine.copy.id", copied.ID))
	return &copied, nil
}

// copyWeekContents clones day titles and exercise targets from one week
// into another. Completion flags reset, logged sets are not copied.
func copyWeekContents(ctx context.Context, tx pgx.Tx, fromWeekID, toWeekID int) error {
	if _, err := tx.Exec(
		ctx,
		`INSERT INTO day_title (week_id, day_index, title, day_order)
			SELECT $1, day_index, title, day_order FROM day_title WHERE week_id = $2;`,
		toWeekID, fromWeekID,
	); err != nil {
		return fmt.Errorf("copy day titles: %w", err)
	}
	if _, err := tx.Exec(
		ctx,
		`INSERT INTO exercise
			(week_id, day_index, library_id, custom_name, series_target, reps_target, weight, unit, order_index, completed)
			SELECT $1, day_index, library_id, custom_name, series_target, reps_target, weight, unit, order_index, FALSE
			FROM exercise WHERE week_id = $2;`,
		toWeekID, fromWeekID,
	); err != nil {
		return fmt.Errorf("copy exercises: %w", err)
	}
	return nil
}
