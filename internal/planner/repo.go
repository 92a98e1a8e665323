package planner

import (
	"context"
	"fmt"

	"github.com/lufitapp/lufit/internal/routines"
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

// SaveGeneratedRoutine persists a built plan as a new routine with a single
// "Semana 1" week. The whole write runs in one transaction: the routine
// limit check, the routine row, day titles and exercises land together or
// not at all. The new routine becomes the active one.
func (r *Repo) SaveGeneratedRoutine(
	ctx context.Context,
	userID int,
	params Params,
	plan []PlannedDay,
) (_ *routines.Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.saveGeneratedRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("plan.days", len(plan)),
	)

	routine := routines.Routine{
		UserID:   userID,
		Name:     RoutineName(params.Goal, params.Days),
		IsActive: true,
		NumDays:  len(plan),
	}

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

	var count int
	if err = tx.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM routine WHERE user_id = $1;`,
		userID,
	).Scan(&count); err != nil {
		return nil, fmt.Errorf("count routines: %w", err)
	}
	if count >= routines.MaxRoutinesPerUser {
		err = routines.ErrRoutineLimitReached
		return nil, err
	}

	// the generated routine takes over as the active one
	if _, err = tx.Exec(
		ctx,
		`UPDATE routine SET is_active = FALSE WHERE user_id = $1;`,
		userID,
	); err != nil {
		return nil, fmt.Errorf("clear active routine: %w", err)
	}

	if err = tx.QueryRow(
		ctx,
		`INSERT INTO routine (user_id, name, is_active, num_days)
			VALUES ($1, $2, TRUE, $3)
		RETURNING id, created_at;`,
		routine.UserID, routine.Name, routine.NumDays,
	).Scan(&routine.ID, &routine.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert routine: %w", err)
	}

	var weekID int
	if err = tx.QueryRow(
		ctx,
		`INSERT INTO week (routine_id, user_id, name) VALUES ($1, $2, 'Semana 1') RETURNING id;`,
		routine.ID, userID,
	).Scan(&weekID); err != nil {
		return nil, fmt.Errorf("insert week: %w", err)
	}

	for _, day := range plan {
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO day_title (week_id, day_index, title, day_order)
				VALUES ($1, $2, $3, $4);`,
			weekID, day.DayIndex, day.Title, day.DayIndex-1,
		); err != nil {
			return nil, fmt.Errorf("insert day title %d: %w", day.DayIndex, err)
		}

		for _, exercise := range day.Exercises {
			if _, err = tx.Exec(
				ctx,
				`INSERT INTO exercise
					(week_id, day_index, library_id, series_target, reps_target, order_index)
				VALUES ($1, $2, $3, $4, $5, $6);`,
				weekID, day.DayIndex, exercise.LibraryID,
				exercise.SeriesTarget, exercise.RepsTarget, exercise.OrderIndex,
			); err != nil {
				return nil, fmt.Errorf("insert exercise for day %d: %w", day.DayIndex, err)
			}
		}
	}

	return &routine, nil
}
