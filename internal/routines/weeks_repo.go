package routines

import (
	"context"
	"errors"
	"fmt"

	"github.com/lufitapp/lufit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

func (r *Repo) ListWeeks(ctx context.Context, userID, routineID int) (_ []Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weeks.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, routine_id, user_id, name FROM week
			WHERE routine_id = $1 AND user_id = $2
			ORDER BY id ASC;`,
		routineID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weeks := make([]Week, 0)
	for rows.Next() {
		var week Week
		if err := rows.Scan(&week.ID, &week.RoutineID, &week.UserID, &week.Name); err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return weeks, nil
}

// CreateWeek appends a week to a routine. When the routine already has
// weeks, the newest one is cloned (titles and exercise targets, with
// completion reset); an empty routine gets plain "Día N" days instead.
func (r *Repo) CreateWeek(ctx context.Context, userID, routineID int, name string) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weeks.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	week := Week{
		RoutineID: routineID,
		UserID:    userID,
		Name:      name,
	}

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		var numDays int
		err := tx.QueryRow(
			ctx,
			`SELECT num_days FROM routine WHERE id = $1 AND user_id = $2;`,
			routineID, userID,
		).Scan(&numDays)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRoutineNotFound
		}
		if err != nil {
			return err
		}

		var lastWeekID *int
		if err := tx.QueryRow(
			ctx,
			`SELECT MAX(id) FROM week WHERE routine_id = $1;`,
			routineID,
		).Scan(&lastWeekID); err != nil {
			return fmt.Errorf("find last week: %w", err)
		}

		if err := tx.QueryRow(
			ctx,
			`INSERT INTO week (routine_id, user_id, name) VALUES ($1, $2, $3) RETURNING id;`,
			routineID, userID, name,
		).Scan(&week.ID); err != nil {
			return fmt.Errorf("insert week: %w", err)
		}

		if lastWeekID == nil {
			return seedEmptyWeek(ctx, tx, week.ID, numDays)
		}
		return copyWeekContents(ctx, tx, *lastWeekID, week.ID)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("week.id", week.ID))
	return &week, nil
}

func (r *Repo) GetWeek(ctx context.Context, userID, weekID int) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weeks.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekID))

	var week Week
	err = r.db.QueryRow(
		ctx,
		`SELECT id, routine_id, user_id, name FROM week WHERE id = $1 AND user_id = $2;`,
		weekID, userID,
	).Scan(&week.ID, &week.RoutineID, &week.UserID, &week.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWeekNotFound
	}
	if err != nil {
		return nil, err
	}
	return &week, nil
}

func (r *Repo) ListDayTitles(ctx context.Context, userID, weekID int) (_ []DayTitle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekID))

	rows, err := r.db.Query(
		ctx,
		`SELECT dt.week_id, dt.day_index, dt.title, dt.day_order
			FROM day_title dt
			JOIN week w ON dt.week_id = w.id
			WHERE dt.week_id = $1 AND w.user_id = $2
			ORDER BY dt.day_order ASC, dt.day_index ASC;`,
		weekID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make([]DayTitle, 0)
	for rows.Next() {
		var dt DayTitle
		if err := rows.Scan(&dt.WeekID, &dt.DayIndex, &dt.Title, &dt.DayOrder); err != nil {
			return nil, err
		}
		titles = append(titles, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return titles, nil
}

// AddDay appends the next day (max index + 1, capped at MaxDaysPerWeek)
// titled "Día N".
func (r *Repo) AddDay(ctx context.Context, userID, weekID int) (_ *DayTitle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekID))

	var added DayTitle
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if err := checkWeekOwner(ctx, tx, userID, weekID); err != nil {
			return err
		}

		var maxIndex, count int
		if err := tx.QueryRow(
			ctx,
			`SELECT COALESCE(MAX(day_index), 0), COUNT(*) FROM day_title WHERE week_id = $1;`,
			weekID,
		).Scan(&maxIndex, &count); err != nil {
			return fmt.Errorf("max day index: %w", err)
		}

		newIndex := maxIndex + 1
		if newIndex > MaxDaysPerWeek {
			return fmt.Errorf("week already has %d days", MaxDaysPerWeek)
		}

		added = DayTitle{
			WeekID:   weekID,
			DayIndex: newIndex,
			Title:    fmt.Sprintf("Día %d", newIndex),
			DayOrder: count,
		}
		_, err := tx.Exec(
			ctx,
			`INSERT INTO day_title (week_id, day_index, title, day_order) VALUES ($1, $2, $3, $4);`,
			added.WeekID, added.DayIndex, added.Title, added.DayOrder,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (r *Repo) RenameDay(ctx context.Context, userID, weekID, dayIndex int, title string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekID))
	span.SetAttributes(attribute.Int("day.index", dayIndex))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE day_title SET title = $1
			WHERE week_id = $2 AND day_index = $3
			AND week_id IN (SELECT id FROM week WHERE user_id = $4);`,
		title, weekID, dayIndex, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDayNotFound
	}
	return nil
}

// DeleteDay removes a day title together with its exercises and their
// sets. A week keeps at least one day.
func (r *Repo) DeleteDay(ctx context.Context, userID, weekID, dayIndex int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekID))
	span.SetAttributes(attribute.Int("day.index", dayIndex))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := checkWeekOwner(ctx, tx, userID, weekID); err != nil {
			return err
		}

		var count int
		if err := tx.QueryRow(
			ctx,
			`SELECT COUNT(*) FROM day_title WHERE week_id = $1;`,
			weekID,
		).Scan(&count); err != nil {
			return fmt.Errorf("count days: %w", err)
		}
		if count <= 1 {
			return ErrLastDay
		}

		if _, err := tx.Exec(
			ctx,
			`DELETE FROM exercise_set WHERE exercise_id IN (
				SELECT id FROM exercise WHERE week_id = $1 AND day_index = $2
			);`,
			weekID, dayIndex,
		); err != nil {
			return fmt.Errorf("delete sets: %w", err)
		}
		if _, err := tx.Exec(
			ctx,
			`DELETE FROM exercise WHERE week_id = $1 AND day_index = $2;`,
			weekID, dayIndex,
		); err != nil {
			return fmt.Errorf("delete exercises: %w", err)
		}

		tag, err := tx.Exec(
			ctx,
			`DELETE FROM day_title WHERE week_id = $1 AND day_index = $2;`,
			weekID, dayIndex,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrDayNotFound
		}
		return nil
	})
}

// ReorderDays rewrites day_order for every given day by array position.
// The full list of the week's day indexes is expected, not a diff.
func (r *Repo) ReorderDays(ctx context.Context, userID, weekID int, orderedDayIndexes []int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.reorder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekID))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := checkWeekOwner(ctx, tx, userID, weekID); err != nil {
			return err
		}

		for position, dayIndex := range orderedDayIndexes {
			tag, err := tx.Exec(
				ctx,
				`UPDATE day_title SET day_order = $1 WHERE week_id = $2 AND day_index = $3;`,
				position, weekID, dayIndex,
			)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return ErrDayNotFound
			}
		}
		return nil
	})
}

func checkWeekOwner(ctx context.Context, tx pgx.Tx, userID, weekID int) error {
	var ok bool
	if err := tx.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM week WHERE id = $1 AND user_id = $2);`,
		weekID, userID,
	).Scan(&ok); err != nil {
		return err
	}
	if !ok {
		return ErrWeekNotFound
	}
	return nil
}
