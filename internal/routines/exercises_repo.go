package routines

import (
	"context"
	"errors"
	"fmt"

	"github.com/lufitapp/lufit/internal/telemetry/tracing"
	"github.com/lufitapp/lufit/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

func (r *Repo) ListExercises(ctx context.Context, userID, weekID, dayIndex int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekID))
	span.SetAttributes(attribute.Int("day.index", dayIndex))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			e.id, e.week_id, e.day_index, e.library_id, e.custom_name,
			COALESCE(el.name, e.custom_name, ''),
			e.series_target, e.reps_target, e.weight, e.unit, e.completed, e.sensation, e.order_index
		FROM exercise e
		LEFT JOIN exercise_library el ON e.library_id = el.id
		JOIN week w ON e.week_id = w.id
		WHERE e.week_id = $1 AND e.day_index = $2 AND w.user_id = $3
		ORDER BY e.order_index ASC, e.id ASC;`,
		weekID, dayIndex, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.WeekID, &e.DayIndex, &e.LibraryID, &e.CustomName, &e.Name,
			&e.SeriesTarget, &e.RepsTarget, &e.Weight, &e.Unit, &e.Completed, &e.Sensation, &e.OrderIndex,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// AddExercise appends an exercise at the end of a day. Exactly one of
// LibraryID and CustomName must be set.
func (r *Repo) AddExercise(ctx context.Context, userID int, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", exercise.WeekID))

	if (exercise.LibraryID == nil) == (exercise.CustomName == nil) {
		return nil, ErrExerciseIdentity
	}
	if exercise.Unit == "" {
		exercise.Unit = "kg"
	}

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if err := checkWeekOwner(ctx, tx, userID, exercise.WeekID); err != nil {
			return err
		}

		if err := tx.QueryRow(
			ctx,
			`SELECT COUNT(*) FROM exercise WHERE week_id = $1 AND day_index = $2;`,
			exercise.WeekID, exercise.DayIndex,
		).Scan(&exercise.OrderIndex); err != nil {
			return fmt.Errorf("count exercises: %w", err)
		}

		return tx.QueryRow(
			ctx,
			`INSERT INTO exercise
				(week_id, day_index, library_id, custom_name, series_target, reps_target, weight, unit, order_index)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, COALESCE((SELECT name FROM exercise_library WHERE id = $3), custom_name, '');`,
			exercise.WeekID, exercise.DayIndex, exercise.LibraryID, exercise.CustomName,
			exercise.SeriesTarget, exercise.RepsTarget, exercise.Weight, exercise.Unit, exercise.OrderIndex,
		).Scan(&exercise.ID, &exercise.Name)
	})
	if err != nil {
		// the identity CHECK constraint and the library FK are the DB-side
		// backstop for the in-Go identity validation above
		if pkg.IsCheckViolationError(err) || pkg.IsForeignKeyViolationError(err) {
			return nil, ErrExerciseIdentity
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))
	return &exercise, nil
}

// UpdateExerciseTargets changes only the plan (series/reps), never the
// identity of the exercise.
func (r *Repo) UpdateExerciseTargets(ctx context.Context, userID, exerciseID, seriesTarget int, repsTarget string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.updateTargets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET series_target = $1, reps_target = $2
			WHERE id = $3
			AND week_id IN (SELECT id FROM week WHERE user_id = $4);`,
		seriesTarget, repsTarget, exerciseID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) UpdateExerciseWeight(ctx context.Context, userID, exerciseID int, weight, unit string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.updateWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	if unit == "" {
		unit = "kg"
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET weight = $1, unit = $2
			WHERE id = $3
			AND week_id IN (SELECT id FROM week WHERE user_id = $4);`,
		weight, unit, exerciseID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// SetExerciseCompleted flips the completion flag. Sensation rides along
// when the exercise is marked done, and clears when it is unmarked.
func (r *Repo) SetExerciseCompleted(ctx context.Context, userID, exerciseID int, completed bool, sensation *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.setCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))
	span.SetAttributes(attribute.Bool("completed", completed))

	if !completed {
		sensation = nil
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET completed = $1, sensation = $2
			WHERE id = $3
			AND week_id IN (SELECT id FROM week WHERE user_id = $4);`,
		completed, sensation, exerciseID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) DeleteExercise(ctx context.Context, userID, exerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`DELETE FROM exercise_set WHERE exercise_id = $1;`,
			exerciseID,
		); err != nil {
			return fmt.Errorf("delete sets: %w", err)
		}

		tag, err := tx.Exec(
			ctx,
			`DELETE FROM exercise WHERE id = $1
				AND week_id IN (SELECT id FROM week WHERE user_id = $2);`,
			exerciseID, userID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrExerciseNotFound
		}
		return nil
	})
}

// ReorderExercises rewrites order_index for every exercise of a day by
// array position. The caller sends the complete new order, not a diff.
func (r *Repo) ReorderExercises(ctx context.Context, userID, weekID, dayIndex int, orderedIDs []int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.reorder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekID))
	span.SetAttributes(attribute.Int("day.index", dayIndex))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := checkWeekOwner(ctx, tx, userID, weekID); err != nil {
			return err
		}

		for position, id := range orderedIDs {
			tag, err := tx.Exec(
				ctx,
				`UPDATE exercise SET order_index = $1
					WHERE id = $2 AND week_id = $3 AND day_index = $4;`,
				position, id, weekID, dayIndex,
			)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return ErrExerciseNotFound
			}
		}
		return nil
	})
}

// UpsertSet stores one logged set for (exercise, set index). The index
// must fall within 1..series_target of the exercise.
func (r *Repo) UpsertSet(ctx context.Context, userID int, set ExerciseSet) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.upsertSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", set.ExerciseID))
	span.SetAttributes(attribute.Int("set.index", set.SetIndex))

	var seriesTarget int
	err = r.db.QueryRow(
		ctx,
		`SELECT e.series_target FROM exercise e
			JOIN week w ON e.week_id = w.id
			WHERE e.id = $1 AND w.user_id = $2;`,
		set.ExerciseID, userID,
	).Scan(&seriesTarget)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrExerciseNotFound
	}
	if err != nil {
		return err
	}
	if set.SetIndex > seriesTarget {
		return ErrSetIndexOutOfRange
	}

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO exercise_set (exercise_id, set_index, reps_done, weight_done, completed, sensation)
			SELECT $1, $2, $3, $4, $5, $6
			WHERE EXISTS (
				SELECT 1 FROM exercise e
				JOIN week w ON e.week_id = w.id
				WHERE e.id = $1 AND w.user_id = $7
			)
		ON CONFLICT (exercise_id, set_index) DO UPDATE SET
			reps_done = EXCLUDED.reps_done,
			weight_done = EXCLUDED.weight_done,
			completed = EXCLUDED.completed,
			sensation = EXCLUDED.sensation;`,
		set.ExerciseID, set.SetIndex, set.RepsDone, set.WeightDone, set.Completed, set.Sensation,
		userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) ListSets(ctx context.Context, userID, exerciseID int) (_ []ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT s.exercise_id, s.set_index, s.reps_done, s.weight_done, s.completed, s.sensation
			FROM exercise_set s
			JOIN exercise e ON s.exercise_id = e.id
			JOIN week w ON e.week_id = w.id
			WHERE s.exercise_id = $1 AND w.user_id = $2
			ORDER BY s.set_index ASC;`,
		exerciseID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := make([]ExerciseSet, 0)
	for rows.Next() {
		var s ExerciseSet
		if err := rows.Scan(&s.ExerciseID, &s.SetIndex, &s.RepsDone, &s.WeightDone, &s.Completed, &s.Sensation); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}
