package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lufitapp/lufit/internal/routines"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestStarterRoutineSeededAtRegister() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, userID := registerUser(ctx, t, "starter-user", "s3cret-pass")

	resp := doAuthed(ctx, t, token, "GET", "/routines", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	userRoutines := decodeBody[[]routines.Routine](t, resp)

	require.Len(t, userRoutines, 1)
	starter := userRoutines[0]
	assert.Equal(t, "Mi Rutina Principal", starter.Name)
	assert.Equal(t, userID, starter.UserID)
	assert.True(t, starter.IsActive)
	assert.Equal(t, 4, starter.NumDays)

	// the starter routine comes with a pre-filled template week
	weeksResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/routines/%d/weeks", starter.ID), nil)
	require.Equal(t, http.StatusOK, weeksResp.StatusCode)
	weeks := decodeBody[[]routines.Week](t, weeksResp)
	require.Len(t, weeks, 1)
	assert.Equal(t, "Semana 1", weeks[0].Name)

	daysResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days", weeks[0].ID), nil)
	require.Equal(t, http.StatusOK, daysResp.StatusCode)
	days := decodeBody[[]routines.DayTitle](t, daysResp)
	require.Len(t, days, 4)

	exercisesResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days/1/exercises", weeks[0].ID), nil)
	require.Equal(t, http.StatusOK, exercisesResp.StatusCode)
	exercises := decodeBody[[]routines.Exercise](t, exercisesResp)
	assert.NotEmpty(t, exercises)
}

func (s *IntegrationTestSuite) TestRoutineLimit() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := registerUser(ctx, t, "limit-user", "s3cret-pass")

	// the starter routine takes one slot, two more fit
	for i := 0; i < routines.MaxRoutinesPerUser-1; i++ {
		resp := doAuthed(ctx, t, token, "POST", "/routines", map[string]any{
			"name":    fmt.Sprintf("Rutina %d", i+1),
			"numDays": 3,
		})
		require.NoError(t, resp.Body.Close())
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doAuthed(ctx, t, token, "POST", "/routines", map[string]any{
		"name":    "Una Más",
		"numDays": 3,
	})
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestRoutineCascadeDelete() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := registerUser(ctx, t, "cascade-user", "s3cret-pass")

	createResp := doAuthed(ctx, t, token, "POST", "/routines", map[string]any{
		"name":    "Para Borrar",
		"numDays": 2,
	})
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	created := decodeBody[routines.Routine](t, createResp)

	deleteResp := doAuthed(ctx, t, token, "DELETE", fmt.Sprintf("/routines/%d", created.ID), nil)
	require.NoError(t, deleteResp.Body.Close())
	require.Equal(t, http.StatusOK, deleteResp.StatusCode)

	// the routine and its weeks are gone
	getResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/routines/%d", created.ID), nil)
	require.NoError(t, getResp.Body.Close())
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)

	var orphanWeeks int
	require.NoError(t, s.DB.QueryRow(
		"SELECT COUNT(*) FROM week WHERE routine_id = $1", created.ID,
	).Scan(&orphanWeeks))
	assert.Zero(t, orphanWeeks)
}

func (s *IntegrationTestSuite) TestExerciseFlow() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := registerUser(ctx, t, "exercise-user", "s3cret-pass")

	routinesResp := doAuthed(ctx, t, token, "GET", "/routines", nil)
	require.Equal(t, http.StatusOK, routinesResp.StatusCode)
	userRoutines := decodeBody[[]routines.Routine](t, routinesResp)
	require.Len(t, userRoutines, 1)

	weeksResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/routines/%d/weeks", userRoutines[0].ID), nil)
	require.Equal(t, http.StatusOK, weeksResp.StatusCode)
	weeks := decodeBody[[]routines.Week](t, weeksResp)
	require.Len(t, weeks, 1)
	weekID := weeks[0].ID

	// add a custom exercise to day 1
	addResp := doAuthed(ctx, t, token, "POST", fmt.Sprintf("/weeks/%d/days/1/exercises", weekID), map[string]any{
		"customName":   "Puente de glúteo con banda",
		"seriesTarget": 3,
		"repsTarget":   "15",
	})
	require.Equal(t, http.StatusCreated, addResp.StatusCode)
	added := decodeBody[routines.Exercise](t, addResp)
	assert.Equal(t, "Puente de glúteo con banda", added.Name)

	// log a set for it
	setResp := doAuthed(ctx, t, token, "PUT", fmt.Sprintf("/exercises/%d/sets/1", added.ID), map[string]any{
		"repsDone":   15,
		"weightDone": 20,
		"completed":  true,
	})
	require.NoError(t, setResp.Body.Close())
	require.Equal(t, http.StatusOK, setResp.StatusCode)

	setsResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/exercises/%d/sets", added.ID), nil)
	require.Equal(t, http.StatusOK, setsResp.StatusCode)
	sets := decodeBody[[]routines.ExerciseSet](t, setsResp)
	require.Len(t, sets, 1)
	assert.Equal(t, 15, sets[0].RepsDone)
	assert.InDelta(t, 20.0, sets[0].WeightDone, 0.001)

	// mark the exercise done
	completedResp := doAuthed(ctx, t, token, "PUT", fmt.Sprintf("/exercises/%d/completed", added.ID), map[string]any{
		"completed": true,
		"sensation": "optimal",
	})
	require.NoError(t, completedResp.Body.Close())
	require.Equal(t, http.StatusOK, completedResp.StatusCode)
}

func (s *IntegrationTestSuite) TestCopyWeek() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := registerUser(ctx, t, "copy-week-user", "s3cret-pass")

	routinesResp := doAuthed(ctx, t, token, "GET", "/routines", nil)
	require.Equal(t, http.StatusOK, routinesResp.StatusCode)
	userRoutines := decodeBody[[]routines.Routine](t, routinesResp)
	require.Len(t, userRoutines, 1)
	routineID := userRoutines[0].ID

	weeksResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/routines/%d/weeks", routineID), nil)
	require.Equal(t, http.StatusOK, weeksResp.StatusCode)
	weeks := decodeBody[[]routines.Week](t, weeksResp)
	require.Len(t, weeks, 1)
	firstWeekID := weeks[0].ID

	// complete an exercise and log a set in week 1
	exercisesResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days/1/exercises", firstWeekID), nil)
	require.Equal(t, http.StatusOK, exercisesResp.StatusCode)
	firstWeekExercises := decodeBody[[]routines.Exercise](t, exercisesResp)
	require.NotEmpty(t, firstWeekExercises)

	completedResp := doAuthed(ctx, t, token, "PUT", fmt.Sprintf("/exercises/%d/completed", firstWeekExercises[0].ID), map[string]any{
		"completed": true,
	})
	require.NoError(t, completedResp.Body.Close())
	require.Equal(t, http.StatusOK, completedResp.StatusCode)

	setResp := doAuthed(ctx, t, token, "PUT", fmt.Sprintf("/exercises/%d/sets/1", firstWeekExercises[0].ID), map[string]any{
		"repsDone": 10, "weightDone": 40, "completed": true,
	})
	require.NoError(t, setResp.Body.Close())
	require.Equal(t, http.StatusOK, setResp.StatusCode)

	// new week copies titles and targets, resets progress, carries no sets
	createWeekResp := doAuthed(ctx, t, token, "POST", fmt.Sprintf("/routines/%d/weeks", routineID), map[string]any{
		"name": "Semana 2",
	})
	require.Equal(t, http.StatusCreated, createWeekResp.StatusCode)
	newWeek := decodeBody[routines.Week](t, createWeekResp)
	assert.Equal(t, "Semana 2", newWeek.Name)

	copiedResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days/1/exercises", newWeek.ID), nil)
	require.Equal(t, http.StatusOK, copiedResp.StatusCode)
	copied := decodeBody[[]routines.Exercise](t, copiedResp)
	require.Len(t, copied, len(firstWeekExercises))
	for i, ex := range copied {
		assert.Equal(t, firstWeekExercises[i].Name, ex.Name)
		assert.Equal(t, firstWeekExercises[i].SeriesTarget, ex.SeriesTarget)
		assert.False(t, ex.Completed)
	}

	setsResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/exercises/%d/sets", copied[0].ID), nil)
	require.Equal(t, http.StatusOK, setsResp.StatusCode)
	copiedSets := decodeBody[[]routines.ExerciseSet](t, setsResp)
	assert.Empty(t, copiedSets)
}

func (s *IntegrationTestSuite) TestPlannerGenerate() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := registerUser(ctx, t, "planner-user", "s3cret-pass")

	resp := doAuthed(ctx, t, token, "POST", "/planner/generate", map[string]any{
		"days":  4,
		"goal":  "Fuerza",
		"level": "Intermedio",
		"focus": "balanced",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	generated := decodeBody[routines.Routine](t, resp)

	assert.Equal(t, "Plan Fuerza (4 días)", generated.Name)
	assert.True(t, generated.IsActive)
	assert.Equal(t, 4, generated.NumDays)

	// the generated plan has a full first week
	weeksResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/routines/%d/weeks", generated.ID), nil)
	require.Equal(t, http.StatusOK, weeksResp.StatusCode)
	weeks := decodeBody[[]routines.Week](t, weeksResp)
	require.Len(t, weeks, 1)

	exercisesResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days/1/exercises", weeks[0].ID), nil)
	require.Equal(t, http.StatusOK, exercisesResp.StatusCode)
	exercises := decodeBody[[]routines.Exercise](t, exercisesResp)
	require.NotEmpty(t, exercises)
	for _, ex := range exercises {
		assert.Equal(t, 5, ex.SeriesTarget)
		assert.Equal(t, "5", ex.RepsTarget)
	}
}

func (s *IntegrationTestSuite) TestDuplicateRoutine() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := registerUser(ctx, t, "duplicate-user", "s3cret-pass")

	routinesResp := doAuthed(ctx, t, token, "GET", "/routines", nil)
	require.Equal(t, http.StatusOK, routinesResp.StatusCode)
	userRoutines := decodeBody[[]routines.Routine](t, routinesResp)
	require.Len(t, userRoutines, 1)
	sourceID := userRoutines[0].ID

	// give the source a second week so the copy has more than one to clone
	secondWeekResp := doAuthed(ctx, t, token, "POST", fmt.Sprintf("/routines/%d/weeks", sourceID), map[string]any{
		"name": "Semana 2",
	})
	require.Equal(t, http.StatusCreated, secondWeekResp.StatusCode)
	require.NoError(t, secondWeekResp.Body.Close())

	sourceWeeksResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/routines/%d/weeks", sourceID), nil)
	require.Equal(t, http.StatusOK, sourceWeeksResp.StatusCode)
	sourceWeeks := decodeBody[[]routines.Week](t, sourceWeeksResp)
	require.Len(t, sourceWeeks, 2)

	// log a set in week 1 so we can check it stays behind
	sourceExercisesResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days/1/exercises", sourceWeeks[0].ID), nil)
	require.Equal(t, http.StatusOK, sourceExercisesResp.StatusCode)
	sourceExercises := decodeBody[[]routines.Exercise](t, sourceExercisesResp)
	require.NotEmpty(t, sourceExercises)

	setResp := doAuthed(ctx, t, token, "PUT", fmt.Sprintf("/exercises/%d/sets/1", sourceExercises[0].ID), map[string]any{
		"repsDone": 10, "weightDone": 40, "completed": true,
	})
	require.NoError(t, setResp.Body.Close())
	require.Equal(t, http.StatusOK, setResp.StatusCode)

	duplicateResp := doAuthed(ctx, t, token, "POST", fmt.Sprintf("/routines/%d/duplicate", sourceID), map[string]any{})
	require.Equal(t, http.StatusCreated, duplicateResp.StatusCode)
	copied := decodeBody[routines.Routine](t, duplicateResp)
	assert.Equal(t, "Mi Rutina Principal (copia)", copied.Name)
	assert.False(t, copied.IsActive)

	// every source week is cloned, name included
	copiedWeeksResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/routines/%d/weeks", copied.ID), nil)
	require.Equal(t, http.StatusOK, copiedWeeksResp.StatusCode)
	copiedWeeks := decodeBody[[]routines.Week](t, copiedWeeksResp)
	require.Len(t, copiedWeeks, len(sourceWeeks))
	for i, week := range copiedWeeks {
		assert.Equal(t, sourceWeeks[i].Name, week.Name)
	}

	// day-title and exercise totals match the source exactly
	countFor := func(query string, routineID int) int {
		var count int
		require.NoError(t, s.DB.QueryRow(query, routineID).Scan(&count))
		return count
	}
	dayTitlesQuery := `SELECT COUNT(*) FROM day_title dt JOIN week w ON dt.week_id = w.id WHERE w.routine_id = $1`
	exercisesQuery := `SELECT COUNT(*) FROM exercise e JOIN week w ON e.week_id = w.id WHERE w.routine_id = $1`
	assert.Equal(t, countFor(dayTitlesQuery, sourceID), countFor(dayTitlesQuery, copied.ID))
	assert.Equal(t, countFor(exercisesQuery, sourceID), countFor(exercisesQuery, copied.ID))

	// the copy starts with zero logged sets
	setsQuery := `SELECT COUNT(*) FROM exercise_set s JOIN exercise e ON s.exercise_id = e.id
		JOIN week w ON e.week_id = w.id WHERE w.routine_id = $1`
	assert.Equal(t, 1, countFor(setsQuery, sourceID))
	assert.Zero(t, countFor(setsQuery, copied.ID))
}

func (s *IntegrationTestSuite) TestReorderPersists() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := registerUser(ctx, t, "reorder-user", "s3cret-pass")

	routinesResp := doAuthed(ctx, t, token, "GET", "/routines", nil)
	require.Equal(t, http.StatusOK, routinesResp.StatusCode)
	userRoutines := decodeBody[[]routines.Routine](t, routinesResp)
	require.Len(t, userRoutines, 1)

	weeksResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/routines/%d/weeks", userRoutines[0].ID), nil)
	require.Equal(t, http.StatusOK, weeksResp.StatusCode)
	weeks := decodeBody[[]routines.Week](t, weeksResp)
	require.Len(t, weeks, 1)
	weekID := weeks[0].ID

	daysResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days", weekID), nil)
	require.Equal(t, http.StatusOK, daysResp.StatusCode)
	days := decodeBody[[]routines.DayTitle](t, daysResp)
	require.Len(t, days, 4)

	// reverse the days and make sure a fresh read honors the new order
	reversed := make([]int, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		reversed = append(reversed, days[i].DayIndex)
	}
	reorderResp := doAuthed(ctx, t, token, "PUT", fmt.Sprintf("/weeks/%d/days/order", weekID), map[string]any{
		"order": reversed,
	})
	require.NoError(t, reorderResp.Body.Close())
	require.Equal(t, http.StatusOK, reorderResp.StatusCode)

	reorderedDaysResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days", weekID), nil)
	require.Equal(t, http.StatusOK, reorderedDaysResp.StatusCode)
	reorderedDays := decodeBody[[]routines.DayTitle](t, reorderedDaysResp)
	require.Len(t, reorderedDays, len(days))
	for i, day := range reorderedDays {
		assert.Equal(t, reversed[i], day.DayIndex)
	}

	// same drill for the exercises of day 1
	exercisesResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days/1/exercises", weekID), nil)
	require.Equal(t, http.StatusOK, exercisesResp.StatusCode)
	exercises := decodeBody[[]routines.Exercise](t, exercisesResp)
	require.Greater(t, len(exercises), 1)

	reversedIDs := make([]int, 0, len(exercises))
	for i := len(exercises) - 1; i >= 0; i-- {
		reversedIDs = append(reversedIDs, exercises[i].ID)
	}
	reorderExResp := doAuthed(ctx, t, token, "PUT", fmt.Sprintf("/weeks/%d/days/1/exercises/order", weekID), map[string]any{
		"order": reversedIDs,
	})
	require.NoError(t, reorderExResp.Body.Close())
	require.Equal(t, http.StatusOK, reorderExResp.StatusCode)

	reorderedExResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days/1/exercises", weekID), nil)
	require.Equal(t, http.StatusOK, reorderedExResp.StatusCode)
	reorderedExercises := decodeBody[[]routines.Exercise](t, reorderedExResp)
	require.Len(t, reorderedExercises, len(exercises))
	for i, ex := range reorderedExercises {
		assert.Equal(t, reversedIDs[i], ex.ID)
	}
}

func (s *IntegrationTestSuite) TestSetIndexBoundEnforced() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := registerUser(ctx, t, "set-bound-user", "s3cret-pass")

	routinesResp := doAuthed(ctx, t, token, "GET", "/routines", nil)
	require.Equal(t, http.StatusOK, routinesResp.StatusCode)
	userRoutines := decodeBody[[]routines.Routine](t, routinesResp)
	require.Len(t, userRoutines, 1)

	weeksResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/routines/%d/weeks", userRoutines[0].ID), nil)
	require.Equal(t, http.StatusOK, weeksResp.StatusCode)
	weeks := decodeBody[[]routines.Week](t, weeksResp)
	require.Len(t, weeks, 1)

	exercisesResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/weeks/%d/days/1/exercises", weeks[0].ID), nil)
	require.Equal(t, http.StatusOK, exercisesResp.StatusCode)
	exercises := decodeBody[[]routines.Exercise](t, exercisesResp)
	require.NotEmpty(t, exercises)
	exercise := exercises[0]

	// an index past series_target is rejected and nothing is stored
	badSetResp := doAuthed(ctx, t, token, "PUT", fmt.Sprintf("/exercises/%d/sets/%d", exercise.ID, exercise.SeriesTarget+1), map[string]any{
		"repsDone": 10, "completed": true,
	})
	require.NoError(t, badSetResp.Body.Close())
	assert.Equal(t, http.StatusBadRequest, badSetResp.StatusCode)

	setsResp := doAuthed(ctx, t, token, "GET", fmt.Sprintf("/exercises/%d/sets", exercise.ID), nil)
	require.Equal(t, http.StatusOK, setsResp.StatusCode)
	sets := decodeBody[[]routines.ExerciseSet](t, setsResp)
	assert.Empty(t, sets)

	// the last in-range index is fine
	goodSetResp := doAuthed(ctx, t, token, "PUT", fmt.Sprintf("/exercises/%d/sets/%d", exercise.ID, exercise.SeriesTarget), map[string]any{
		"repsDone": 10, "completed": true,
	})
	require.NoError(t, goodSetResp.Body.Close())
	assert.Equal(t, http.StatusOK, goodSetResp.StatusCode)
}
