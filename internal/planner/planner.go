package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/lufitapp/lufit/internal/library"
)

const (
	FocusBalanced = "balanced"
	FocusUpper    = "upper"
	FocusLower    = "lower"

	GoalGeneral     = "General"
	GoalHypertrophy = "Hipertrofia"
	GoalStrength    = "Fuerza"
	GoalFatLoss     = "Perdida"

	exercisesPerMuscle = 2
	restDay            = "Descanso"
)

var ErrUnsupportedDays = errors.New("days per week must be 3, 4 or 5")

// Params is the full input of the generator. Days picks the weekly split,
// Goal fixes the series/reps targets, Level steers exercise difficulty and
// Focus biases the split toward upper or lower body.
type Params struct {
	Days  int    `json:"days"`
	Goal  string `json:"goal"`
	Level string `json:"level"`
	Focus string `json:"focus"`
}

type dayTemplate struct {
	title   string
	muscles []string
}

// PlannedExercise is one insert specification produced by the generator.
type PlannedExercise struct {
	LibraryID    int
	Name         string
	SeriesTarget int
	RepsTarget   string
	OrderIndex   int
}

// PlannedDay is one training day of the generated plan. Rest days are
// dropped and day indexes renumbered, so a 4-day plan has days 1..4.
type PlannedDay struct {
	DayIndex  int
	Title     string
	Exercises []PlannedExercise
}

// ExercisePicker selects up to limit library entries for a muscle at a
// difficulty, falling back to Intermedio for the remainder.
type ExercisePicker func(ctx context.Context, muscle, difficulty string, limit int) ([]library.Entry, error)

// structureFor returns the weekly split template, rest days included.
func structureFor(days int, focus string) ([]dayTemplate, error) {
	switch days {
	case 3:
		if focus == FocusLower {
			return []dayTemplate{
				{title: "Pierna Énfasis", muscles: []string{"Pierna", "Core"}},
				{title: restDay},
				{title: "Torso Completo", muscles: []string{"Pecho", "Espalda", "Hombro", "Tríceps"}},
				{title: restDay},
				{title: "Full Body + Glúteo", muscles: []string{"Pierna", "Hombro", "Espalda", "Glúteo"}},
				{title: restDay},
				{title: restDay},
			}, nil
		}
		return []dayTemplate{
			{title: "Full Body A", muscles: []string{"Pecho", "Espalda", "Pierna", "Hombro"}},
			{title: restDay},
			{title: "Full Body B", muscles: []string{"Pierna", "Pecho", "Espalda", "Tríceps"}},
			{title: restDay},
			{title: "Full Body C", muscles: []string{"Hombro", "Bíceps", "Pierna", "Core"}},
			{title: restDay},
			{title: restDay},
		}, nil
	case 4:
		if focus == FocusUpper {
			return []dayTemplate{
				{title: "Torso A (Pecho/Espalda)", muscles: []string{"Pecho", "Espalda"}},
				{title: "Pierna", muscles: []string{"Pierna", "Core"}},
				{title: restDay},
				{title: "Hombro y Brazos", muscles: []string{"Hombro", "Bíceps", "Tríceps"}},
				{title: "Torso B (Pump)", muscles: []string{"Pecho", "Espalda", "Hombro"}},
				{title: restDay},
				{title: restDay},
			}, nil
		}
		return []dayTemplate{
			{title: "Torso A (Fuerza)", muscles: []string{"Pecho", "Espalda", "Hombro"}},
			{title: "Pierna A", muscles: []string{"Pierna", "Core"}},
			{title: restDay},
			{title: "Torso B (Hipertrofia)", muscles: []string{"Pecho", "Espalda", "Bíceps", "Tríceps"}},
			{title: "Pierna B", muscles: []string{"Pierna", "Core"}},
			{title: restDay},
			{title: restDay},
		}, nil
	case 5:
		return []dayTemplate{
			{title: "Empuje (Push)", muscles: []string{"Pecho", "Hombro", "Tríceps"}},
			{title: "Tracción (Pull)", muscles: []string{"Espalda", "Bíceps", "Core"}},
			{title: "Pierna (Legs)", muscles: []string{"Pierna"}},
			{title: restDay},
			{title: "Torso Superior", muscles: []string{"Pecho", "Espalda", "Hombro"}},
			{title: "Pierna Completa", muscles: []string{"Pierna", "Core"}},
			{title: restDay},
		}, nil
	default:
		return nil, ErrUnsupportedDays
	}
}

// TargetsForGoal maps the training goal to series and reps targets.
func TargetsForGoal(goal string) (seriesTarget int, repsTarget string) {
	switch goal {
	case GoalStrength:
		return 5, "5"
	case GoalHypertrophy:
		return 3, "10"
	default:
		return 3, "12"
	}
}

// RoutineName builds the display name of a generated routine.
func RoutineName(goal string, days int) string {
	return fmt.Sprintf("Plan %s (%d días)", goal, days)
}

// searchMuscle maps focus muscles to catalog muscles. Glúteo work mostly
// lives under Pierna in the catalog.
func searchMuscle(muscle string) string {
	if muscle == "Glúteo" {
		return "Pierna"
	}
	return muscle
}

// BuildPlan turns the input tuple into a list of insert specifications.
// Rest days are skipped and the remaining days renumbered from 1.
func BuildPlan(ctx context.Context, params Params, pick ExercisePicker) ([]PlannedDay, error) {
	structure, err := structureFor(params.Days, params.Focus)
	if err != nil {
		return nil, err
	}

	seriesTarget, repsTarget := TargetsForGoal(params.Goal)

	var plan []PlannedDay
	dayIndex := 0
	for _, template := range structure {
		if template.title == restDay {
			continue
		}
		dayIndex++

		day := PlannedDay{
			DayIndex: dayIndex,
			Title:    template.title,
		}

		order := 0
		for _, muscle := range template.muscles {
			entries, err := pick(ctx, searchMuscle(muscle), params.Level, exercisesPerMuscle)
			if err != nil {
				return nil, fmt.Errorf("pick exercises for %s: %w", muscle, err)
			}
			for _, entry := range entries {
				order++
				day.Exercises = append(day.Exercises, PlannedExercise{
					LibraryID:    entry.ID,
					Name:         entry.Name,
					SeriesTarget: seriesTarget,
					RepsTarget:   repsTarget,
					OrderIndex:   order,
				})
			}
		}

		plan = append(plan, day)
	}

	return plan, nil
}
