package routines

import "time"

const (
	// MaxRoutinesPerUser caps how many routines a single user can keep.
	MaxRoutinesPerUser = 3
	// MaxDaysPerWeek is the highest allowed day index within a week.
	MaxDaysPerWeek = 7
)

type Routine struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	NumDays   int       `json:"numDays"`
	CreatedAt time.Time `json:"createdAt"`
}

type Week struct {
	ID        int    `json:"id"`
	RoutineID int    `json:"routineId"`
	UserID    int    `json:"userId"`
	Name      string `json:"name"`
}

// DayTitle names one training day of a week. DayOrder holds the display
// position, independent of DayIndex which is the stable identity.
type DayTitle struct {
	WeekID   int    `json:"weekId"`
	DayIndex int    `json:"dayIndex"`
	Title    string `json:"title"`
	DayOrder int    `json:"dayOrder"`
}

// Exercise is a planned movement for one day. It references the shared
// library via LibraryID or carries a free-text CustomName, never both.
// Target fields describe the plan; actual performance goes to ExerciseSet.
type Exercise struct {
	ID           int     `json:"id"`
	WeekID       int     `json:"weekId"`
	DayIndex     int     `json:"dayIndex"`
	LibraryID    *int    `json:"libraryId,omitempty"`
	CustomName   *string `json:"customName,omitempty"`
	Name         string  `json:"name"` // resolved: library name or custom name
	SeriesTarget int     `json:"seriesTarget"`
	RepsTarget   string  `json:"repsTarget"`
	Weight       string  `json:"weight"`
	Unit         string  `json:"unit"`
	Completed    bool    `json:"completed"`
	Sensation    *string `json:"sensation,omitempty"`
	OrderIndex   int     `json:"orderIndex"`
}

// ExerciseSet is one logged set of an exercise. Sensation is inert
// metadata for the client, nothing reads it back.
type ExerciseSet struct {
	ExerciseID int     `json:"exerciseId"`
	SetIndex   int     `json:"setIndex"`
	RepsDone   int     `json:"repsDone"`
	WeightDone float64 `json:"weightDone"`
	Completed  bool    `json:"completed"`
	Sensation  *string `json:"sensation,omitempty"`
}

var validSensations = map[string]bool{
	"light":     true,
	"optimal":   true,
	"excessive": true,
}

func ValidSensation(s string) bool {
	return validSensations[s]
}
