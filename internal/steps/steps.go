package steps

import "time"

// DateLayout is how dates are keyed in the daily steps table, one row per
// user per calendar day.
const DateLayout = "2006-01-02"

type DailySteps struct {
	UserID    int       `json:"userId"`
	Date      string    `json:"date"`
	Steps     int       `json:"steps"`
	CreatedAt time.Time `json:"createdAt"`
}

// Today returns the current date in the storage key format.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidDate reports whether the given string is a storage-format date.
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
