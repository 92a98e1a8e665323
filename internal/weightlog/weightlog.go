package weightlog

import (
	"time"

	"github.com/lufitapp/lufit/internal/users"
)

const DateLayout = "2006-01-02"

// Entry is one body-weight measurement. Historic rows may carry corrupted
// unit values, reads normalize those to kg.
type Entry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Weight    float64   `json:"weight"`
	Date      string    `json:"date"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeUnit maps any stored unit value outside {kg, lb} to kg.
func NormalizeUnit(unit string) string {
	if users.ValidUnit(unit) {
		return unit
	}
	return "kg"
}

// ValidDate reports whether the given string is a storage-format date.
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
