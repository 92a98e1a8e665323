package users

import "time"

type User struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email,omitempty"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`

	// PasswordHash never leaves the service.
	PasswordHash string `json:"-"`
}

// Profile holds the body stats and goals a user sets up after registration.
// Weight is stored in kilos regardless of the preferred display unit.
type Profile struct {
	UserID         int       `json:"userId"`
	Weight         float64   `json:"weight"`
	Height         float64   `json:"height"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	DailyStepsGoal int       `json:"dailyStepsGoal"`
	PreferredUnit  string    `json:"preferredUnit"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BMI is weight over squared height (height is stored in centimeters).
func (p *Profile) BMI() float64 {
	if p.Height <= 0 {
		return 0
	}
	heightMeters := p.Height / 100
	return p.Weight / (heightMeters * heightMeters)
}

func ValidUnit(unit string) bool {
	return unit == "kg" || unit == "lb"
}
