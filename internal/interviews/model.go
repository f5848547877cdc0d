package interviews

import "time"

// Interview is a generated mock interview. Questions holds the model's script
// JSON as text and is stored opaquely.
type Interview struct {
	ID              string
	UserID          string
	Title           string
	Role            string
	ExperienceLevel string
	Questions       string
	CreatedAt       time.Time
}
