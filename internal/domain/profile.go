package domain

import "time"

// Pricing is stored as a JSON blob on the profile row.
type Pricing struct {
	Hourly   float64  `json:"hourly"`
	Packages []string `json:"packages,omitempty"`
}

// Profile carries the photographer-facing portfolio data. Exactly one
// profile exists per photographer user (unique index on user_id).
type Profile struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id" gorm:"uniqueIndex"`
	Portfolio       []string  `json:"portfolio" gorm:"serializer:json"`
	Pricing         Pricing   `json:"pricing" gorm:"serializer:json"`
	Specializations []string  `json:"specializations" gorm:"serializer:json"`
	Location        string    `json:"location,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	Bio             string    `json:"bio,omitempty" gorm:"type:text"`
	Rating          float64   `json:"rating"`
	CreatedAt       time.Time `json:"created_at"`
}
