package domain

import "time"

// Post is a published media item. Posts have no update or delete path,
// a row is immutable once created.
type Post struct {
	ID             int64     `json:"id"`
	PhotographerID int64     `json:"photographer_id"`
	ImagePath      string    `json:"image_path" validate:"required"`
	Title          string    `json:"title,omitempty"`
	Description    string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
}
