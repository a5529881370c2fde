package domain

import "time"

type UserRole string

const (
	RoleClient       UserRole = "client"
	RolePhotographer UserRole = "photographer"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type User struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name" validate:"required"`
	Email              string             `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash       string             `json:"-"`
	Role               UserRole           `json:"role"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// InitialVerificationStatus returns the status a freshly registered user
// gets: clients are trusted immediately, photographers wait for an admin.
func InitialVerificationStatus(role UserRole) VerificationStatus {
	if role == RolePhotographer {
		return VerificationPending
	}
	return VerificationApproved
}

// CanPost reports whether the user is allowed to publish posts.
func (u *User) CanPost() bool {
	return u.Role == RolePhotographer && u.VerificationStatus == VerificationApproved
}
