package admin

import "photobook/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PendingProfileView is a pending profile with owner contact fields, for
// the moderation queue.
type PendingProfileView struct {
	domain.Profile
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}
