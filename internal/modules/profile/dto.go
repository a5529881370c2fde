package profile

import "photobook/internal/domain"

// ProfileView is a public profile listing entry: the profile plus the
// owning photographer's name and email.
type ProfileView struct {
	domain.Profile
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}
