package auth

import "photobook/internal/domain"

// RegisterRequest is the structured registration payload after the handler
// has parsed the multipart form. Photographer-only fields are ignored for
// clients.
type RegisterRequest struct {
	Name            string          `validate:"required,min=2"`
	Email           string          `validate:"required,email"`
	Password        string          `validate:"required,min=6"`
	Role            domain.UserRole `validate:"required,oneof=client photographer"`
	Pricing         domain.Pricing
	Specializations []string
	Location        string
	ExperienceYears int
	Bio             string
	Portfolio       []string
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserPublic struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	VerificationStatus string `json:"verification_status"`
}

func toUserPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               string(u.Role),
		VerificationStatus: string(u.VerificationStatus),
	}
}
