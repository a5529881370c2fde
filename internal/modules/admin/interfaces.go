package admin

import (
	"context"

	"photobook/internal/domain"
	"photobook/internal/repository"
)

type AdminRepository interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateVerificationStatus(ctx context.Context, id int64, status domain.VerificationStatus) error
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	ListByOwnerStatus(ctx context.Context, status domain.VerificationStatus) ([]repository.ProfileWithOwner, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}
