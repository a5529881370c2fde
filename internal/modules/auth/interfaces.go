package auth

import (
	"context"
	"mime/multipart"

	"photobook/internal/domain"

	"gorm.io/gorm"
)

// UserRepositoryInterface — only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DB() *gorm.DB // for the user+profile registration transaction
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// FileSaver stores one uploaded file and returns its public relative path.
type FileSaver interface {
	Save(fileHeader *multipart.FileHeader) (string, error)
}
