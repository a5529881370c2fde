package post

import (
	"context"
	"mime/multipart"

	"photobook/internal/domain"
)

type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	ListByPhotographer(ctx context.Context, photographerID int64) ([]domain.Post, error)
}

// FileSaver stores one uploaded file and returns its public relative path.
type FileSaver interface {
	Save(fileHeader *multipart.FileHeader) (string, error)
}
