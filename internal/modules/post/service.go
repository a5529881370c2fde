package post

import (
	"context"
	"strings"

	"photobook/internal/domain"
)

type Service struct {
	posts PostRepository
}

func NewService(posts PostRepository) *Service {
	return &Service{posts: posts}
}

// Create publishes a post for an approved photographer. Posts are
// immutable once written.
func (s *Service) Create(ctx context.Context, caller *domain.User, imagePath, title, description string) (*domain.Post, error) {
	if !caller.CanPost() {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(imagePath) == "" {
		return nil, ErrValidation
	}

	p := &domain.Post{
		PhotographerID: caller.ID,
		ImagePath:      imagePath,
		Title:          strings.TrimSpace(title),
		Description:    description,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListByPhotographer returns a photographer's posts, newest first.
func (s *Service) ListByPhotographer(ctx context.Context, photographerID int64) ([]domain.Post, error) {
	return s.posts.ListByPhotographer(ctx, photographerID)
}
