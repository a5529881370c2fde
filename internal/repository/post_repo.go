package repository

import (
	"context"

	"photobook/internal/domain"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// ListByPhotographer returns the photographer's posts, newest first.
func (r *PostRepository) ListByPhotographer(ctx context.Context, photographerID int64) ([]domain.Post, error) {
	var posts []domain.Post
	tx := r.db.WithContext(ctx).
		Where("photographer_id = ?", photographerID).
		Order("created_at DESC").
		Find(&posts)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return posts, nil
}
