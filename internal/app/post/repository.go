package post

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreatePost(ctx context.Context, post *Post) error
	GetPostsByThreadID(ctx context.Context, threadID uint64) ([]*Post, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePost(ctx context.Context, post *Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetPostsByThreadID returns the thread's posts oldest first. Posts written
// within the same second keep insertion order through the id.
func (r *repository) GetPostsByThreadID(ctx context.Context, threadID uint64) ([]*Post, error) {
	var posts []*Post
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
