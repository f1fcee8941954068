package thread

import (
	"context"

	"forum/internal/app/post"

	"gorm.io/gorm"
)

type Repository interface {
	GetThreadsWithActivity(ctx context.Context) ([]*Summary, error)
	CreateThreadWithPost(ctx context.Context, thread *Thread, first *post.Post) error
	GetThreadByID(ctx context.Context, id uint64) (*Thread, error)
	ThreadExists(ctx context.Context, id uint64) (bool, error)
	CountThreads(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetThreadsWithActivity lists every thread, most recently active first.
// Threads active within the same second are ordered by their newest post.
func (r *repository) GetThreadsWithActivity(ctx context.Context) ([]*Summary, error) {
	var threads []*Summary

	err := r.db.WithContext(ctx).Table("threads AS t").
		Select(`
			t.id,
			t.title,
			t.author,
			t.created_at,
			COUNT(p.id) AS posts_count,
			COALESCE(MAX(p.created_at), t.created_at) AS last_post_at
		`).
		Joins("LEFT JOIN posts p ON p.thread_id = t.id").
		Group("t.id, t.title, t.author, t.created_at").
		Order("last_post_at DESC").
		Order("MAX(p.id) DESC").
		Scan(&threads).Error
	if err != nil {
		return nil, err
	}

	return threads, nil
}

// CreateThreadWithPost inserts the thread and its first post in one
// transaction. On success both carry their store-assigned ids.
func (r *repository) CreateThreadWithPost(ctx context.Context, thread *Thread, first *post.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(thread).Error; err != nil {
			return err
		}

		first.ThreadID = thread.ID
		return tx.Create(first).Error
	})
}

func (r *repository) GetThreadByID(ctx context.Context, id uint64) (*Thread, error) {
	var thread Thread
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&thread).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *repository) ThreadExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Thread{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *repository) CountThreads(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Thread{}).Count(&count).Error
	return count, err
}
