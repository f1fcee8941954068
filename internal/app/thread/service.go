package thread

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"forum/internal/app/post"
	"forum/internal/apperr"
	"forum/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrTitleAndBodyRequired = apperr.Validation("title and body required")
	ErrThreadNotFound       = apperr.NotFound("thread not found")
)

type Service interface {
	GetThreads(ctx context.Context) ([]*Summary, error)
	CreateThread(ctx context.Context, title, body, author string) (*Detail, error)
	GetThreadByID(ctx context.Context, threadID uint64) (*Detail, error)
	CountThreads(ctx context.Context) (int64, error)
}

type service struct {
	repo     Repository
	postRepo post.Repository
	clock    utils.Clock
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, postRepo post.Repository, clock utils.Clock, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		postRepo: postRepo,
		clock:    clock,
		logger:   logger.Sugar(),
	}
}

func (s *service) GetThreads(ctx context.Context) ([]*Summary, error) {
	threads, err := s.repo.GetThreadsWithActivity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get threads: %w", err)
	}
	return threads, nil
}

// CreateThread stores a thread and its opening post under one timestamp.
func (s *service) CreateThread(ctx context.Context, title, body, author string) (*Detail, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, ErrTitleAndBodyRequired
	}
	author = utils.NormalizeAuthor(author)

	now := s.clock.Timestamp()
	thread := &Thread{
		Title:     title,
		Author:    author,
		CreatedAt: now,
	}
	first := &post.Post{
		Author:    author,
		Body:      body,
		CreatedAt: now,
	}

	if err := s.repo.CreateThreadWithPost(ctx, thread, first); err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	s.logger.Infow("Thread created", "thread_id", thread.ID, "author", author)
	return &Detail{Thread: *thread, Posts: []*post.Post{first}}, nil
}

func (s *service) GetThreadByID(ctx context.Context, threadID uint64) (*Detail, error) {
	thread, err := s.repo.GetThreadByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreadNotFound
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}

	posts, err := s.postRepo.GetPostsByThreadID(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	return &Detail{Thread: *thread, Posts: posts}, nil
}

func (s *service) CountThreads(ctx context.Context) (int64, error) {
	return s.repo.CountThreads(ctx)
}
