package post

import (
	"context"
	"fmt"
	"strings"

	"forum/internal/apperr"
	"forum/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrBodyRequired   = apperr.Validation("body required")
	ErrThreadNotFound = apperr.NotFound("thread not found")
)

// ThreadChecker reports whether a thread exists. The thread repository
// satisfies it.
type ThreadChecker interface {
	ThreadExists(ctx context.Context, id uint64) (bool, error)
}

type Service interface {
	AddPost(ctx context.Context, threadID uint64, body, author string) (*Post, error)
}

type service struct {
	repo    Repository
	threads ThreadChecker
	clock   utils.Clock
	logger  *zap.SugaredLogger
}

func NewService(repo Repository, threads ThreadChecker, clock utils.Clock, logger *zap.Logger) Service {
	return &service{
		repo:    repo,
		threads: threads,
		clock:   clock,
		logger:  logger.Sugar(),
	}
}

func (s *service) AddPost(ctx context.Context, threadID uint64, body, author string) (*Post, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrBodyRequired
	}

	exists, err := s.threads.ThreadExists(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return nil, ErrThreadNotFound
	}

	p := &Post{
		ThreadID:  threadID,
		Author:    utils.NormalizeAuthor(author),
		Body:      body,
		CreatedAt: s.clock.Timestamp(),
	}
	if err := s.repo.CreatePost(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Debugw("Post created", "thread_id", threadID, "post_id", p.ID)
	return p, nil
}
