package thread

import (
	"context"

	"forum/internal/app/post"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetThreadsWithActivity(ctx context.Context) ([]*Summary, error) {
	args := m.Called(ctx)
	threads, _ := args.Get(0).([]*Summary)
	return threads, args.Error(1)
}

func (m *mockRepository) CreateThreadWithPost(ctx context.Context, thread *Thread, first *post.Post) error {
	args := m.Called(ctx, thread, first)
	return args.Error(0)
}

func (m *mockRepository) GetThreadByID(ctx context.Context, id uint64) (*Thread, error) {
	args := m.Called(ctx, id)
	thread, _ := args.Get(0).(*Thread)
	return thread, args.Error(1)
}

func (m *mockRepository) ThreadExists(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) CountThreads(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) CreatePost(ctx context.Context, p *post.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPostRepository) GetPostsByThreadID(ctx context.Context, threadID uint64) ([]*post.Post, error) {
	args := m.Called(ctx, threadID)
	posts, _ := args.Get(0).([]*post.Post)
	return posts, args.Error(1)
}
