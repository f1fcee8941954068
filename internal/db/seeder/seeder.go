package seeder

import (
	"context"

	"forum/internal/app/thread"

	"go.uber.org/zap"
)

const (
	welcomeTitle  = "Welcome to the forum"
	welcomeBody   = "This is the first thread. Say hello below."
	welcomeAuthor = "Admin"
)

type Seeder struct {
	threads thread.Service
	logger  *zap.Logger
}

func NewSeeder(threads thread.Service, logger *zap.Logger) *Seeder {
	return &Seeder{
		threads: threads,
		logger:  logger,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	s.logger.Info("Running database seeders...")

	if err := s.seedWelcomeThread(ctx); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedWelcomeThread(ctx context.Context) error {
	count, err := s.threads.CountThreads(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Threads already exist, skipping seed")
		return nil
	}

	welcome, err := s.threads.CreateThread(ctx, welcomeTitle, welcomeBody, welcomeAuthor)
	if err != nil {
		return err
	}

	s.logger.Info("Seeded welcome thread", zap.Uint64("thread_id", welcome.ID))
	return nil
}
