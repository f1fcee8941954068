package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var schema = map[string][]string{
	"sqlite": {
		`CREATE TABLE IF NOT EXISTS threads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			thread_id INTEGER NOT NULL,
			author TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TEXT NOT NULL,
			FOREIGN KEY (thread_id) REFERENCES threads(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_thread_id ON posts(thread_id)`,
	},
	"postgres": {
		`CREATE TABLE IF NOT EXISTS threads (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id BIGSERIAL PRIMARY KEY,
			thread_id BIGINT NOT NULL REFERENCES threads(id) ON DELETE CASCADE,
			author TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_thread_id ON posts(thread_id)`,
	},
}

// Migrate creates the threads and posts tables when they are absent. It is
// safe to run on every start.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	dialect := db.Dialector.Name()
	statements, ok := schema[dialect]
	if !ok {
		return fmt.Errorf("no schema for dialect %q", dialect)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	logger.Info("Schema ready", zap.String("dialect", dialect))
	return nil
}
