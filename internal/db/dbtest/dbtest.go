// Package dbtest opens throwaway SQLite stores for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"forum/internal/config"
	"forum/internal/db"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config returns a configuration whose store lives in a fresh temp directory.
func Config(t testing.TB) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		ServerPort:   "0",
		Env:          "test",
		GinMode:      "test",
		LogLevel:     "silent",
		DBDriver:     "sqlite",
		DBPath:       filepath.Join(dir, "forum.db"),
		TemplatesDir: filepath.Join(dir, "templates"),
		StaticDir:    filepath.Join(dir, "static"),
	}
}

// Open connects to a migrated store that is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	logger := zap.NewNop()

	conn, err := db.Connect(Config(t), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(conn) })

	require.NoError(t, db.Migrate(conn, logger))
	return conn
}
