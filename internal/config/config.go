package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	ServerPort   string
	Env          string
	GinMode      string
	LogLevel     string
	LogPath      string
	DBDriver     string
	DBPath       string
	DatabaseURL  string
	FrontendURL  string
	TemplatesDir string
	StaticDir    string
	SeedWelcome  bool
}

func LoadConfig() Config {
	baseDir := executableDir()

	return Config{
		ServerPort:   getEnv("PORT", "5000"),
		Env:          getEnv("ENV", "dev"),
		GinMode:      getEnv("GIN_MODE", "release"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogPath:      getEnv("LOG_PATH", ""),
		DBDriver:     strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:       getEnv("DB_PATH", filepath.Join(baseDir, "forum.db")),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		FrontendURL:  getEnv("FRONTEND_URL", ""),
		TemplatesDir: getEnv("TEMPLATES_DIR", filepath.Join(baseDir, "templates")),
		StaticDir:    getEnv("STATIC_DIR", filepath.Join(baseDir, "static")),
		SeedWelcome:  getEnvAsBool("SEED_WELCOME", false),
	}
}

// SQLiteDSN enables foreign keys on every connection so the posts cascade holds.
func (c *Config) SQLiteDSN() string {
	return c.DBPath + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

func (c *Config) AllowedOrigins() []string {
	if c.FrontendURL == "" {
		return nil
	}
	origins := strings.Split(c.FrontendURL, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return fallback
}

// executableDir resolves the directory of the running binary; the store file
// and page assets live next to it unless overridden.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
