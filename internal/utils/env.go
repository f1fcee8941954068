package utils

import (
	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file into the process environment. Variables that are
// already set win over the file.
func LoadEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}
