package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvHome     = "LISTA_HOME"
	EnvDB       = "LISTA_DB"
	EnvLogLevel = "LISTA_LOG_LEVEL"
)

// LoadEnv reads the given .env files (".env" when none are given) into the process
// environment. Missing files are skipped and variables already set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return err
		}
	}
	return nil
}

func applyEnv(c *Config) {
	if path := os.Getenv(EnvDB); path != "" {
		c.Database.Path = path
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
}
