package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file if one exists. It is
// safe to call more than once; only the first call does anything.
func LoadEnv() {
	once.Do(func() {
		log := logging.GetLogger()

		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			// Try the parent directory (project root)
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				log.Info("No .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			log.WithError(err).Warn("Error loading .env file")
			return
		}
		log.WithField("file", envFile).Info("Loaded environment variables")
	})
}
