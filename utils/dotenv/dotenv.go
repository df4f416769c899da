package dotenv

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnvs loads environment variables from .env files. In
// production the process environment is expected to be complete, so
// nothing is loaded there and a missing .env file is not an error.
func LoadDotEnvs() error {
	if os.Getenv("APP_ENV") == "production" {
		return nil
	}
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(".env")
}
