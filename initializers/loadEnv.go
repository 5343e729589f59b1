package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads a local .env when present. Every variable has a default, so
// a missing file is fine.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}
}
