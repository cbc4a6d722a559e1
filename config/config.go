package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env into the process environment if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
}
