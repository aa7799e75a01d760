package main

import (
	"log"

	"github.com/todowy/todowy-api/internal/config"
	"github.com/todowy/todowy-api/internal/database"
)

func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.Seed(database.GetDB()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
