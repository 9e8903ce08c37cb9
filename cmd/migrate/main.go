package main

import (
	"log"

	"github.com/collegemetrics/api/config"
	"github.com/collegemetrics/api/database"
)

// Applies the canonical SQL schema through the database/sql store,
// bypassing GORM AutoMigrate.
func main() {
	log.Println("=== Canonical SQL Migration ===")

	// Load environment variables
	if err := config.LoadENV(); err != nil {
		log.Fatal("Failed to load environment variables:", err)
	}

	store, err := database.Start()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	// Run migrations
	if err := store.Init(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Health check
	if err := store.HealthCheck(); err != nil {
		log.Fatal("Database health check failed:", err)
	}

	log.Println("✅ All migrations completed successfully!")
}
