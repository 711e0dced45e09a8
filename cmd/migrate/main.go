package main

import (
	"mealmate/internal/config" // Custom import path (Config)
	"mealmate/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN())
}
