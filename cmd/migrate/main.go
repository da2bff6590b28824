package main

import (
	"log"
	"os"

	"sadguru-seva-be/internal/model"
	"sadguru-seva-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate for 10 Tables...")

	models := []interface{}{
		&model.User{},
		&model.AuthorizedAdmin{},
		&model.Bhakt{},
		&model.ContactMessage{},
		&model.JapaSession{},
		&model.JapaDailyCount{},
		&model.Lila{},
		&model.Satsang{},
		&model.Program{},
		&model.Photo{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Partial Indexes
	log.Println("Step 3: Creating Partial Indexes...")

	postMigrationSQL := []string{
		// At most one active session per japa identity. Concurrent session
		// starts resolve through the insert conflict on this index.
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_session
		 ON japa_sessions (user_token)
		 WHERE session_active;`,

		// Leaderboard scans filter by day first, then aggregate per token.
		`CREATE INDEX IF NOT EXISTS idx_daily_counts_date
		 ON japa_daily_counts (japa_date);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
