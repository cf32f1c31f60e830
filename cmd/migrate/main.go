package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/remindengine/core/internal/config"
	"github.com/remindengine/core/internal/database"
)

// main runs gorm.AutoMigrate for every model this engine owns, then layers
// on the raw-SQL constraints gorm tags can't express: the per-user
// case-insensitive tag uniqueness (I9) and the cascade/nullify rules a
// deleted todo triggers (I6), grounded on the teacher's
// checkmark-per-step migration log.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("Running database migrations...")

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("  ✓ core tables migrated")

	// Invariant I9: tag names are unique per user, case-insensitively.
	// AutoMigrate can't express a functional index, so it's added here.
	tagUniqueSQL := `CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_user_lower_name ON tags (user_id, lower(name))`
	if err := db.Exec(tagUniqueSQL).Error; err != nil {
		log.Fatalf("failed to create tag uniqueness index: %v", err)
	}
	log.Println("  ✓ tag uniqueness index created")

	// Invariant I6: deleting a todo cascades to its occurrences and
	// reminders, and nulls (not deletes) any notification that referenced it.
	fkStatements := []string{
		`ALTER TABLE occurrences DROP CONSTRAINT IF EXISTS fk_occurrences_todo`,
		`ALTER TABLE occurrences ADD CONSTRAINT fk_occurrences_todo
			FOREIGN KEY (todo_id) REFERENCES todos(id) ON DELETE CASCADE`,
		`ALTER TABLE reminders DROP CONSTRAINT IF EXISTS fk_reminders_todo`,
		`ALTER TABLE reminders ADD CONSTRAINT fk_reminders_todo
			FOREIGN KEY (todo_id) REFERENCES todos(id) ON DELETE CASCADE`,
		`ALTER TABLE notifications DROP CONSTRAINT IF EXISTS fk_notifications_todo`,
		`ALTER TABLE notifications ADD CONSTRAINT fk_notifications_todo
			FOREIGN KEY (todo_id) REFERENCES todos(id) ON DELETE SET NULL`,
		`ALTER TABLE notifications DROP CONSTRAINT IF EXISTS fk_notifications_reminder`,
		`ALTER TABLE notifications ADD CONSTRAINT fk_notifications_reminder
			FOREIGN KEY (reminder_id) REFERENCES reminders(id) ON DELETE SET NULL`,
	}
	for _, stmt := range fkStatements {
		if err := db.Exec(stmt).Error; err != nil {
			log.Fatalf("failed to apply foreign key constraint: %v\nstatement: %s", err, stmt)
		}
	}
	log.Println("  ✓ cascade/nullify foreign keys applied")

	log.Println("Migrations completed successfully.")
}
