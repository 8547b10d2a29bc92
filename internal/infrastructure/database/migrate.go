package database

import (
	"embed"
	"fmt"
	"log"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const dialect = "postgres"

// MigrationSource returns the embedded schema migrations
func MigrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// MigrationStatus describes one known migration
type MigrationStatus struct {
	ID        string
	AppliedAt *time.Time
}

// AutoMigrate applies all pending migrations
func AutoMigrate(db *gorm.DB) error {
	log.Println("🔄 Applying embedded migrations using sql-migrate...")

	n, err := MigrateUp(db)
	if err != nil {
		return err
	}

	log.Printf("✅ Applied %d migrations!\n", n)
	return nil
}

// MigrateUp applies pending migrations and returns how many ran
func MigrateUp(db *gorm.DB) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate up, error: %v", err)
	}

	n, err := migrate.Exec(sqlDB, dialect, MigrationSource(), migrate.Up)
	if err != nil {
		return n, fmt.Errorf("failed to apply migration, error: %v", err)
	}
	return n, nil
}

// MigrateDown rolls back at most steps migrations (0 rolls back all)
func MigrateDown(db *gorm.DB, steps int) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate down, error: %v", err)
	}

	n, err := migrate.ExecMax(sqlDB, dialect, MigrationSource(), migrate.Down, steps)
	if err != nil {
		return n, fmt.Errorf("failed to roll back migration, error: %v", err)
	}
	return n, nil
}

// Status lists every embedded migration and when it was applied
func Status(db *gorm.DB) ([]MigrationStatus, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get db connection during migrate status, error: %v", err)
	}

	known, err := MigrationSource().FindMigrations()
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	records, err := migrate.GetMigrationRecords(sqlDB, dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration records: %w", err)
	}

	applied := make(map[string]time.Time, len(records))
	for _, r := range records {
		applied[r.Id] = r.AppliedAt
	}

	out := make([]MigrationStatus, 0, len(known))
	for _, m := range known {
		st := MigrationStatus{ID: m.Id}
		if at, ok := applied[m.Id]; ok {
			at := at
			st.AppliedAt = &at
		}
		out = append(out, st)
	}
	return out, nil
}
