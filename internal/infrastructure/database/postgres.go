package database

import (
	"context"
	"fmt"
	"log"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// NewPostgresDB creates a new PostgreSQL database connection using GORM.
// The initial ping is retried with exponential backoff so the API can start
// alongside a database container that is still booting.
func NewPostgresDB(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	var db *gorm.DB
	connect := func() error {
		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger,
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to get database object: %w", err))
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return fmt.Errorf("failed to ping database: %w", err)
		}

		// Connection pool settings
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
		sqlDB.SetConnMaxLifetime(time.Hour)

		db = conn
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	notify := func(err error, wait time.Duration) {
		log.Printf("⏳ Database not ready (%v), retrying in %s", err, wait)
	}
	if err := backoff.RetryNotify(connect, backoff.WithContext(bo, ctx), notify); err != nil {
		return nil, err
	}

	log.Println("✅ Database connected successfully")

	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("✅ Database connection closed")
	return nil
}
