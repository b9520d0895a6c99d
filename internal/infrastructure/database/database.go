package database

import (
	"fmt"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/config"
)

// New opens the relational store configured in cfg using GORM. The default
// is a SQLite file next to the process; DB_DRIVER=postgres selects PostgreSQL.
func New(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.Environment == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	gormCfg := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), gormCfg)
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.Database.Path), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	if cfg.Database.Driver == "postgres" {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// SQLite serializes writers, keep a single connection
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	return db, nil
}

// Migrate applies the idempotent startup schema with sql-migrate. Re-running
// against an existing store is a no-op.
func Migrate(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get db connection during migrate up, error: %v", err)
	}

	dialect := "sqlite3"
	source := sqliteMigrations
	if driver == "postgres" {
		dialect = "postgres"
		source = postgresMigrations
	}

	n, err := migrate.Exec(sqlDB, dialect, source, migrate.Up)
	if err != nil {
		return fmt.Errorf("failed to apply migration, error: %v", err)
	}

	log.Printf("✅ Applied %d migrations!\n", n)
	return nil
}

// Close closes the database connection
func Close(db *gorm.DB) error {
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

var sqliteMigrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1-create-meetings-and-shared-summaries",
			Up: []string{
				`CREATE TABLE IF NOT EXISTS meetings (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					transcript TEXT,
					prompt TEXT,
					summary TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE TABLE IF NOT EXISTS shared_summaries (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					meeting_id INTEGER,
					recipient_email TEXT,
					shared_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (meeting_id) REFERENCES meetings (id)
				)`,
			},
			Down: []string{
				`DROP TABLE IF EXISTS shared_summaries`,
				`DROP TABLE IF EXISTS meetings`,
			},
		},
	},
}

var postgresMigrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1-create-meetings-and-shared-summaries",
			Up: []string{
				`CREATE TABLE IF NOT EXISTS meetings (
					id BIGSERIAL PRIMARY KEY,
					transcript TEXT,
					prompt TEXT,
					summary TEXT,
					created_at TIMESTAMPTZ DEFAULT now()
				)`,
				`CREATE TABLE IF NOT EXISTS shared_summaries (
					id BIGSERIAL PRIMARY KEY,
					meeting_id BIGINT REFERENCES meetings (id),
					recipient_email TEXT,
					shared_at TIMESTAMPTZ DEFAULT now()
				)`,
			},
			Down: []string{
				`DROP TABLE IF EXISTS shared_summaries`,
				`DROP TABLE IF EXISTS meetings`,
			},
		},
	},
}
