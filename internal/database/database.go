package database

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/logger"
)

type Database struct {
	DB     *gorm.DB
	Driver string
}

func dialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", config.DriverSQLite:
		path := cfg.Path
		if path == "" {
			path = config.DefaultDatabasePath
		}
		return sqlite.Open(path), nil
	case config.DriverMySQL:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for driver %q", cfg.Driver)
		}
		return mysql.Open(cfg.DSN), nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for driver %q", cfg.Driver)
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func NewDatabase(cfg config.Database) (*Database, error) {
	dialect, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialect, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Genre{},
		&entities.Book{},
		&entities.Comment{},
		&entities.QuizAttempt{},
		&entities.AuditEvent{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db, Driver: dialect.Name()}

	if cfg.Seed {
		if err := database.Seed(); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	logger.L().Info("database initialized",
		zap.String("driver", database.Driver),
		zap.String("path", cfg.Path))

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
