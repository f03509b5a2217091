package config

import (
	"fmt"
	"strings"

	"github.com/kendall-kelly/freelance-api/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ParseDatabaseURL splits a DATABASE_URL into a driver name and a DSN.
// postgres:// and postgresql:// URLs are passed to the postgres driver as is;
// sqlite://path and sqlite:path select the sqlite driver with path as DSN.
func ParseDatabaseURL(databaseURL string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return DriverPostgres, databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		dsn = strings.TrimPrefix(databaseURL, "sqlite://")
	case strings.HasPrefix(databaseURL, "sqlite:"):
		dsn = strings.TrimPrefix(databaseURL, "sqlite:")
	default:
		return "", "", fmt.Errorf("unsupported DATABASE_URL %q: expected postgres:// or sqlite://", databaseURL)
	}

	if dsn == "" {
		return "", "", fmt.Errorf("DATABASE_URL %q has no sqlite path", databaseURL)
	}
	return DriverSQLite, dsn, nil
}

// ConnectDatabase opens the database named by databaseURL.
// Callers own the returned handle.
func ConnectDatabase(databaseURL string, verbose bool) (*gorm.DB, error) {
	driver, dsn, err := ParseDatabaseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if verbose {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		// A second connection to :memory: would see an empty database,
		// and sqlite allows a single writer anyway.
		sqlDB.SetMaxOpenConns(1)
	}

	logger.Log.Info("Database connection established", zap.String("driver", driver))
	return db, nil
}
