package store

import (
	"context"
	"fmt"

	"github.com/kendall-kelly/freelance-api/models"
	"gorm.io/gorm"
)

// Store holds users, orders and offers in a relational database.
// References between records are plain ids: nothing cascades on delete.
type Store struct {
	db     *gorm.DB
	Users  *Repository[models.User]
	Orders *Repository[models.Order]
	Offers *Repository[models.Offer]
}

// New wraps an open database handle
func New(db *gorm.DB) *Store {
	return &Store{
		db:     db,
		Users:  newRepository[models.User](db, models.User{}.TableName()),
		Orders: newRepository[models.Order](db, models.Order{}.TableName()),
		Offers: newRepository[models.Offer](db, models.Offer{}.TableName()),
	}
}

// Migrate creates or updates the tables for all record types
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.User{}, &models.Order{}, &models.Offer{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping verifies the database connection is alive
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Tables lists the tables present in the database
func (s *Store) Tables() ([]string, error) {
	return s.db.Migrator().GetTables()
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
