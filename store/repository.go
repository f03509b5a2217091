package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/freelance-api/apperrors"
	"gorm.io/gorm"
)

// Repository provides CRUD access to one record type.
// Each method runs as a single statement or a single transaction.
type Repository[T any] struct {
	db    *gorm.DB
	table string
}

func newRepository[T any](db *gorm.DB, table string) *Repository[T] {
	return &Repository[T]{db: db, table: table}
}

// Create inserts rec and fills in its store-assigned id
func (r *Repository[T]) Create(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create %s: %w", r.table, err)
	}
	return nil
}

// Get returns the record with the given id
func (r *Repository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, r.wrap(err, id)
	}
	return &rec, nil
}

// List returns every record in insertion order
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	recs := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return recs, nil
}

// Update loads the record, applies the replacement to it and saves every column.
// apply must not touch the primary key.
func (r *Repository[T]) Update(ctx context.Context, id uint, apply func(*T)) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return r.wrap(err, id)
		}
		apply(&rec)
		if err := tx.Save(&rec).Error; err != nil {
			return fmt.Errorf("update %s %d: %w", r.table, id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the record with the given id
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	var rec T
	result := r.db.WithContext(ctx).Delete(&rec, id)
	if result.Error != nil {
		return fmt.Errorf("delete %s %d: %w", r.table, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", r.table, id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *Repository[T]) wrap(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", r.table, id, apperrors.ErrNotFound)
	}
	return fmt.Errorf("get %s %d: %w", r.table, id, err)
}
