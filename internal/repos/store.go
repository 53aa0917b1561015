package repos

import (
	"context"
	"errors"
	"reflect"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Generic natural-key repository operations shared by the importers. Every
// caller supplies the lookup condition (the entity's natural key) and a
// build function that constructs the row on first sighting; field updates
// go through assign so the store can detect whether anything changed.

// GetOrCreate looks up a single record by cond and inserts build() when it
// does not exist. Returns the record and whether it was created.
func GetOrCreate[T any](ctx context.Context, tx *gorm.DB, cond map[string]interface{}, build func() *T) (*T, bool, error) {
	var rec T
	err := tx.WithContext(ctx).Where(cond).First(&rec).Error
	if err == nil {
		return &rec, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	created := build()
	if err := tx.WithContext(ctx).Create(created).Error; err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// UpdateOrCreate looks up a single record by cond, overwrites its fields via
// assign and saves when any field changed; when absent it inserts
// build()+assign. Returns the record, whether it was created and whether
// anything changed.
func UpdateOrCreate[T any](ctx context.Context, tx *gorm.DB, cond map[string]interface{}, build func() *T, assign func(*T)) (*T, bool, bool, error) {
	var rec T
	err := tx.WithContext(ctx).Where(cond).First(&rec).Error
	if err == nil {
		before := rec
		assign(&rec)
		if reflect.DeepEqual(before, rec) {
			return &rec, false, false, nil
		}
		if err := tx.WithContext(ctx).Save(&rec).Error; err != nil {
			return nil, false, false, err
		}
		return &rec, false, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, false, err
	}
	created := build()
	assign(created)
	if err := tx.WithContext(ctx).Create(created).Error; err != nil {
		return nil, false, false, err
	}
	return created, true, true, nil
}

// GetBy returns the single record matching cond, or nil when none exists.
func GetBy[T any](ctx context.Context, tx *gorm.DB, cond map[string]interface{}) (*T, error) {
	var rec T
	err := tx.WithContext(ctx).Where(cond).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListBy returns all records matching cond in the given order.
func ListBy[T any](ctx context.Context, tx *gorm.DB, cond map[string]interface{}, order string) ([]T, error) {
	var recs []T
	q := tx.WithContext(ctx).Where(cond)
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Delete removes one record.
func Delete[T any](ctx context.Context, tx *gorm.DB, rec *T) error {
	return tx.WithContext(ctx).Delete(rec).Error
}

// Save persists the in-memory state of rec.
func Save[T any](ctx context.Context, tx *gorm.DB, rec *T) error {
	return tx.WithContext(ctx).Save(rec).Error
}

// IsUniqueViolation reports whether err is a Postgres duplicate-key error
// (code 23505). Importer parsers treat these as "no change happened" for a
// single child record rather than aborting the whole run.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
