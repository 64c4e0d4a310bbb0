package repo

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

// Transaction runs fn against a repo bound to a single database transaction.
// Returning an error (or panicking) from fn rolls the transaction back.
func (r *GormRepo) Transaction(ctx context.Context, fn func(tx *GormRepo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{DB: tx})
	})
}

func findAll[T any](ctx context.Context, db *gorm.DB, op string, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	items := make([]T, 0)
	if err := db.WithContext(ctx).Scopes(scopes...).Order("id ASC").Find(&items).Error; err != nil {
		return nil, translate(err, op)
	}
	return items, nil
}

func findByID[T any](ctx context.Context, db *gorm.DB, op string, id uint, scopes ...func(*gorm.DB) *gorm.DB) (*T, error) {
	var item T
	if err := db.WithContext(ctx).Scopes(scopes...).First(&item, id).Error; err != nil {
		return nil, translate(err, op)
	}
	return &item, nil
}

func existsByID[T any](ctx context.Context, db *gorm.DB, op string, id uint) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translate(err, op)
	}
	return n > 0, nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, op string, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error, op)
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(ErrNotFound, op)
	}
	return nil
}
