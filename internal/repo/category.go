package repo

import (
	"context"

	"github.com/Skotchmaster/workshop/internal/models"
)

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return findAll[models.Category](ctx, r.DB, "list categories")
}

func (r *GormRepo) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return findByID[models.Category](ctx, r.DB, "get category", id)
}

// GetCategoriesByIDs returns the categories that exist among ids, ordered by id.
func (r *GormRepo) GetCategoriesByIDs(ctx context.Context, ids []uint) ([]models.Category, error) {
	cats := make([]models.Category, 0, len(ids))
	if len(ids) == 0 {
		return cats, nil
	}
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&cats).Error; err != nil {
		return nil, translate(err, "get categories")
	}
	return cats, nil
}

func (r *GormRepo) CategoryExists(ctx context.Context, id uint) (bool, error) {
	return existsByID[models.Category](ctx, r.DB, "category exists", id)
}

func (r *GormRepo) CreateCategory(ctx context.Context, cat *models.Category) (*models.Category, error) {
	if err := r.DB.WithContext(ctx).Create(cat).Error; err != nil {
		return nil, translate(err, "create category")
	}
	return cat, nil
}

func (r *GormRepo) SaveCategory(ctx context.Context, cat *models.Category) (*models.Category, error) {
	if err := r.DB.WithContext(ctx).Save(cat).Error; err != nil {
		return nil, translate(err, "save category")
	}
	return cat, nil
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	return deleteByID[models.Category](ctx, r.DB, "delete category", id)
}
