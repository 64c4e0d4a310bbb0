package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/workshop/internal/models"
)

func withCategories(db *gorm.DB) *gorm.DB {
	return db.Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("categories.id ASC")
	})
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	return findAll[models.Product](ctx, r.DB, "list products", withCategories)
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return findByID[models.Product](ctx, r.DB, "get product", id, withCategories)
}

// GetProductsByIDs returns the products that exist among ids, keyed by id.
func (r *GormRepo) GetProductsByIDs(ctx context.Context, ids []uint) (map[uint]models.Product, error) {
	out := make(map[uint]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var prods []models.Product
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&prods).Error; err != nil {
		return nil, translate(err, "get products")
	}
	for _, p := range prods {
		out[p.ID] = p
	}
	return out, nil
}

func (r *GormRepo) ProductExists(ctx context.Context, id uint) (bool, error) {
	return existsByID[models.Product](ctx, r.DB, "product exists", id)
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Omit("Categories.*").Create(prod).Error; err != nil {
		return nil, translate(err, "create product")
	}
	return prod, nil
}

func (r *GormRepo) SaveProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(prod).Error; err != nil {
		return nil, translate(err, "save product")
	}
	return prod, nil
}

func (r *GormRepo) ReplaceProductCategories(ctx context.Context, prod *models.Product, cats []models.Category) error {
	assoc := r.DB.WithContext(ctx).Model(prod).Association("Categories")
	var err error
	if len(cats) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(cats)
	}
	if err != nil {
		return translate(err, "replace product categories")
	}
	prod.Categories = cats
	return nil
}

// DeleteProduct drops the category links before the row itself, so only
// order items can block the delete.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	prod := &models.Product{ID: id}
	if err := r.DB.WithContext(ctx).Model(prod).Association("Categories").Clear(); err != nil {
		return translate(err, "clear product categories")
	}
	return deleteByID[models.Product](ctx, r.DB, "delete product", id)
}

// SearchProducts is the portable fallback used when no search index is
// configured: a case-insensitive substring match on name and description.
func (r *GormRepo) SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error) {
	pattern := "%" + strings.ToLower(q) + "%"
	where := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)

	var total int64
	if err := where.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, nil, translate(err, "count products")
	}

	items := make([]models.Product, 0, limit)
	if err := where.Session(&gorm.Session{}).Scopes(withCategories).
		Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, translate(err, "search products")
	}
	return total, items, nil
}
