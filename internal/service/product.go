package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/Skotchmaster/workshop/internal/events"
	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type ProductService struct {
	Repo     *repo.GormRepo
	Producer EventPublisher
	Index    ProductIndex
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	prods, err := s.Repo.ListProducts(ctx)
	return prods, passErr(err)
}

func (s *ProductService) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "product", id)
	}
	return prod, nil
}

func (s *ProductService) Save(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("name required")
	}
	if req.Price.IsNegative() {
		return nil, invalid("price must be >= 0")
	}

	var out *models.Product
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		cats, err := resolveCategories(ctx, tx, req.CategoryIDs)
		if err != nil {
			return err
		}
		prod := &models.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			ImgURL:      req.ImgURL,
			Categories:  cats,
		}
		out, err = tx.CreateProduct(ctx, prod)
		return passErr(err)
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, events.ProductCreated, out)
	return out, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, req transport.UpdateProductRequest) (*models.Product, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, invalid("name must not be empty")
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, invalid("price must be >= 0")
	}

	var out *models.Product
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		prod, err := tx.GetProduct(ctx, id)
		if err != nil {
			return lookupErr(err, "product", id)
		}
		if req.Name != nil {
			prod.Name = *req.Name
		}
		if req.Description != nil {
			prod.Description = *req.Description
		}
		if req.Price != nil {
			prod.Price = *req.Price
		}
		if req.ImgURL != nil {
			prod.ImgURL = *req.ImgURL
		}
		if out, err = tx.SaveProduct(ctx, prod); err != nil {
			return passErr(err)
		}
		if req.CategoryIDs != nil {
			cats, err := resolveCategories(ctx, tx, *req.CategoryIDs)
			if err != nil {
				return err
			}
			if err := tx.ReplaceProductCategories(ctx, out, cats); err != nil {
				return passErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, events.ProductUpdated, out)
	return out, nil
}

// Delete is refused while order items reference the product.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		ok, err := tx.ProductExists(ctx, id)
		if err != nil {
			return passErr(err)
		}
		if !ok {
			return notFound("product", id)
		}
		if err := tx.DeleteProduct(ctx, id); err != nil {
			return deleteErr(err, "product", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	key := strconv.FormatUint(uint64(id), 10)
	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search_index_delete_failed", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Producer, events.TopicProducts, key, events.New(events.ProductDeleted, map[string]any{
		"product_id": id,
	}))
	return nil
}

func (s *ProductService) afterWrite(ctx context.Context, kind string, p *models.Product) {
	if s.Index != nil {
		if err := s.Index.IndexProduct(ctx, p); err != nil {
			logging.FromContext(ctx).Warn("search_index_failed", "product_id", p.ID, "error", err)
		}
	}
	publish(ctx, s.Producer, events.TopicProducts, strconv.FormatUint(uint64(p.ID), 10), events.New(kind, map[string]any{
		"product_id": p.ID,
		"name":       p.Name,
		"price":      p.Price.String(),
	}))
}

func resolveCategories(ctx context.Context, tx *repo.GormRepo, ids []uint) ([]models.Category, error) {
	ids = uniqueIDs(ids)
	cats, err := tx.GetCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, passErr(err)
	}
	if len(cats) != len(ids) {
		found := make(map[uint]struct{}, len(cats))
		for _, c := range cats {
			found[c.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				return nil, notFound("category", id)
			}
		}
	}
	return cats, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
