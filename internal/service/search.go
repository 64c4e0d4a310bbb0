package service

import (
	"context"

	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/util"
)

// ProductIndex is a full-text index over products.
type ProductIndex interface {
	IndexProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	Search(ctx context.Context, q string, from, size int) (int64, []uint, error)
}

type SearchService struct {
	Repo  *repo.GormRepo
	Index ProductIndex
}

// Search returns the total number of matches and the requested page. Without
// an index it falls back to a substring match in the database.
func (s *SearchService) Search(ctx context.Context, q string, page, size int) (int64, []models.Product, error) {
	if q == "" {
		return 0, nil, invalid("query required")
	}
	from, limit := util.Calculate(page, size)

	if s.Index == nil {
		total, items, err := s.Repo.SearchProducts(ctx, q, from, limit)
		return total, items, passErr(err)
	}

	total, ids, err := s.Index.Search(ctx, q, from, limit)
	if err != nil {
		logging.FromContext(ctx).Warn("search_index_query_failed", "query", q, "error", err)
		total, items, err := s.Repo.SearchProducts(ctx, q, from, limit)
		return total, items, passErr(err)
	}

	byID, err := s.Repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return 0, nil, passErr(err)
	}
	items := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			items = append(items, p)
		}
	}
	return total, items, nil
}
