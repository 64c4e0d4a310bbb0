package service

import (
	"context"
	"strings"

	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type CategoryService struct {
	Repo *repo.GormRepo
}

func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	cats, err := s.Repo.ListCategories(ctx)
	return cats, passErr(err)
}

func (s *CategoryService) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	cat, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "category", id)
	}
	return cat, nil
}

func (s *CategoryService) Save(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("name required")
	}
	cat, err := s.Repo.CreateCategory(ctx, &models.Category{Name: req.Name})
	return cat, passErr(err)
}

func (s *CategoryService) Update(ctx context.Context, id uint, req transport.UpdateCategoryRequest) (*models.Category, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, invalid("name must not be empty")
	}

	var out *models.Category
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		cat, err := tx.GetCategory(ctx, id)
		if err != nil {
			return lookupErr(err, "category", id)
		}
		if req.Name != nil {
			cat.Name = *req.Name
		}
		out, err = tx.SaveCategory(ctx, cat)
		return passErr(err)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete is refused while any product is linked to the category.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if err := tx.DeleteCategory(ctx, id); err != nil {
			return deleteErr(err, "category", id)
		}
		return nil
	})
}
