package service

import (
	"context"
	"strings"

	"github.com/Skotchmaster/workshop/internal/hash"
	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.ListUsers(ctx)
	return users, passErr(err)
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "user", id)
	}
	return user, nil
}

func (s *UserService) Save(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("name required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, invalid("email required")
	}
	if req.Password == "" {
		return nil, invalid("password required")
	}

	h, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, passErr(err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: h,
	}
	created, err := s.Repo.CreateUser(ctx, user)
	return created, passErr(err)
}

func (s *UserService) Update(ctx context.Context, id uint, req transport.UpdateUserRequest) (*models.User, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, invalid("name must not be empty")
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) == "" {
		return nil, invalid("email must not be empty")
	}

	var out *models.User
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		user, err := tx.GetUser(ctx, id)
		if err != nil {
			return lookupErr(err, "user", id)
		}
		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.Phone != nil {
			user.Phone = *req.Phone
		}
		out, err = tx.SaveUser(ctx, user)
		return passErr(err)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if err := tx.DeleteUser(ctx, id); err != nil {
			return deleteErr(err, "user", id)
		}
		return nil
	})
}
