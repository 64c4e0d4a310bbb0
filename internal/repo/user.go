package repo

import (
	"context"

	"github.com/Skotchmaster/workshop/internal/models"
)

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, r.DB, "list users")
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return findByID[models.User](ctx, r.DB, "get user", id)
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err, "get user by email")
	}
	return &user, nil
}

func (r *GormRepo) UserExists(ctx context.Context, id uint) (bool, error) {
	return existsByID[models.User](ctx, r.DB, "user exists", id)
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translate(err, "create user")
	}
	return user, nil
}

func (r *GormRepo) SaveUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.DB.WithContext(ctx).Save(user).Error; err != nil {
		return nil, translate(err, "save user")
	}
	return user, nil
}

func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	return deleteByID[models.User](ctx, r.DB, "delete user", id)
}
