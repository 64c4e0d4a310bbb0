package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/workshop/internal/models"
)

func (r *GormRepo) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return findAll[models.Payment](ctx, r.DB, "list payments")
}

func (r *GormRepo) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	return findByID[models.Payment](ctx, r.DB, "get payment", id)
}

func (r *GormRepo) PaymentExists(ctx context.Context, id uint) (bool, error) {
	return existsByID[models.Payment](ctx, r.DB, "payment exists", id)
}

func (r *GormRepo) CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, translate(err, "create payment")
	}
	return p, nil
}

func (r *GormRepo) SavePayment(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(p).Error; err != nil {
		return nil, translate(err, "save payment")
	}
	return p, nil
}

func (r *GormRepo) DeletePayment(ctx context.Context, id uint) error {
	return deleteByID[models.Payment](ctx, r.DB, "delete payment", id)
}
