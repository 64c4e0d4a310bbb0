package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Skotchmaster/workshop/internal/events"
	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type PaymentService struct {
	Repo     *repo.GormRepo
	Producer EventPublisher
	Now      func() time.Time
}

func (s *PaymentService) FindAll(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.Repo.ListPayments(ctx)
	return payments, passErr(err)
}

func (s *PaymentService) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	p, err := s.Repo.GetPayment(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "payment", id)
	}
	return p, nil
}

// CreatePayment binds a new payment to an existing order. The moment
// defaults to now when absent.
func (s *PaymentService) CreatePayment(ctx context.Context, req transport.CreatePaymentRequest) (*models.Payment, error) {
	moment := s.now()
	if req.Moment != nil {
		moment = req.Moment.UTC()
	}

	var out *models.Payment
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		ok, err := tx.OrderExists(ctx, req.OrderID)
		if err != nil {
			return passErr(err)
		}
		if !ok {
			return notFound("order", req.OrderID)
		}
		out, err = tx.CreatePayment(ctx, &models.Payment{Moment: moment, OrderID: req.OrderID})
		return passErr(err)
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, events.PaymentCreated, out)
	return out, nil
}

func (s *PaymentService) Update(ctx context.Context, id uint, req transport.UpdatePaymentRequest) (*models.Payment, error) {
	var out *models.Payment
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		p, err := tx.GetPayment(ctx, id)
		if err != nil {
			return lookupErr(err, "payment", id)
		}
		if req.Moment != nil {
			p.Moment = req.Moment.UTC()
		}
		out, err = tx.SavePayment(ctx, p)
		return passErr(err)
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, events.PaymentUpdated, out)
	return out, nil
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if err := tx.DeletePayment(ctx, id); err != nil {
			return deleteErr(err, "payment", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	publish(ctx, s.Producer, events.TopicPayments, strconv.FormatUint(uint64(id), 10), events.New(events.PaymentDeleted, map[string]any{
		"payment_id": id,
	}))
	return nil
}

func (s *PaymentService) emit(ctx context.Context, kind string, p *models.Payment) {
	publish(ctx, s.Producer, events.TopicPayments, strconv.FormatUint(uint64(p.ID), 10), events.New(kind, map[string]any{
		"payment_id": p.ID,
		"order_id":   p.OrderID,
		"moment":     p.Moment,
	}))
}

func (s *PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
