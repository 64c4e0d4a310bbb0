package service

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/testutil"
)

type testEnv struct {
	DB       *gorm.DB
	Repo     *repo.GormRepo
	Events   *testutil.Recorder
	Users    *UserService
	Cats     *CategoryService
	Products *ProductService
	Orders   *OrderService
	Items    *OrderItemService
	Payments *PaymentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.OpenTestDB(t)
	r := &repo.GormRepo{DB: db}
	rec := &testutil.Recorder{}
	return &testEnv{
		DB:       db,
		Repo:     r,
		Events:   rec,
		Users:    &UserService{Repo: r},
		Cats:     &CategoryService{Repo: r},
		Products: &ProductService{Repo: r, Producer: rec},
		Orders:   &OrderService{Repo: r, Producer: rec, Now: func() time.Time { return testutil.FixedTime }},
		Items:    &OrderItemService{Repo: r, Producer: rec},
		Payments: &PaymentService{Repo: r, Producer: rec, Now: func() time.Time { return testutil.FixedTime }},
	}
}

func ptr[T any](v T) *T { return &v }
