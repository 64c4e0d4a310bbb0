package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Skotchmaster/workshop/internal/db"
	"github.com/Skotchmaster/workshop/internal/hash"
	"github.com/Skotchmaster/workshop/internal/models"
)

// OpenTestDB returns a migrated, private in-memory SQLite database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	gdb, err := db.Open(ctx, db.DriverSQLite, "", nil)
	require.NoError(t, err)
	gdb = gdb.Session(&gorm.Session{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, db.Migrate(ctx, gdb))

	t.Cleanup(func() { db.Close(gdb) })
	return gdb
}

func CreateUser(t *testing.T, gdb *gorm.DB, name, email, password string) models.User {
	t.Helper()
	h, err := hash.HashPassword(password)
	require.NoError(t, err)
	u := models.User{Name: name, Email: email, Phone: "555-0100", Password: h}
	require.NoError(t, gdb.Create(&u).Error)
	return u
}

func CreateCategory(t *testing.T, gdb *gorm.DB, name string) models.Category {
	t.Helper()
	c := models.Category{Name: name}
	require.NoError(t, gdb.Create(&c).Error)
	return c
}

func CreateProduct(t *testing.T, gdb *gorm.DB, name, price string, cats ...models.Category) models.Product {
	t.Helper()
	p := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Categories:  cats,
	}
	require.NoError(t, gdb.Omit("Categories.*").Create(&p).Error)
	return p
}

func CreateOrder(t *testing.T, gdb *gorm.DB, client models.User, items ...models.OrderItem) models.Order {
	t.Helper()
	o := models.Order{Moment: FixedTime, Status: models.OrderStatusWaitingPayment, ClientID: client.ID}
	require.NoError(t, gdb.Omit("Items", "Client", "Payment").Create(&o).Error)
	for _, it := range items {
		it.OrderID = o.ID
		require.NoError(t, gdb.Omit("Product").Create(&it).Error)
	}
	return o
}

// Event is one message captured by Recorder.
type Event struct {
	Topic string
	Key   string
	Body  map[string]any
}

// Recorder is an in-memory event publisher.
type Recorder struct {
	mu     sync.Mutex
	Events []Event
	Err    error
}

func (r *Recorder) PublishEvent(_ context.Context, topic, key string, event any) error {
	if r.Err != nil {
		return r.Err
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Topic: topic, Key: key, Body: body})
	return nil
}

func (r *Recorder) Last(t *testing.T) Event {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.Events, "no events published")
	return r.Events[len(r.Events)-1]
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Events)
}
