package repository

import (
	"context"
	"time"

	"github.com/indunissanka/qbread/models"
)

// The storage gateway: CRUD plus one filtered query per entity. Every write
// is a single-row insert; no cross-entity transaction is needed.

type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, order *models.Order) error
}

type DeliverySlotRepository interface {
	List(ctx context.Context) ([]models.DeliverySlot, error)
	Create(ctx context.Context, slot *models.DeliverySlot) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.DeliverySlot, error)
	FindAvailable(ctx context.Context, date time.Time) ([]models.DeliverySlot, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByLineID(ctx context.Context, lineID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// DayBounds returns the inclusive calendar-day window around t in the
// server's local time zone. The reference is converted first, so a date
// given with a foreign offset still selects the local day it falls on.
func DayBounds(t time.Time) (time.Time, time.Time) {
	t = t.In(time.Local)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, time.Local)
	return start, end
}
