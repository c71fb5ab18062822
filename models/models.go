package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// User is created on first successful LINE login. LineID is immutable once
// set; Role is never changed through the API.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LineID      *string   `gorm:"uniqueIndex" json:"lineId"`
	DisplayName string    `gorm:"not null" json:"displayName"`
	Email       *string   `json:"email"`
	Picture     *string   `json:"picture"`
	Role        string    `gorm:"not null;default:'user'" json:"role"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Price       Money  `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string `gorm:"not null" json:"image"`
	Category    string `gorm:"not null" json:"category"`
}

// DeliverySlot is an admin-defined time window. MaxOrders is a capacity hint
// only; it is not enforced at order time.
type DeliverySlot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"`
	MaxOrders int       `gorm:"not null" json:"maxOrders"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
}

// LineItem is a snapshot of product id, name, unit price and quantity taken
// at order time. Later product changes do not affect stored orders.
type LineItem struct {
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
}

// LineItems maps the item snapshot slice onto a jsonb column.
type LineItems []LineItem

func (li LineItems) Value() (driver.Value, error) {
	return json.Marshal(li)
}

func (li *LineItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, li)
	case string:
		return json.Unmarshal([]byte(v), li)
	default:
		return errors.New("unsupported type for LineItems")
	}
}

// Order rows are create-only. Address, DeliverySlotID and DeliveryTime are
// set only for the delivery method; DeliveryTime is copied from the chosen
// slot at submission time. Total is stored as submitted.
type Order struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         *uint      `json:"userId"`
	CustomerName   string     `gorm:"not null" json:"customerName"`
	Email          string     `gorm:"not null" json:"email"`
	Phone          string     `gorm:"not null" json:"phone"`
	Address        *string    `json:"address"`
	DeliveryMethod string     `gorm:"not null" json:"deliveryMethod"`
	DeliverySlotID *uint      `json:"deliverySlotId"`
	DeliveryTime   *time.Time `json:"deliveryTime"`
	Items          LineItems  `gorm:"type:jsonb;not null" json:"items"`
	Total          Money      `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

const (
	DeliveryMethodPickup   = "pickup"
	DeliveryMethodDelivery = "delivery"
)

// Migrate function for auto migration
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Product{}, &DeliverySlot{}, &Order{})
}
