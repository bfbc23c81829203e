package entities

import (
	"github.com/google/uuid"
	"time"
)

type Order struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LocationID  uuid.UUID  `json:"location_id"`
	CustomerID  *uuid.UUID `json:"customer_id,omitempty"`
	OrderNumber string     `json:"order_number,omitempty"`
	Status      string     `json:"status"` // "received", "preparing", "ready", "delivered", "cancelled"
	TotalPrice  float64    `json:"total_price"`
	Notes       string     `json:"notes,omitempty"`
	OrderDate   time.Time  `gorm:"type:timestamp" json:"order_date"`
	DeliveredAt *time.Time `gorm:"type:timestamp" json:"delivered_at,omitempty"`

	Location *Location   `gorm:"foreignKey:LocationID"`
	Customer *Customer   `gorm:"foreignKey:CustomerID"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Timestamp
}

type OrderItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID    uuid.UUID  `json:"order_id"`
	MenuItemID *uuid.UUID `json:"menu_item_id,omitempty"`
	Quantity   int        `json:"quantity"`
	UnitPrice  float64    `json:"unit_price"`
	TotalPrice float64    `json:"total_price"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `gorm:"type:timestamp" json:"created_at"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
}
