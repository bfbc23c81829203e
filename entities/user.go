package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LocationID    uuid.UUID `json:"location_id"`
	Email         string    `gorm:"uniqueIndex" json:"email"`
	Password      string    `json:"-"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Role          string    `json:"role"`           // "admin", "manager", "staff", "kitchen_staff"
	AccountStatus string    `json:"account_status"` // "active", "inactive", "suspended"

	Location *Location `gorm:"foreignKey:LocationID"`
	Timestamp
}
