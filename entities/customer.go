package entities

import (
	"github.com/google/uuid"
)

type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LocationID    uuid.UUID `json:"location_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Address       string    `json:"address,omitempty"`
	AccountStatus string    `json:"account_status"` // "active", "inactive", "suspended"
	TotalPreps    int       `json:"total_preps"`

	Location *Location `gorm:"foreignKey:LocationID"`
	Timestamp
}
