package entities

import (
	"github.com/google/uuid"
)

type Location struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Currency     string    `json:"currency"`
	LocationType string    `json:"location_type,omitempty"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Status       string    `json:"status"` // "active", "inactive"

	Timestamp
}
