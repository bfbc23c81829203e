package entities

import (
	"github.com/google/uuid"
	"time"
)

type Ingredient struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodTypeID      uuid.UUID  `json:"food_type_id"`
	SpecificationID *uuid.UUID `json:"specification_id,omitempty"`
	CookTypeID      *uuid.UUID `json:"cook_type_id,omitempty"`
	Name            string     `json:"name,omitempty"`
	Description     string     `json:"description,omitempty"`
	IsActive        bool       `json:"is_active"`

	FoodType      *FoodType            `gorm:"foreignKey:FoodTypeID"`
	Specification *Specification       `gorm:"foreignKey:SpecificationID"`
	CookType      *CookType            `gorm:"foreignKey:CookTypeID"`
	Quantities    []IngredientQuantity `gorm:"foreignKey:IngredientID" json:"quantities,omitempty"`
	Timestamp
}

type IngredientQuantity struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	IngredientID  uuid.UUID `json:"ingredient_id"`
	QuantityValue string    `json:"quantity_value"`
	QuantityGrams int       `json:"quantity_grams,omitempty"`
	Price         float64   `json:"price"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `gorm:"type:timestamp" json:"created_at"`
}
