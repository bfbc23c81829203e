package entities

import (
	"github.com/google/uuid"
	"time"
)

type MenuItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LocationID      uuid.UUID  `json:"location_id"`
	DisplayID       string     `json:"display_id,omitempty"`
	Name            string     `json:"name"`
	FoodCategoryID  *uuid.UUID `json:"food_category_id,omitempty"`
	FoodTypeID      *uuid.UUID `json:"food_type_id,omitempty"`
	SpecificationID *uuid.UUID `json:"specification_id,omitempty"`
	CookTypeID      *uuid.UUID `json:"cook_type_id,omitempty"`
	Quantity        string     `json:"quantity,omitempty"` // free-text, unrelated to IngredientQuantity
	Description     string     `json:"description,omitempty"`
	Price           float64    `json:"price"`
	Tags            string     `json:"tags,omitempty"`         // comma-joined set
	PrepWorkout     string     `json:"prep_workout,omitempty"` // comma-joined set
	Status          string     `json:"status"`                 // "draft", "active"

	Location     *Location            `gorm:"foreignKey:LocationID"`
	FoodCategory *FoodCategory        `gorm:"foreignKey:FoodCategoryID"`
	FoodType     *FoodType            `gorm:"foreignKey:FoodTypeID"`
	Photos       []MenuItemPhoto      `gorm:"foreignKey:MenuItemID" json:"photos,omitempty"`
	Ingredients  []MenuItemIngredient `gorm:"foreignKey:MenuItemID" json:"ingredients,omitempty"`
	Timestamp
}

type MenuItemPhoto struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MenuItemID   uuid.UUID `json:"menu_item_id"`
	PhotoURL     string    `json:"photo_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`
}

type MenuItemIngredient struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MenuItemID           uuid.UUID  `json:"menu_item_id"`
	IngredientID         uuid.UUID  `json:"ingredient_id"`
	IngredientQuantityID *uuid.UUID `json:"ingredient_quantity_id,omitempty"`
	CustomQuantity       string     `json:"custom_quantity,omitempty"`
	CreatedAt            time.Time  `gorm:"type:timestamp" json:"created_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
