package entities

import (
	"github.com/google/uuid"
)

type FoodCategory struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name              string    `json:"name"`
	DisplayOrder      int       `json:"display_order"`
	ShowSpecification bool      `json:"show_specification"`
	ShowCookType      bool      `json:"show_cook_type"`

	Timestamp
}

type FoodType struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`

	Category *FoodCategory `gorm:"foreignKey:CategoryID"`
	Timestamp
}

type Specification struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodTypeID uuid.UUID `json:"food_type_id"`
	Name       string    `json:"name"`

	FoodType *FoodType `gorm:"foreignKey:FoodTypeID"`
	Timestamp
}

type CookType struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`

	Category *FoodCategory `gorm:"foreignKey:CategoryID"`
	Timestamp
}
