package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMenuItems    = "menu items retrieved successfully"
	MessageSuccessCreateMenuItem  = "menu item created successfully"
	MessageSuccessUpdateMenuItem  = "menu item updated successfully"
	MessageSuccessDeleteMenuItem  = "menu item deleted successfully"
	MessageSuccessToggleStatus    = "menu item status toggled successfully"
	MessageFailedGetMenuItems     = "failed to retrieve menu items"
	MessageFailedCreateMenuItem   = "failed to create menu item"
	MessageFailedUpdateMenuItem   = "failed to update menu item"
	MessageFailedDeleteMenuItem   = "failed to delete menu item"
	MessageFailedToggleStatus     = "failed to toggle menu item status"
	MessageFailedUploadMenuPhotos = "failed to upload menu item photos"

	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrMenuItemNameRequired = errors.New("menu item name must not be empty")
	ErrLocationIDRequired   = errors.New("location_id is required")
	ErrNoImagePhotos        = errors.New("no image data in uploaded photos")
	ErrInvalidPhotoData     = errors.New("photo is not a valid image data URL")
)

const (
	MenuStatusDraft  = "draft"
	MenuStatusActive = "active"

	// Backends reject blank names, so bare drafts get a placeholder.
	DraftMenuItemName = "New Menu Item"
)

type (
	MenuItemIngredientRequest struct {
		IngredientID         string `json:"ingredient_id" validate:"required,uuid"`
		IngredientQuantityID string `json:"ingredient_quantity_id" validate:"omitempty,uuid"`
		CustomQuantity       string `json:"custom_quantity"`
	}

	CreateMenuItemRequest struct {
		LocationID      string                      `json:"location_id" validate:"required,uuid"`
		Name            string                      `json:"name"`
		FoodCategoryID  string                      `json:"food_category_id" validate:"omitempty,uuid"`
		FoodTypeID      string                      `json:"food_type_id" validate:"omitempty,uuid"`
		SpecificationID string                      `json:"specification_id" validate:"omitempty,uuid"`
		CookTypeID      string                      `json:"cook_type_id" validate:"omitempty,uuid"`
		Quantity        string                      `json:"quantity"`
		Description     string                      `json:"description"`
		Price           float64                     `json:"price" validate:"min=0"`
		Tags            string                      `json:"tags"`
		PrepWorkout     string                      `json:"prep_workout"`
		Status          string                      `json:"status" validate:"omitempty,oneof=draft active"`
		Photos          []string                    `json:"photos"` // data URLs
		Ingredients     []MenuItemIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	UpdateMenuItemRequest struct {
		Name            *string                     `json:"name,omitempty"`
		FoodCategoryID  *string                     `json:"food_category_id,omitempty"`
		FoodTypeID      *string                     `json:"food_type_id,omitempty"`
		SpecificationID *string                     `json:"specification_id,omitempty"`
		CookTypeID      *string                     `json:"cook_type_id,omitempty"`
		Quantity        *string                     `json:"quantity,omitempty"`
		Description     *string                     `json:"description,omitempty"`
		Price           *float64                    `json:"price,omitempty" validate:"omitempty,min=0"`
		Tags            *string                     `json:"tags,omitempty"`
		PrepWorkout     *string                     `json:"prep_workout,omitempty"`
		Status          *string                     `json:"status,omitempty" validate:"omitempty,oneof=draft active"`
		Photos          []string                    `json:"photos,omitempty"`
		Ingredients     []MenuItemIngredientRequest `json:"ingredients,omitempty" validate:"omitempty,dive"`
	}

	MenuItemPhotoResponse struct {
		ID           string `json:"id"`
		PhotoURL     string `json:"photo_url"`
		DisplayOrder int    `json:"display_order"`
	}

	MenuItemIngredientResponse struct {
		ID                   string  `json:"id"`
		IngredientID         string  `json:"ingredient_id"`
		IngredientQuantityID string  `json:"ingredient_quantity_id,omitempty"`
		CustomQuantity       string  `json:"custom_quantity,omitempty"`
		IngredientName       string  `json:"ingredient_name,omitempty"`
		QuantityValue        string  `json:"quantity_value,omitempty"`
		QuantityPrice        float64 `json:"quantity_price,omitempty"`
	}

	MenuItemResponse struct {
		ID              string                       `json:"id"`
		LocationID      string                       `json:"location_id"`
		DisplayID       string                       `json:"display_id,omitempty"`
		Name            string                       `json:"name"`
		FoodCategoryID  string                       `json:"food_category_id,omitempty"`
		FoodTypeID      string                       `json:"food_type_id,omitempty"`
		SpecificationID string                       `json:"specification_id,omitempty"`
		CookTypeID      string                       `json:"cook_type_id,omitempty"`
		Quantity        string                       `json:"quantity,omitempty"`
		Description     string                       `json:"description,omitempty"`
		Price           float64                      `json:"price"`
		Tags            string                       `json:"tags,omitempty"`
		PrepWorkout     string                       `json:"prep_workout,omitempty"`
		Status          string                       `json:"status"`
		Photos          []MenuItemPhotoResponse      `json:"photos,omitempty"`
		Ingredients     []MenuItemIngredientResponse `json:"ingredients,omitempty"`
		CreatedAt       time.Time                    `json:"created_at"`
		UpdatedAt       time.Time                    `json:"updated_at"`
	}
)
