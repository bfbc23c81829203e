package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetIngredients          = "ingredients retrieved successfully"
	MessageSuccessGetIngredientsByCat     = "ingredients grouped by category successfully"
	MessageSuccessCreateIngredient        = "ingredient created successfully"
	MessageSuccessUpdateIngredient        = "ingredient updated successfully"
	MessageSuccessDeleteIngredient        = "ingredient deleted successfully"
	MessageFailedGetIngredients           = "failed to retrieve ingredients"
	MessageFailedCreateIngredient         = "failed to create ingredient"
	MessageFailedUpdateIngredient         = "failed to update ingredient"
	MessageFailedDeleteIngredient         = "failed to delete ingredient"

	ErrIngredientNotFound        = errors.New("ingredient not found")
	ErrIngredientInUse           = errors.New("ingredient is still in use")
	ErrSpecificationWrongType    = errors.New("specification does not belong to the ingredient's food type")
	ErrCookTypeWrongCategory     = errors.New("cook type does not belong to the food type's category")
	ErrIngredientFoodTypeMissing = errors.New("food type is required")
)

type (
	QuantityOptionRequest struct {
		QuantityValue string  `json:"quantity_value"`
		QuantityGrams int     `json:"quantity_grams"`
		Price         float64 `json:"price" validate:"min=0"`
		IsAvailable   bool    `json:"is_available"`
	}

	CreateIngredientRequest struct {
		FoodTypeID      string                  `json:"food_type_id" validate:"required,uuid"`
		SpecificationID string                  `json:"specification_id" validate:"omitempty,uuid"`
		CookTypeID      string                  `json:"cook_type_id" validate:"omitempty,uuid"`
		Name            string                  `json:"name"`
		Description     string                  `json:"description"`
		Quantities      []QuantityOptionRequest `json:"quantities" validate:"dive"`
	}

	UpdateIngredientRequest struct {
		FoodTypeID      *string                 `json:"food_type_id,omitempty" validate:"omitempty,uuid"`
		SpecificationID *string                 `json:"specification_id,omitempty"`
		CookTypeID      *string                 `json:"cook_type_id,omitempty"`
		Name            *string                 `json:"name,omitempty"`
		Description     *string                 `json:"description,omitempty"`
		IsActive        *bool                   `json:"is_active,omitempty"`
		Quantities      []QuantityOptionRequest `json:"quantities,omitempty" validate:"omitempty,dive"`
	}

	IngredientQuantityResponse struct {
		ID            string  `json:"id"`
		QuantityValue string  `json:"quantity_value"`
		QuantityGrams int     `json:"quantity_grams,omitempty"`
		Price         float64 `json:"price"`
		IsAvailable   bool    `json:"is_available"`
	}

	IngredientResponse struct {
		ID                string                       `json:"id"`
		FoodTypeID        string                       `json:"food_type_id"`
		SpecificationID   string                       `json:"specification_id,omitempty"`
		CookTypeID        string                       `json:"cook_type_id,omitempty"`
		Name              string                       `json:"name,omitempty"`
		Description       string                       `json:"description,omitempty"`
		IsActive          bool                         `json:"is_active"`
		FoodTypeName      string                       `json:"food_type_name,omitempty"`
		CategoryID        string                       `json:"category_id,omitempty"`
		CategoryName      string                       `json:"category_name,omitempty"`
		SpecificationName string                       `json:"specification_name,omitempty"`
		CookTypeName      string                       `json:"cook_type_name,omitempty"`
		Quantities        []IngredientQuantityResponse `json:"quantities,omitempty"`
		CreatedAt         time.Time                    `json:"created_at"`
	}

	IngredientCategoryGroup struct {
		CategoryID   string               `json:"category_id"`
		CategoryName string               `json:"category_name"`
		Ingredients  []IngredientResponse `json:"ingredients"`
	}
)
