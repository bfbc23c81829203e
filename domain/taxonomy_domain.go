package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCategories       = "food categories retrieved successfully"
	MessageSuccessCreateCategory      = "food category created successfully"
	MessageSuccessUpdateCategory      = "food category updated successfully"
	MessageSuccessDeleteCategory      = "food category deleted successfully"
	MessageSuccessGetTypes            = "food types retrieved successfully"
	MessageSuccessCreateType          = "food type created successfully"
	MessageSuccessUpdateType          = "food type updated successfully"
	MessageSuccessDeleteType          = "food type deleted successfully"
	MessageSuccessGetSpecifications   = "specifications retrieved successfully"
	MessageSuccessCreateSpecification = "specification created successfully"
	MessageSuccessUpdateSpecification = "specification updated successfully"
	MessageSuccessDeleteSpecification = "specification deleted successfully"
	MessageSuccessGetCookTypes        = "cook types retrieved successfully"
	MessageSuccessCreateCookType      = "cook type created successfully"
	MessageSuccessUpdateCookType      = "cook type updated successfully"
	MessageSuccessDeleteCookType      = "cook type deleted successfully"

	MessageFailedGetCategories     = "failed to retrieve food categories"
	MessageFailedCreateCategory    = "failed to create food category"
	MessageFailedUpdateCategory    = "failed to update food category"
	MessageFailedDeleteCategory    = "failed to delete food category"
	MessageFailedGetTypes          = "failed to retrieve food types"
	MessageFailedCreateType        = "failed to create food type"
	MessageFailedUpdateType        = "failed to update food type"
	MessageFailedDeleteType        = "failed to delete food type"
	MessageFailedGetSpecifications = "failed to retrieve specifications"
	MessageFailedSpecification     = "failed to process specification"
	MessageFailedGetCookTypes      = "failed to retrieve cook types"
	MessageFailedCookType          = "failed to process cook type"

	ErrCategoryNotFound      = errors.New("food category not found")
	ErrFoodTypeNotFound      = errors.New("food type not found")
	ErrSpecificationNotFound = errors.New("specification not found")
	ErrCookTypeNotFound      = errors.New("cook type not found")

	// Conflict errors: the entity is still referenced and the delete was rejected.
	ErrCategoryInUse      = errors.New("food category is still in use")
	ErrFoodTypeInUse      = errors.New("food type is still in use")
	ErrSpecificationInUse = errors.New("specification is still in use")
	ErrCookTypeInUse      = errors.New("cook type is still in use")
)

type (
	CreateCategoryRequest struct {
		Name              string `json:"name" validate:"required"`
		DisplayOrder      int    `json:"display_order"`
		ShowSpecification bool   `json:"show_specification"`
		ShowCookType      bool   `json:"show_cook_type"`
	}

	UpdateCategoryRequest struct {
		Name              *string `json:"name,omitempty" validate:"omitempty,min=1"`
		DisplayOrder      *int    `json:"display_order,omitempty"`
		ShowSpecification *bool   `json:"show_specification,omitempty"`
		ShowCookType      *bool   `json:"show_cook_type,omitempty"`
	}

	FoodCategoryResponse struct {
		ID                string    `json:"id"`
		Name              string    `json:"name"`
		DisplayOrder      int       `json:"display_order"`
		ShowSpecification bool      `json:"show_specification"`
		ShowCookType      bool      `json:"show_cook_type"`
		CreatedAt         time.Time `json:"created_at"`
		UpdatedAt         time.Time `json:"updated_at"`
	}

	CreateFoodTypeRequest struct {
		CategoryID string `json:"category_id" validate:"required,uuid"`
		Name       string `json:"name" validate:"required"`
	}

	UpdateFoodTypeRequest struct {
		CategoryID *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
		Name       *string `json:"name,omitempty" validate:"omitempty,min=1"`
	}

	FoodTypeResponse struct {
		ID           string    `json:"id"`
		CategoryID   string    `json:"category_id"`
		Name         string    `json:"name"`
		CategoryName string    `json:"category_name,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	CreateSpecificationRequest struct {
		FoodTypeID string `json:"food_type_id" validate:"required,uuid"`
		Name       string `json:"name" validate:"required"`
	}

	UpdateSpecificationRequest struct {
		FoodTypeID *string `json:"food_type_id,omitempty" validate:"omitempty,uuid"`
		Name       *string `json:"name,omitempty" validate:"omitempty,min=1"`
	}

	SpecificationResponse struct {
		ID           string    `json:"id"`
		FoodTypeID   string    `json:"food_type_id"`
		Name         string    `json:"name"`
		FoodTypeName string    `json:"food_type_name,omitempty"`
		CategoryName string    `json:"category_name,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	CreateCookTypeRequest struct {
		CategoryID string `json:"category_id" validate:"required,uuid"`
		Name       string `json:"name" validate:"required"`
	}

	UpdateCookTypeRequest struct {
		CategoryID *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
		Name       *string `json:"name,omitempty" validate:"omitempty,min=1"`
	}

	CookTypeResponse struct {
		ID           string    `json:"id"`
		CategoryID   string    `json:"category_id"`
		Name         string    `json:"name"`
		CategoryName string    `json:"category_name,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
