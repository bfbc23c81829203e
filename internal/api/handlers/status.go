package handlers

import (
	"Meal-Prep-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps service errors onto HTTP statuses. Missing rows are 404,
// rejected deletes of referenced rows are 409, everything else is a 400.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrFoodTypeNotFound),
		errors.Is(err, domain.ErrSpecificationNotFound),
		errors.Is(err, domain.ErrCookTypeNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, domain.ErrCategoryInUse),
		errors.Is(err, domain.ErrFoodTypeInUse),
		errors.Is(err, domain.ErrSpecificationInUse),
		errors.Is(err, domain.ErrCookTypeInUse),
		errors.Is(err, domain.ErrIngredientInUse),
		errors.Is(err, domain.ErrLocationInUse),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrCustomerEmailExists):
		return fiber.StatusConflict

	case errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized

	case errors.Is(err, domain.ErrAccountInactive),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden

	default:
		return fiber.StatusBadRequest
	}
}
