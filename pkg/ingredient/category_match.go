package ingredient

import (
	"Meal-Prep-Backend/entities"
	"strings"
)

// categoryMatchInput is the subset of an ingredient record that category
// grouping looks at. Older backend payloads are inconsistently denormalized —
// some carry only a food type id, some only a category name, some only a
// category id — so membership is resolved through an ordered chain of
// strategies rather than a single field.
//
// Compatibility shim: collapse to a direct category_id match once every
// payload carries one consistent shape.
type categoryMatchInput struct {
	FoodTypeID   string
	CategoryID   string
	CategoryName string
}

// matchesCategory applies the precedence chain:
//  1. resolve the food type's parent category when the type list is loaded
//  2. case-insensitive category name match
//  3. direct category id match
//  4. no match — the ingredient is excluded from every category view
func matchesCategory(in categoryMatchInput, category *entities.FoodCategory, typeCategory map[string]string) bool {
	if in.FoodTypeID != "" {
		if categoryID, ok := typeCategory[in.FoodTypeID]; ok {
			return categoryID == category.ID.String()
		}
	}
	if in.CategoryName != "" {
		return strings.EqualFold(in.CategoryName, category.Name)
	}
	if in.CategoryID != "" {
		return in.CategoryID == category.ID.String()
	}
	return false
}
