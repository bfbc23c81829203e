package ingredient

import (
	"Meal-Prep-Backend/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMatchesCategoryByFoodType(t *testing.T) {
	category := &entities.FoodCategory{ID: uuid.New(), Name: "Proteins"}
	foodTypeID := uuid.New().String()
	typeCategory := map[string]string{foodTypeID: category.ID.String()}

	in := categoryMatchInput{FoodTypeID: foodTypeID}
	assert.True(t, matchesCategory(in, category, typeCategory))

	other := &entities.FoodCategory{ID: uuid.New(), Name: "Carbs"}
	assert.False(t, matchesCategory(in, other, typeCategory))
}

func TestMatchesCategoryFoodTypeWinsOverName(t *testing.T) {
	category := &entities.FoodCategory{ID: uuid.New(), Name: "Proteins"}
	foodTypeID := uuid.New().String()
	typeCategory := map[string]string{foodTypeID: uuid.New().String()}

	// The resolved food type points elsewhere, so the matching name is ignored.
	in := categoryMatchInput{FoodTypeID: foodTypeID, CategoryName: "Proteins"}
	assert.False(t, matchesCategory(in, category, typeCategory))
}

func TestMatchesCategoryUnresolvedTypeFallsThrough(t *testing.T) {
	category := &entities.FoodCategory{ID: uuid.New(), Name: "Proteins"}

	// Food type not in the loaded map: fall through to the name strategy.
	in := categoryMatchInput{FoodTypeID: uuid.New().String(), CategoryName: "proteins"}
	assert.True(t, matchesCategory(in, category, map[string]string{}))
}

func TestMatchesCategoryByNameCaseInsensitive(t *testing.T) {
	category := &entities.FoodCategory{ID: uuid.New(), Name: "Proteins"}

	assert.True(t, matchesCategory(categoryMatchInput{CategoryName: "PROTEINS"}, category, nil))
	assert.False(t, matchesCategory(categoryMatchInput{CategoryName: "Carbs"}, category, nil))
}

func TestMatchesCategoryByID(t *testing.T) {
	category := &entities.FoodCategory{ID: uuid.New(), Name: "Proteins"}

	assert.True(t, matchesCategory(categoryMatchInput{CategoryID: category.ID.String()}, category, nil))
	assert.False(t, matchesCategory(categoryMatchInput{CategoryID: uuid.New().String()}, category, nil))
}

func TestMatchesCategoryNothingSet(t *testing.T) {
	category := &entities.FoodCategory{ID: uuid.New(), Name: "Proteins"}

	assert.False(t, matchesCategory(categoryMatchInput{}, category, nil))
}
