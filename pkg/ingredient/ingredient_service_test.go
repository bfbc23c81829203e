package ingredient

import (
	"Meal-Prep-Backend/entities"
	"Meal-Prep-Backend/pkg/taxonomy"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Only the listing methods are backed; everything else panics through the
// embedded nil interface if a test strays outside grouping.
type groupingTaxonomyRepository struct {
	taxonomy.TaxonomyRepository
	categories []entities.FoodCategory
	foodTypes  []entities.FoodType
}

func (f groupingTaxonomyRepository) ListCategories(context.Context) ([]entities.FoodCategory, error) {
	return f.categories, nil
}

func (f groupingTaxonomyRepository) ListTypes(context.Context, string) ([]entities.FoodType, error) {
	return f.foodTypes, nil
}

type listIngredientRepository struct {
	IngredientRepository
	ingredients []entities.Ingredient
}

func (f listIngredientRepository) List(context.Context, string, *bool) ([]entities.Ingredient, error) {
	return f.ingredients, nil
}

func TestListByCategoryGroupsThroughPrecedenceChain(t *testing.T) {
	meat := entities.FoodCategory{ID: uuid.New(), Name: "Meat"}
	dairy := entities.FoodCategory{ID: uuid.New(), Name: "Dairy"}
	chicken := entities.FoodType{ID: uuid.New(), CategoryID: meat.ID, Name: "Chicken"}

	// Resolved through the type list: Chicken belongs to Meat.
	breast := entities.Ingredient{
		ID:         uuid.New(),
		FoodTypeID: chicken.ID,
		Name:       "Chicken Breast",
		FoodType:   &chicken,
	}

	// The milk food type is absent from the type list, so grouping falls back
	// to the case-insensitive category name.
	milkType := entities.FoodType{
		ID:         uuid.New(),
		CategoryID: dairy.ID,
		Name:       "Milk",
		Category:   &entities.FoodCategory{ID: dairy.ID, Name: "dairy"},
	}
	milk := entities.Ingredient{
		ID:         uuid.New(),
		FoodTypeID: milkType.ID,
		Name:       "Raw Milk",
		FoodType:   &milkType,
	}

	svc := NewIngredientService(
		listIngredientRepository{ingredients: []entities.Ingredient{breast, milk}},
		groupingTaxonomyRepository{
			categories: []entities.FoodCategory{meat, dairy},
			foodTypes:  []entities.FoodType{chicken},
		},
	)

	groups, err := svc.ListByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Meat", groups[0].CategoryName)
	require.Len(t, groups[0].Ingredients, 1)
	assert.Equal(t, "Chicken Breast", groups[0].Ingredients[0].Name)

	assert.Equal(t, "Dairy", groups[1].CategoryName)
	require.Len(t, groups[1].Ingredients, 1)
	assert.Equal(t, "Raw Milk", groups[1].Ingredients[0].Name)
}

func TestListByCategoryUnmatchedIngredientExcluded(t *testing.T) {
	meat := entities.FoodCategory{ID: uuid.New(), Name: "Meat"}

	// Neither resolvable food type, nor category name, nor category id.
	orphan := entities.Ingredient{ID: uuid.New(), FoodTypeID: uuid.New(), Name: "Mystery"}

	svc := NewIngredientService(
		listIngredientRepository{ingredients: []entities.Ingredient{orphan}},
		groupingTaxonomyRepository{categories: []entities.FoodCategory{meat}},
	)

	groups, err := svc.ListByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Ingredients)
	assert.NotNil(t, groups[0].Ingredients)
}
