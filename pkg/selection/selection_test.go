package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		Categories: []Category{
			{ID: "cat-meat", Name: "Meat", ShowSpecification: true, ShowCookType: true},
			{ID: "cat-veg", Name: "Vegetables", ShowSpecification: false, ShowCookType: false},
		},
		FoodTypes: []FoodType{
			{ID: "ft-chicken", CategoryID: "cat-meat", Name: "Chicken"},
			{ID: "ft-beef", CategoryID: "cat-meat", Name: "Beef"},
			{ID: "ft-carrot", CategoryID: "cat-veg", Name: "Carrot"},
		},
		Specifications: []Specification{
			{ID: "sp-breast", FoodTypeID: "ft-chicken", Name: "Breast"},
			{ID: "sp-thigh", FoodTypeID: "ft-chicken", Name: "Thigh"},
			{ID: "sp-baby", FoodTypeID: "ft-carrot", Name: "Baby"},
		},
		CookTypes: []CookType{
			{ID: "ct-grilled", CategoryID: "cat-meat", Name: "Grilled"},
			{ID: "ct-steamed", CategoryID: "cat-veg", Name: "Steamed"},
		},
	}
}

func TestWithCategoryClearsDownstreamAtomically(t *testing.T) {
	s := Selection{
		CategoryID:      "cat-meat",
		FoodTypeID:      "ft-chicken",
		SpecificationID: "sp-breast",
		CookTypeID:      "ct-grilled",
	}

	next := s.WithCategory("cat-veg")

	assert.Equal(t, "cat-veg", next.CategoryID)
	assert.Empty(t, next.FoodTypeID)
	assert.Empty(t, next.SpecificationID)
	assert.Empty(t, next.CookTypeID)
}

func TestWithCategorySameValueIsNoop(t *testing.T) {
	s := Selection{
		CategoryID: "cat-meat",
		FoodTypeID: "ft-chicken",
	}

	assert.Equal(t, s, s.WithCategory("cat-meat"))
}

func TestWithFoodTypeClearsSpecificationOnly(t *testing.T) {
	s := Selection{
		CategoryID:      "cat-meat",
		FoodTypeID:      "ft-chicken",
		SpecificationID: "sp-breast",
		CookTypeID:      "ct-grilled",
	}

	next := s.WithFoodType("ft-beef")

	assert.Equal(t, "cat-meat", next.CategoryID)
	assert.Equal(t, "ft-beef", next.FoodTypeID)
	assert.Empty(t, next.SpecificationID)
	assert.Equal(t, "ct-grilled", next.CookTypeID)
}

func TestFoodTypeOptions(t *testing.T) {
	c := testCatalog()

	assert.Nil(t, c.FoodTypeOptions(Selection{}))

	opts := c.FoodTypeOptions(Selection{CategoryID: "cat-meat"})
	require.Len(t, opts, 2)
	assert.Equal(t, "ft-chicken", opts[0].ID)
	assert.Equal(t, "ft-beef", opts[1].ID)
}

func TestSpecificationOptions(t *testing.T) {
	c := testCatalog()

	t.Run("empty without food type", func(t *testing.T) {
		assert.Nil(t, c.SpecificationOptions(Selection{CategoryID: "cat-meat"}))
	})

	t.Run("lists specs of the food type", func(t *testing.T) {
		opts := c.SpecificationOptions(Selection{CategoryID: "cat-meat", FoodTypeID: "ft-chicken"})
		require.Len(t, opts, 2)
		assert.Equal(t, "sp-breast", opts[0].ID)
	})

	t.Run("empty when category hides specifications", func(t *testing.T) {
		// ft-carrot has a specification, but the owning category opts out.
		opts := c.SpecificationOptions(Selection{CategoryID: "cat-veg", FoodTypeID: "ft-carrot"})
		assert.Nil(t, opts)
	})

	t.Run("owning category resolved from the food type", func(t *testing.T) {
		// Category not set on the selection; the food type still knows its owner.
		opts := c.SpecificationOptions(Selection{FoodTypeID: "ft-chicken"})
		require.Len(t, opts, 2)
	})

	t.Run("empty when no specs exist for the food type", func(t *testing.T) {
		assert.Nil(t, c.SpecificationOptions(Selection{CategoryID: "cat-meat", FoodTypeID: "ft-beef"}))
	})
}

func TestCookTypeOptions(t *testing.T) {
	c := testCatalog()

	assert.Nil(t, c.CookTypeOptions(Selection{}))

	opts := c.CookTypeOptions(Selection{CategoryID: "cat-meat"})
	require.Len(t, opts, 1)
	assert.Equal(t, "ct-grilled", opts[0].ID)

	// show_cook_type=false hides options even though a row exists.
	assert.Nil(t, c.CookTypeOptions(Selection{CategoryID: "cat-veg"}))
}
