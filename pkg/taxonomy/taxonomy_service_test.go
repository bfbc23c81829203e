package taxonomy

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/entities"
	"Meal-Prep-Backend/pkg/selection"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeTaxonomyRepository keeps the four taxonomy tables in memory. refs maps
// an id to its simulated reference count.
type fakeTaxonomyRepository struct {
	categories []entities.FoodCategory
	foodTypes  []entities.FoodType
	specs      []entities.Specification
	cookTypes  []entities.CookType
	refs       map[string]int64

	listCategoriesCalls int
}

func (f *fakeTaxonomyRepository) ListCategories(ctx context.Context) ([]entities.FoodCategory, error) {
	f.listCategoriesCalls++
	return f.categories, nil
}

func (f *fakeTaxonomyRepository) GetCategoryByID(ctx context.Context, id string) (*entities.FoodCategory, error) {
	for i := range f.categories {
		if f.categories[i].ID.String() == id {
			return &f.categories[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaxonomyRepository) CreateCategory(ctx context.Context, category *entities.FoodCategory) error {
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeTaxonomyRepository) UpdateCategory(ctx context.Context, category *entities.FoodCategory) error {
	for i := range f.categories {
		if f.categories[i].ID == category.ID {
			f.categories[i] = *category
		}
	}
	return nil
}

func (f *fakeTaxonomyRepository) DeleteCategory(ctx context.Context, id string) error {
	kept := f.categories[:0]
	for _, category := range f.categories {
		if category.ID.String() != id {
			kept = append(kept, category)
		}
	}
	f.categories = kept
	return nil
}

func (f *fakeTaxonomyRepository) CountCategoryReferences(ctx context.Context, id string) (int64, error) {
	return f.refs[id], nil
}

func (f *fakeTaxonomyRepository) ListTypes(ctx context.Context, categoryID string) ([]entities.FoodType, error) {
	if categoryID == "" {
		return f.foodTypes, nil
	}
	var out []entities.FoodType
	for _, foodType := range f.foodTypes {
		if foodType.CategoryID.String() == categoryID {
			out = append(out, foodType)
		}
	}
	return out, nil
}

func (f *fakeTaxonomyRepository) GetTypeByID(ctx context.Context, id string) (*entities.FoodType, error) {
	for i := range f.foodTypes {
		if f.foodTypes[i].ID.String() == id {
			return &f.foodTypes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaxonomyRepository) CreateType(ctx context.Context, foodType *entities.FoodType) error {
	f.foodTypes = append(f.foodTypes, *foodType)
	return nil
}

func (f *fakeTaxonomyRepository) UpdateType(ctx context.Context, foodType *entities.FoodType) error {
	for i := range f.foodTypes {
		if f.foodTypes[i].ID == foodType.ID {
			f.foodTypes[i] = *foodType
		}
	}
	return nil
}

func (f *fakeTaxonomyRepository) DeleteType(ctx context.Context, id string) error {
	kept := f.foodTypes[:0]
	for _, foodType := range f.foodTypes {
		if foodType.ID.String() != id {
			kept = append(kept, foodType)
		}
	}
	f.foodTypes = kept
	return nil
}

func (f *fakeTaxonomyRepository) CountTypeReferences(ctx context.Context, id string) (int64, error) {
	return f.refs[id], nil
}

func (f *fakeTaxonomyRepository) ListSpecifications(ctx context.Context, foodTypeID string) ([]entities.Specification, error) {
	if foodTypeID == "" {
		return f.specs, nil
	}
	var out []entities.Specification
	for _, spec := range f.specs {
		if spec.FoodTypeID.String() == foodTypeID {
			out = append(out, spec)
		}
	}
	return out, nil
}

func (f *fakeTaxonomyRepository) GetSpecificationByID(ctx context.Context, id string) (*entities.Specification, error) {
	for i := range f.specs {
		if f.specs[i].ID.String() == id {
			return &f.specs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaxonomyRepository) CreateSpecification(ctx context.Context, spec *entities.Specification) error {
	f.specs = append(f.specs, *spec)
	return nil
}

func (f *fakeTaxonomyRepository) UpdateSpecification(ctx context.Context, spec *entities.Specification) error {
	for i := range f.specs {
		if f.specs[i].ID == spec.ID {
			f.specs[i] = *spec
		}
	}
	return nil
}

func (f *fakeTaxonomyRepository) DeleteSpecification(ctx context.Context, id string) error {
	kept := f.specs[:0]
	for _, spec := range f.specs {
		if spec.ID.String() != id {
			kept = append(kept, spec)
		}
	}
	f.specs = kept
	return nil
}

func (f *fakeTaxonomyRepository) CountSpecificationReferences(ctx context.Context, id string) (int64, error) {
	return f.refs[id], nil
}

func (f *fakeTaxonomyRepository) ListCookTypes(ctx context.Context, categoryID string) ([]entities.CookType, error) {
	if categoryID == "" {
		return f.cookTypes, nil
	}
	var out []entities.CookType
	for _, cookType := range f.cookTypes {
		if cookType.CategoryID.String() == categoryID {
			out = append(out, cookType)
		}
	}
	return out, nil
}

func (f *fakeTaxonomyRepository) GetCookTypeByID(ctx context.Context, id string) (*entities.CookType, error) {
	for i := range f.cookTypes {
		if f.cookTypes[i].ID.String() == id {
			return &f.cookTypes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaxonomyRepository) CreateCookType(ctx context.Context, cookType *entities.CookType) error {
	f.cookTypes = append(f.cookTypes, *cookType)
	return nil
}

func (f *fakeTaxonomyRepository) UpdateCookType(ctx context.Context, cookType *entities.CookType) error {
	for i := range f.cookTypes {
		if f.cookTypes[i].ID == cookType.ID {
			f.cookTypes[i] = *cookType
		}
	}
	return nil
}

func (f *fakeTaxonomyRepository) DeleteCookType(ctx context.Context, id string) error {
	kept := f.cookTypes[:0]
	for _, cookType := range f.cookTypes {
		if cookType.ID.String() != id {
			kept = append(kept, cookType)
		}
	}
	f.cookTypes = kept
	return nil
}

func (f *fakeTaxonomyRepository) CountCookTypeReferences(ctx context.Context, id string) (int64, error) {
	return f.refs[id], nil
}

// recordingCache is a real in-memory cache that also records invalidations.
type recordingCache struct {
	store       map[string][]byte
	invalidated []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{store: map[string][]byte{}}
}

func (c *recordingCache) Get(ctx context.Context, key string, dest any) bool {
	raw, ok := c.store[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *recordingCache) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.store[key] = raw
}

func (c *recordingCache) Invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		delete(c.store, key)
		c.invalidated = append(c.invalidated, key)
	}
}

func (c *recordingCache) InvalidatePrefix(ctx context.Context, prefix string) {
	for key := range c.store {
		if strings.HasPrefix(key, prefix) {
			delete(c.store, key)
		}
	}
	c.invalidated = append(c.invalidated, prefix+"*")
}

func newFakeRepo() *fakeTaxonomyRepository {
	return &fakeTaxonomyRepository{refs: map[string]int64{}}
}

func TestListCategoriesReadsThroughCache(t *testing.T) {
	repo := newFakeRepo()
	repo.categories = []entities.FoodCategory{
		{ID: uuid.New(), Name: "Proteins"},
		{ID: uuid.New(), Name: "Carbs"},
	}
	svc := NewTaxonomyService(repo, newRecordingCache())

	first, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	second, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCategoriesCalls)
}

func TestCreateCategoryInvalidatesCategoryList(t *testing.T) {
	repo := newFakeRepo()
	cache := newRecordingCache()
	svc := NewTaxonomyService(repo, cache)

	_, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), domain.CreateCategoryRequest{Name: "Proteins"})
	require.NoError(t, err)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Proteins", categories[0].Name)
	assert.Equal(t, 2, repo.listCategoriesCalls)
	assert.Contains(t, cache.invalidated, cacheKeyCategories)
}

func TestDeleteCategoryRejectedWhenReferenced(t *testing.T) {
	repo := newFakeRepo()
	category := entities.FoodCategory{ID: uuid.New(), Name: "Proteins"}
	repo.categories = []entities.FoodCategory{category}
	repo.refs[category.ID.String()] = 3
	svc := NewTaxonomyService(repo, newRecordingCache())

	err := svc.DeleteCategory(context.Background(), category.ID.String())

	assert.ErrorIs(t, err, domain.ErrCategoryInUse)
	require.Len(t, repo.categories, 1)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := NewTaxonomyService(newFakeRepo(), newRecordingCache())

	err := svc.DeleteCategory(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDeleteUnreferencedCategory(t *testing.T) {
	repo := newFakeRepo()
	category := entities.FoodCategory{ID: uuid.New(), Name: "Sides"}
	repo.categories = []entities.FoodCategory{category}
	svc := NewTaxonomyService(repo, newRecordingCache())

	require.NoError(t, svc.DeleteCategory(context.Background(), category.ID.String()))
	assert.Empty(t, repo.categories)
}

func TestDeleteFoodTypeRejectedWhenReferenced(t *testing.T) {
	repo := newFakeRepo()
	foodType := entities.FoodType{ID: uuid.New(), CategoryID: uuid.New(), Name: "Chicken"}
	repo.foodTypes = []entities.FoodType{foodType}
	repo.refs[foodType.ID.String()] = 1
	svc := NewTaxonomyService(repo, newRecordingCache())

	err := svc.DeleteType(context.Background(), foodType.ID.String())

	assert.ErrorIs(t, err, domain.ErrFoodTypeInUse)
	require.Len(t, repo.foodTypes, 1)
}

func TestCreateTypeRequiresExistingCategory(t *testing.T) {
	svc := NewTaxonomyService(newFakeRepo(), newRecordingCache())

	_, err := svc.CreateType(context.Background(), domain.CreateFoodTypeRequest{
		CategoryID: uuid.New().String(),
		Name:       "Chicken",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestSelectionOptions(t *testing.T) {
	repo := newFakeRepo()
	category := entities.FoodCategory{
		ID:                uuid.New(),
		Name:              "Proteins",
		ShowSpecification: true,
		ShowCookType:      false,
	}
	chicken := entities.FoodType{ID: uuid.New(), CategoryID: category.ID, Name: "Chicken"}
	beef := entities.FoodType{ID: uuid.New(), CategoryID: category.ID, Name: "Beef"}
	breast := entities.Specification{ID: uuid.New(), FoodTypeID: chicken.ID, Name: "Breast"}
	grilled := entities.CookType{ID: uuid.New(), CategoryID: category.ID, Name: "Grilled"}

	repo.categories = []entities.FoodCategory{category}
	repo.foodTypes = []entities.FoodType{chicken, beef}
	repo.specs = []entities.Specification{breast}
	repo.cookTypes = []entities.CookType{grilled}
	svc := NewTaxonomyService(repo, newRecordingCache())

	options, err := svc.SelectionOptions(context.Background(), selection.Selection{
		CategoryID: category.ID.String(),
		FoodTypeID: chicken.ID.String(),
	})
	require.NoError(t, err)

	require.Len(t, options.FoodTypes, 2)
	require.Len(t, options.Specifications, 1)
	assert.Equal(t, "Breast", options.Specifications[0].Name)

	// The category hides cook types, so none are offered even though one exists.
	assert.Empty(t, options.CookTypes)
}

func TestSelectionOptionsNoCategory(t *testing.T) {
	repo := newFakeRepo()
	repo.categories = []entities.FoodCategory{{ID: uuid.New(), Name: "Proteins"}}
	svc := NewTaxonomyService(repo, newRecordingCache())

	options, err := svc.SelectionOptions(context.Background(), selection.Selection{})
	require.NoError(t, err)

	assert.Empty(t, options.FoodTypes)
	assert.Empty(t, options.Specifications)
	assert.Empty(t, options.CookTypes)
}
