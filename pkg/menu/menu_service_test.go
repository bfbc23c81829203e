package menu

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// okTaxonomyRepository answers every lookup with an empty row, so any
// selection validates.
type okTaxonomyRepository struct{}

func (okTaxonomyRepository) ListCategories(context.Context) ([]entities.FoodCategory, error) {
	return nil, nil
}
func (okTaxonomyRepository) GetCategoryByID(context.Context, string) (*entities.FoodCategory, error) {
	return &entities.FoodCategory{}, nil
}
func (okTaxonomyRepository) CreateCategory(context.Context, *entities.FoodCategory) error { return nil }
func (okTaxonomyRepository) UpdateCategory(context.Context, *entities.FoodCategory) error { return nil }
func (okTaxonomyRepository) DeleteCategory(context.Context, string) error                 { return nil }
func (okTaxonomyRepository) CountCategoryReferences(context.Context, string) (int64, error) {
	return 0, nil
}
func (okTaxonomyRepository) ListTypes(context.Context, string) ([]entities.FoodType, error) {
	return nil, nil
}
func (okTaxonomyRepository) GetTypeByID(context.Context, string) (*entities.FoodType, error) {
	return &entities.FoodType{}, nil
}
func (okTaxonomyRepository) CreateType(context.Context, *entities.FoodType) error { return nil }
func (okTaxonomyRepository) UpdateType(context.Context, *entities.FoodType) error { return nil }
func (okTaxonomyRepository) DeleteType(context.Context, string) error             { return nil }
func (okTaxonomyRepository) CountTypeReferences(context.Context, string) (int64, error) {
	return 0, nil
}
func (okTaxonomyRepository) ListSpecifications(context.Context, string) ([]entities.Specification, error) {
	return nil, nil
}
func (okTaxonomyRepository) GetSpecificationByID(context.Context, string) (*entities.Specification, error) {
	return &entities.Specification{}, nil
}
func (okTaxonomyRepository) CreateSpecification(context.Context, *entities.Specification) error {
	return nil
}
func (okTaxonomyRepository) UpdateSpecification(context.Context, *entities.Specification) error {
	return nil
}
func (okTaxonomyRepository) DeleteSpecification(context.Context, string) error { return nil }
func (okTaxonomyRepository) CountSpecificationReferences(context.Context, string) (int64, error) {
	return 0, nil
}
func (okTaxonomyRepository) ListCookTypes(context.Context, string) ([]entities.CookType, error) {
	return nil, nil
}
func (okTaxonomyRepository) GetCookTypeByID(context.Context, string) (*entities.CookType, error) {
	return &entities.CookType{}, nil
}
func (okTaxonomyRepository) CreateCookType(context.Context, *entities.CookType) error { return nil }
func (okTaxonomyRepository) UpdateCookType(context.Context, *entities.CookType) error { return nil }
func (okTaxonomyRepository) DeleteCookType(context.Context, string) error             { return nil }
func (okTaxonomyRepository) CountCookTypeReferences(context.Context, string) (int64, error) {
	return 0, nil
}

// fakeMenuRepository holds a single item in memory.
type fakeMenuRepository struct {
	item *entities.MenuItem
}

func (f *fakeMenuRepository) List(ctx context.Context, filter MenuFilter) ([]entities.MenuItem, error) {
	if f.item != nil && f.item.LocationID.String() == filter.LocationID {
		return []entities.MenuItem{*f.item}, nil
	}
	return nil, nil
}

func (f *fakeMenuRepository) GetByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	if f.item == nil || f.item.ID.String() != id {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *f.item
	return &copied, nil
}

func (f *fakeMenuRepository) Create(ctx context.Context, item *entities.MenuItem) error {
	f.item = item
	return nil
}

func (f *fakeMenuRepository) Update(ctx context.Context, item *entities.MenuItem) error {
	f.item = item
	return nil
}

func (f *fakeMenuRepository) Delete(ctx context.Context, id string) error {
	f.item = nil
	return nil
}

func (f *fakeMenuRepository) CountByLocation(ctx context.Context, locationID string) (int64, error) {
	if f.item != nil {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeMenuRepository) AddPhotos(ctx context.Context, photos []entities.MenuItemPhoto) error {
	f.item.Photos = append(f.item.Photos, photos...)
	return nil
}

func (f *fakeMenuRepository) DeletePhoto(ctx context.Context, photoID string) error {
	kept := f.item.Photos[:0]
	for _, photo := range f.item.Photos {
		if photo.ID.String() != photoID {
			kept = append(kept, photo)
		}
	}
	f.item.Photos = kept
	return nil
}

func (f *fakeMenuRepository) MaxPhotoOrder(ctx context.Context, menuItemID string) (int, error) {
	max := -1
	for _, photo := range f.item.Photos {
		if photo.DisplayOrder > max {
			max = photo.DisplayOrder
		}
	}
	return max, nil
}

func (f *fakeMenuRepository) ReplaceIngredients(ctx context.Context, menuItemID uuid.UUID, assocs []entities.MenuItemIngredient) error {
	f.item.Ingredients = assocs
	return nil
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc := NewMenuService(nil, nil, nil, nil, nil)

	for _, name := range []string{"", "   ", "\t"} {
		_, err := svc.Create(context.Background(), domain.CreateMenuItemRequest{
			LocationID: uuid.New().String(),
			Name:       name,
		})
		assert.ErrorIs(t, err, domain.ErrMenuItemNameRequired)
	}
}

func TestListRequiresLocationID(t *testing.T) {
	svc := NewMenuService(nil, nil, nil, nil, nil)

	_, err := svc.List(context.Background(), MenuFilter{})
	assert.ErrorIs(t, err, domain.ErrLocationIDRequired)
}

func TestCreateDraftRequiresLocationID(t *testing.T) {
	svc := NewMenuService(nil, nil, nil, nil, nil)

	_, err := svc.CreateDraft(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrLocationIDRequired)
}

func TestUpdateRejectsBlankName(t *testing.T) {
	foodTypeID := uuid.New()
	repo := &fakeMenuRepository{item: &entities.MenuItem{
		ID:         uuid.New(),
		LocationID: uuid.New(),
		Name:       "Chicken Bowl",
		FoodTypeID: &foodTypeID,
	}}
	svc := NewMenuService(repo, okTaxonomyRepository{}, nil, nil, nil)

	blank := "  "
	_, err := svc.Update(context.Background(), repo.item.ID.String(), domain.UpdateMenuItemRequest{Name: &blank})
	assert.ErrorIs(t, err, domain.ErrMenuItemNameRequired)
	assert.Equal(t, "Chicken Bowl", repo.item.Name)
}

func TestUpdateCategoryChangeClearsDependentFields(t *testing.T) {
	categoryID := uuid.New()
	foodTypeID := uuid.New()
	specID := uuid.New()
	cookTypeID := uuid.New()
	repo := &fakeMenuRepository{item: &entities.MenuItem{
		ID:              uuid.New(),
		LocationID:      uuid.New(),
		Name:            "Chicken Bowl",
		FoodCategoryID:  &categoryID,
		FoodTypeID:      &foodTypeID,
		SpecificationID: &specID,
		CookTypeID:      &cookTypeID,
	}}
	svc := NewMenuService(repo, okTaxonomyRepository{}, nil, nil, nil)

	cleared := ""
	res, err := svc.Update(context.Background(), repo.item.ID.String(), domain.UpdateMenuItemRequest{
		FoodCategoryID: &cleared,
	})
	require.NoError(t, err)

	assert.Empty(t, res.FoodCategoryID)
	assert.Empty(t, res.FoodTypeID)
	assert.Empty(t, res.SpecificationID)
	assert.Empty(t, res.CookTypeID)
	assert.Nil(t, repo.item.FoodTypeID)
	assert.Nil(t, repo.item.SpecificationID)
	assert.Nil(t, repo.item.CookTypeID)
}

func TestUpdateFoodTypeClearClearsSpecificationOnly(t *testing.T) {
	categoryID := uuid.New()
	foodTypeID := uuid.New()
	specID := uuid.New()
	cookTypeID := uuid.New()
	repo := &fakeMenuRepository{item: &entities.MenuItem{
		ID:              uuid.New(),
		LocationID:      uuid.New(),
		Name:            "Chicken Bowl",
		FoodCategoryID:  &categoryID,
		FoodTypeID:      &foodTypeID,
		SpecificationID: &specID,
		CookTypeID:      &cookTypeID,
	}}
	svc := NewMenuService(repo, okTaxonomyRepository{}, nil, nil, nil)

	cleared := ""
	res, err := svc.Update(context.Background(), repo.item.ID.String(), domain.UpdateMenuItemRequest{
		FoodTypeID: &cleared,
	})
	require.NoError(t, err)

	assert.Equal(t, categoryID.String(), res.FoodCategoryID)
	assert.Empty(t, res.FoodTypeID)
	assert.Empty(t, res.SpecificationID)
	assert.Equal(t, cookTypeID.String(), res.CookTypeID)
}

func TestUpdateNormalizesTags(t *testing.T) {
	repo := &fakeMenuRepository{item: &entities.MenuItem{
		ID:         uuid.New(),
		LocationID: uuid.New(),
		Name:       "Chicken Bowl",
	}}
	svc := NewMenuService(repo, okTaxonomyRepository{}, nil, nil, nil)

	tags := " keto , spicy , keto ,,"
	res, err := svc.Update(context.Background(), repo.item.ID.String(), domain.UpdateMenuItemRequest{Tags: &tags})
	require.NoError(t, err)

	assert.Equal(t, "keto,spicy", res.Tags)
}

func TestToggleStatusFlipsBothWays(t *testing.T) {
	repo := &fakeMenuRepository{item: &entities.MenuItem{
		ID:         uuid.New(),
		LocationID: uuid.New(),
		Name:       "Chicken Bowl",
		Status:     domain.MenuStatusDraft,
	}}
	svc := NewMenuService(repo, okTaxonomyRepository{}, nil, nil, nil)

	res, err := svc.ToggleStatus(context.Background(), repo.item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.MenuStatusActive, res.Status)

	res, err = svc.ToggleStatus(context.Background(), repo.item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.MenuStatusDraft, res.Status)
}

func TestToggleStatusNotFound(t *testing.T) {
	svc := NewMenuService(&fakeMenuRepository{}, nil, nil, nil, nil)

	_, err := svc.ToggleStatus(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}
