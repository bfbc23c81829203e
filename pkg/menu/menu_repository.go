package menu

import (
	"Meal-Prep-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// MenuFilter narrows List. LocationID is mandatory and enforced by the
	// service before the query runs.
	MenuFilter struct {
		LocationID string
		Status     string
		Search     string
		CategoryID string
	}

	MenuRepository interface {
		List(ctx context.Context, filter MenuFilter) ([]entities.MenuItem, error)
		GetByID(ctx context.Context, id string) (*entities.MenuItem, error)
		Create(ctx context.Context, item *entities.MenuItem) error
		Update(ctx context.Context, item *entities.MenuItem) error
		Delete(ctx context.Context, id string) error
		CountByLocation(ctx context.Context, locationID string) (int64, error)

		AddPhotos(ctx context.Context, photos []entities.MenuItemPhoto) error
		DeletePhoto(ctx context.Context, photoID string) error
		MaxPhotoOrder(ctx context.Context, menuItemID string) (int, error)
		ReplaceIngredients(ctx context.Context, menuItemID uuid.UUID, assocs []entities.MenuItemIngredient) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc, created_at asc")
		}).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Ingredient.Quantities")
}

func (r *menuRepository) List(ctx context.Context, filter MenuFilter) ([]entities.MenuItem, error) {
	var items []entities.MenuItem
	query := r.preloaded(ctx).
		Where("location_id = ?", filter.LocationID).
		Order("created_at desc")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != "" {
		query = query.Where("food_category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR tags ILIKE ?", pattern, pattern)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.preloaded(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) Create(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) Update(ctx context.Context, item *entities.MenuItem) error {
	// Photos and ingredient rows are managed through their own methods.
	return r.db.WithContext(ctx).Omit("Photos", "Ingredients").Save(item).Error
}

func (r *menuRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&entities.MenuItemPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", id).Delete(&entities.MenuItemIngredient{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.MenuItem{}).Error
	})
}

func (r *menuRepository) CountByLocation(ctx context.Context, locationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("location_id = ?", locationID).Count(&count).Error
	return count, err
}

func (r *menuRepository) AddPhotos(ctx context.Context, photos []entities.MenuItemPhoto) error {
	if len(photos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&photos).Error
}

func (r *menuRepository) DeletePhoto(ctx context.Context, photoID string) error {
	return r.db.WithContext(ctx).Where("id = ?", photoID).Delete(&entities.MenuItemPhoto{}).Error
}

func (r *menuRepository) MaxPhotoOrder(ctx context.Context, menuItemID string) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&entities.MenuItemPhoto{}).
		Where("menu_item_id = ?", menuItemID).
		Select("max(display_order)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

func (r *menuRepository) ReplaceIngredients(ctx context.Context, menuItemID uuid.UUID, assocs []entities.MenuItemIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", menuItemID).
			Delete(&entities.MenuItemIngredient{}).Error; err != nil {
			return err
		}
		if len(assocs) == 0 {
			return nil
		}
		return tx.Create(&assocs).Error
	})
}
