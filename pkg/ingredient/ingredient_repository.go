package ingredient

import (
	"Meal-Prep-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		Create(ctx context.Context, ingredient *entities.Ingredient) error
		GetByID(ctx context.Context, id string) (*entities.Ingredient, error)
		Update(ctx context.Context, ingredient *entities.Ingredient) error
		ReplaceQuantities(ctx context.Context, ingredientID uuid.UUID, quantities []entities.IngredientQuantity) error
		Delete(ctx context.Context, id string) error
		List(ctx context.Context, foodTypeID string, isActive *bool) ([]entities.Ingredient, error)
		CountMenuReferences(ctx context.Context, id string) (int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Preload("FoodType").
		Preload("FoodType.Category").
		Preload("Specification").
		Preload("CookType").
		Preload("Quantities", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Where("id = ?", id).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Omit("Quantities").Save(ingredient).Error
}

func (r *ingredientRepository) ReplaceQuantities(ctx context.Context, ingredientID uuid.UUID, quantities []entities.IngredientQuantity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", ingredientID).
			Delete(&entities.IngredientQuantity{}).Error; err != nil {
			return err
		}
		if len(quantities) == 0 {
			return nil
		}
		return tx.Create(&quantities).Error
	})
}

func (r *ingredientRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).
			Delete(&entities.IngredientQuantity{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Ingredient{}).Error
	})
}

func (r *ingredientRepository) List(ctx context.Context, foodTypeID string, isActive *bool) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient

	query := r.db.WithContext(ctx).
		Preload("FoodType").
		Preload("FoodType.Category").
		Preload("Specification").
		Preload("CookType").
		Preload("Quantities", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Order("created_at asc")

	if foodTypeID != "" {
		query = query.Where("food_type_id = ?", foodTypeID)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) CountMenuReferences(ctx context.Context, id string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.MenuItemIngredient{}).
		Where("ingredient_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
