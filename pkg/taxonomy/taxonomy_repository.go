package taxonomy

import (
	"Meal-Prep-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TaxonomyRepository interface {
		ListCategories(ctx context.Context) ([]entities.FoodCategory, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.FoodCategory, error)
		CreateCategory(ctx context.Context, category *entities.FoodCategory) error
		UpdateCategory(ctx context.Context, category *entities.FoodCategory) error
		DeleteCategory(ctx context.Context, id string) error
		CountCategoryReferences(ctx context.Context, id string) (int64, error)

		ListTypes(ctx context.Context, categoryID string) ([]entities.FoodType, error)
		GetTypeByID(ctx context.Context, id string) (*entities.FoodType, error)
		CreateType(ctx context.Context, foodType *entities.FoodType) error
		UpdateType(ctx context.Context, foodType *entities.FoodType) error
		DeleteType(ctx context.Context, id string) error
		CountTypeReferences(ctx context.Context, id string) (int64, error)

		ListSpecifications(ctx context.Context, foodTypeID string) ([]entities.Specification, error)
		GetSpecificationByID(ctx context.Context, id string) (*entities.Specification, error)
		CreateSpecification(ctx context.Context, spec *entities.Specification) error
		UpdateSpecification(ctx context.Context, spec *entities.Specification) error
		DeleteSpecification(ctx context.Context, id string) error
		CountSpecificationReferences(ctx context.Context, id string) (int64, error)

		ListCookTypes(ctx context.Context, categoryID string) ([]entities.CookType, error)
		GetCookTypeByID(ctx context.Context, id string) (*entities.CookType, error)
		CreateCookType(ctx context.Context, cookType *entities.CookType) error
		UpdateCookType(ctx context.Context, cookType *entities.CookType) error
		DeleteCookType(ctx context.Context, id string) error
		CountCookTypeReferences(ctx context.Context, id string) (int64, error)
	}

	taxonomyRepository struct {
		db *gorm.DB
	}
)

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) ListCategories(ctx context.Context) ([]entities.FoodCategory, error) {
	var categories []entities.FoodCategory
	// created_at breaks display_order ties so the tab order is deterministic.
	if err := r.db.WithContext(ctx).
		Order("display_order asc, created_at asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *taxonomyRepository) GetCategoryByID(ctx context.Context, id string) (*entities.FoodCategory, error) {
	var category entities.FoodCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *taxonomyRepository) CreateCategory(ctx context.Context, category *entities.FoodCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *taxonomyRepository) UpdateCategory(ctx context.Context, category *entities.FoodCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *taxonomyRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodCategory{}).Error
}

func (r *taxonomyRepository) CountCategoryReferences(ctx context.Context, id string) (int64, error) {
	var total, count int64

	if err := r.db.WithContext(ctx).Model(&entities.FoodType{}).
		Where("category_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	if err := r.db.WithContext(ctx).Model(&entities.CookType{}).
		Where("category_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	if err := r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("food_category_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	return total, nil
}

func (r *taxonomyRepository) ListTypes(ctx context.Context, categoryID string) ([]entities.FoodType, error) {
	var types []entities.FoodType
	query := r.db.WithContext(ctx).Preload("Category").Order("name asc, created_at asc")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if err := query.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *taxonomyRepository) GetTypeByID(ctx context.Context, id string) (*entities.FoodType, error) {
	var foodType entities.FoodType
	if err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&foodType).Error; err != nil {
		return nil, err
	}
	return &foodType, nil
}

func (r *taxonomyRepository) CreateType(ctx context.Context, foodType *entities.FoodType) error {
	return r.db.WithContext(ctx).Create(foodType).Error
}

func (r *taxonomyRepository) UpdateType(ctx context.Context, foodType *entities.FoodType) error {
	return r.db.WithContext(ctx).Save(foodType).Error
}

func (r *taxonomyRepository) DeleteType(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodType{}).Error
}

func (r *taxonomyRepository) CountTypeReferences(ctx context.Context, id string) (int64, error) {
	var total, count int64

	if err := r.db.WithContext(ctx).Model(&entities.Specification{}).
		Where("food_type_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	if err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("food_type_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	if err := r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("food_type_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	return total, nil
}

func (r *taxonomyRepository) ListSpecifications(ctx context.Context, foodTypeID string) ([]entities.Specification, error) {
	var specs []entities.Specification
	query := r.db.WithContext(ctx).Preload("FoodType").Preload("FoodType.Category").
		Order("name asc, created_at asc")
	if foodTypeID != "" {
		query = query.Where("food_type_id = ?", foodTypeID)
	}
	if err := query.Find(&specs).Error; err != nil {
		return nil, err
	}
	return specs, nil
}

func (r *taxonomyRepository) GetSpecificationByID(ctx context.Context, id string) (*entities.Specification, error) {
	var spec entities.Specification
	if err := r.db.WithContext(ctx).Preload("FoodType").Where("id = ?", id).First(&spec).Error; err != nil {
		return nil, err
	}
	return &spec, nil
}

func (r *taxonomyRepository) CreateSpecification(ctx context.Context, spec *entities.Specification) error {
	return r.db.WithContext(ctx).Create(spec).Error
}

func (r *taxonomyRepository) UpdateSpecification(ctx context.Context, spec *entities.Specification) error {
	return r.db.WithContext(ctx).Save(spec).Error
}

func (r *taxonomyRepository) DeleteSpecification(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Specification{}).Error
}

func (r *taxonomyRepository) CountSpecificationReferences(ctx context.Context, id string) (int64, error) {
	var total, count int64

	if err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("specification_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	if err := r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("specification_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	return total, nil
}

func (r *taxonomyRepository) ListCookTypes(ctx context.Context, categoryID string) ([]entities.CookType, error) {
	var cookTypes []entities.CookType
	query := r.db.WithContext(ctx).Preload("Category").Order("name asc, created_at asc")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if err := query.Find(&cookTypes).Error; err != nil {
		return nil, err
	}
	return cookTypes, nil
}

func (r *taxonomyRepository) GetCookTypeByID(ctx context.Context, id string) (*entities.CookType, error) {
	var cookType entities.CookType
	if err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&cookType).Error; err != nil {
		return nil, err
	}
	return &cookType, nil
}

func (r *taxonomyRepository) CreateCookType(ctx context.Context, cookType *entities.CookType) error {
	return r.db.WithContext(ctx).Create(cookType).Error
}

func (r *taxonomyRepository) UpdateCookType(ctx context.Context, cookType *entities.CookType) error {
	return r.db.WithContext(ctx).Save(cookType).Error
}

func (r *taxonomyRepository) DeleteCookType(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CookType{}).Error
}

func (r *taxonomyRepository) CountCookTypeReferences(ctx context.Context, id string) (int64, error) {
	var total, count int64

	if err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("cook_type_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	if err := r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("cook_type_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	return total, nil
}
