package location

import (
	"Meal-Prep-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	LocationRepository interface {
		List(ctx context.Context, status string) ([]entities.Location, error)
		GetByID(ctx context.Context, id string) (*entities.Location, error)
		Create(ctx context.Context, location *entities.Location) error
		Update(ctx context.Context, location *entities.Location) error
		Delete(ctx context.Context, id string) error
		CountReferences(ctx context.Context, id string) (int64, error)
	}

	locationRepository struct {
		db *gorm.DB
	}
)

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) List(ctx context.Context, status string) ([]entities.Location, error) {
	var locations []entities.Location
	query := r.db.WithContext(ctx).Order("name asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*entities.Location, error) {
	var location entities.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) Create(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) Update(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Location{}).Error
}

func (r *locationRepository) CountReferences(ctx context.Context, id string) (int64, error) {
	var total, count int64

	for _, model := range []interface{}{
		&entities.Customer{},
		&entities.User{},
		&entities.MenuItem{},
		&entities.Order{},
	} {
		if err := r.db.WithContext(ctx).Model(model).
			Where("location_id = ?", id).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}

	return total, nil
}
