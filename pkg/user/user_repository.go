package user

import (
	"Meal-Prep-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		List(ctx context.Context, locationID string) ([]entities.User, error)
		GetByID(ctx context.Context, id string) (*entities.User, error)
		GetByEmail(ctx context.Context, email string) (*entities.User, error)
		Create(ctx context.Context, user *entities.User) error
		Update(ctx context.Context, user *entities.User) error
		Delete(ctx context.Context, id string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context, locationID string) ([]entities.User, error) {
	var users []entities.User
	query := r.db.WithContext(ctx).Order("name asc")
	if locationID != "" {
		query = query.Where("location_id = ?", locationID)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{}).Error
}
