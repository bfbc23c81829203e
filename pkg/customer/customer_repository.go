package customer

import (
	"Meal-Prep-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CustomerRepository interface {
		List(ctx context.Context, locationID string, search string) ([]entities.Customer, error)
		GetByID(ctx context.Context, id string) (*entities.Customer, error)
		GetByEmail(ctx context.Context, locationID string, email string) (*entities.Customer, error)
		Create(ctx context.Context, customer *entities.Customer) error
		Update(ctx context.Context, customer *entities.Customer) error
		Delete(ctx context.Context, id string) error
		CountOrders(ctx context.Context, id string) (int64, error)
	}

	customerRepository struct {
		db *gorm.DB
	}
)

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) List(ctx context.Context, locationID string, search string) ([]entities.Customer, error) {
	var customers []entities.Customer
	query := r.db.WithContext(ctx).Order("name asc")
	if locationID != "" {
		query = query.Where("location_id = ?", locationID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Customer emails are unique per location, not globally.
func (r *customerRepository) GetByEmail(ctx context.Context, locationID string, email string) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).
		Where("location_id = ? AND lower(email) = lower(?)", locationID, email).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) Update(ctx context.Context, customer *entities.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Customer{}).Error
}

func (r *customerRepository) CountOrders(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("customer_id = ?", id).Count(&count).Error
	return count, err
}
