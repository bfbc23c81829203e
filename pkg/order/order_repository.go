package order

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderFilter struct {
		LocationID string
		Status     string
		CustomerID string
	}

	// OrderStats aggregates one day of orders for the dashboard header.
	OrderStats struct {
		Received  int64
		Delivered int64
		Earnings  float64
	}

	OrderRepository interface {
		List(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
		GetByID(ctx context.Context, id string) (*entities.Order, error)
		Create(ctx context.Context, order *entities.Order) error
		Update(ctx context.Context, order *entities.Order) error
		Delete(ctx context.Context, id string) error
		CountByLocation(ctx context.Context, locationID string) (int64, error)
		ReplaceItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error
		Stats(ctx context.Context, locationID string, from, to time.Time) (OrderStats, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Items.MenuItem")
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]entities.Order, error) {
	var orders []entities.Order
	query := r.preloaded(ctx).Order("order_date desc")

	if filter.LocationID != "" {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.preloaded(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) Update(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Save(order).Error
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Order{}).Error
	})
}

func (r *orderRepository) CountByLocation(ctx context.Context, locationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("location_id = ?", locationID).Count(&count).Error
	return count, err
}

func (r *orderRepository) ReplaceItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *orderRepository) Stats(ctx context.Context, locationID string, from, to time.Time) (OrderStats, error) {
	var stats OrderStats

	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("location_id = ? AND order_date >= ? AND order_date < ?", locationID, from, to).
		Count(&stats.Received).Error; err != nil {
		return OrderStats{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("location_id = ? AND status = ? AND delivered_at >= ? AND delivered_at < ?",
			locationID, domain.OrderStatusDelivered, from, to).
		Count(&stats.Delivered).Error; err != nil {
		return OrderStats{}, err
	}

	var earnings *float64
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("location_id = ? AND status = ? AND delivered_at >= ? AND delivered_at < ?",
			locationID, domain.OrderStatusDelivered, from, to).
		Select("sum(total_price)").Scan(&earnings).Error; err != nil {
		return OrderStats{}, err
	}
	if earnings != nil {
		stats.Earnings = *earnings
	}

	return stats, nil
}
