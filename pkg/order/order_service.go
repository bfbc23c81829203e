package order

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/entities"
	"Meal-Prep-Backend/pkg/customer"
	"Meal-Prep-Backend/pkg/location"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		List(ctx context.Context, filter OrderFilter) ([]domain.OrderResponse, error)
		GetByID(ctx context.Context, id string) (domain.OrderResponse, error)
		Create(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateOrderRequest) (domain.OrderResponse, error)
		UpdateStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest) (domain.OrderResponse, error)
		Delete(ctx context.Context, id string) error
		Stats(ctx context.Context, locationID string, date string) (domain.OrderStatsResponse, error)
	}

	orderService struct {
		orderRepository    OrderRepository
		customerRepository customer.CustomerRepository
		locationRepository location.LocationRepository
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	customerRepository customer.CustomerRepository,
	locationRepository location.LocationRepository,
) OrderService {
	return &orderService{
		orderRepository:    orderRepository,
		customerRepository: customerRepository,
		locationRepository: locationRepository,
	}
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
	items := make([]domain.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		resp := domain.OrderItemResponse{
			ID:         item.ID.String(),
			MenuItemID: uuidString(item.MenuItemID),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Notes:      item.Notes,
		}
		if item.MenuItem != nil {
			resp.MenuItemName = item.MenuItem.Name
		}
		items = append(items, resp)
	}

	response := domain.OrderResponse{
		ID:          order.ID.String(),
		LocationID:  order.LocationID.String(),
		CustomerID:  uuidString(order.CustomerID),
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		TotalPrice:  order.TotalPrice,
		Notes:       order.Notes,
		OrderDate:   order.OrderDate,
		DeliveredAt: order.DeliveredAt,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
	if order.Customer != nil {
		response.CustomerName = order.Customer.Name
	}
	return response
}

func buildOrderItems(orderID uuid.UUID, reqs []domain.OrderItemRequest) ([]entities.OrderItem, float64, error) {
	items := make([]entities.OrderItem, 0, len(reqs))
	var total float64
	for _, req := range reqs {
		var menuItemID *uuid.UUID
		if req.MenuItemID != "" {
			id, err := uuid.Parse(req.MenuItemID)
			if err != nil {
				return nil, 0, domain.ErrParseUUID
			}
			menuItemID = &id
		}
		lineTotal := float64(req.Quantity) * req.UnitPrice
		items = append(items, entities.OrderItem{
			ID:         uuid.New(),
			OrderID:    orderID,
			MenuItemID: menuItemID,
			Quantity:   req.Quantity,
			UnitPrice:  req.UnitPrice,
			TotalPrice: lineTotal,
			Notes:      req.Notes,
		})
		total += lineTotal
	}
	return items, total, nil
}

func (s *orderService) List(ctx context.Context, filter OrderFilter) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	return response, nil
}

func (s *orderService) GetByID(ctx context.Context, id string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	return toOrderResponse(order), nil
}

func (s *orderService) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderResponse, error) {
	if len(req.Items) == 0 {
		return domain.OrderResponse{}, domain.ErrOrderNoItems
	}

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}
	if _, err := s.locationRepository.GetByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrLocationNotFound
		}
		return domain.OrderResponse{}, err
	}

	var customerID *uuid.UUID
	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return domain.OrderResponse{}, domain.ErrParseUUID
		}
		if _, err := s.customerRepository.GetByID(ctx, req.CustomerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.OrderResponse{}, domain.ErrCustomerNotFound
			}
			return domain.OrderResponse{}, err
		}
		customerID = &id
	}

	count, err := s.orderRepository.CountByLocation(ctx, req.LocationID)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	order := &entities.Order{
		ID:          uuid.New(),
		LocationID:  locationID,
		CustomerID:  customerID,
		OrderNumber: fmt.Sprintf("ORD-%05d", count+1),
		Status:      domain.OrderStatusReceived,
		Notes:       req.Notes,
		OrderDate:   time.Now(),
	}

	items, total, err := buildOrderItems(order.ID, req.Items)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	order.TotalPrice = total

	if err := s.orderRepository.Create(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}
	if err := s.orderRepository.ReplaceItems(ctx, order.ID, items); err != nil {
		return domain.OrderResponse{}, err
	}

	return s.GetByID(ctx, order.ID.String())
}

func (s *orderService) Update(ctx context.Context, id string, req domain.UpdateOrderRequest) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	if req.CustomerID != nil {
		if *req.CustomerID == "" {
			order.CustomerID = nil
		} else {
			customerID, err := uuid.Parse(*req.CustomerID)
			if err != nil {
				return domain.OrderResponse{}, domain.ErrParseUUID
			}
			if _, err := s.customerRepository.GetByID(ctx, *req.CustomerID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.OrderResponse{}, domain.ErrCustomerNotFound
				}
				return domain.OrderResponse{}, err
			}
			order.CustomerID = &customerID
		}
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if req.Items != nil {
		if len(req.Items) == 0 {
			return domain.OrderResponse{}, domain.ErrOrderNoItems
		}
		items, total, err := buildOrderItems(order.ID, req.Items)
		if err != nil {
			return domain.OrderResponse{}, err
		}
		if err := s.orderRepository.ReplaceItems(ctx, order.ID, items); err != nil {
			return domain.OrderResponse{}, err
		}
		order.TotalPrice = total
	}

	if err := s.orderRepository.Update(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}
	return s.GetByID(ctx, id)
}

// UpdateStatus moves the order along the received/preparing/ready/delivered
// flow. Delivery stamps the order and bumps the customer's prep count.
func (s *orderService) UpdateStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	if !CanTransition(order.Status, req.Status) {
		return domain.OrderResponse{}, domain.ErrOrderStatusInvalid
	}

	order.Status = req.Status
	if req.Status == domain.OrderStatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := s.orderRepository.Update(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	if req.Status == domain.OrderStatusDelivered && order.CustomerID != nil {
		cust, err := s.customerRepository.GetByID(ctx, order.CustomerID.String())
		if err == nil {
			cust.TotalPreps++
			if err := s.customerRepository.Update(ctx, cust); err != nil {
				return domain.OrderResponse{}, err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, err
		}
	}

	return toOrderResponse(order), nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	if _, err := s.orderRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	return s.orderRepository.Delete(ctx, id)
}

// Stats reports one day of activity. An empty date means today.
func (s *orderService) Stats(ctx context.Context, locationID string, date string) (domain.OrderStatsResponse, error) {
	if locationID == "" {
		return domain.OrderStatsResponse{}, domain.ErrLocationIDRequired
	}

	day := time.Now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return domain.OrderStatsResponse{}, err
		}
		day = parsed
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	stats, err := s.orderRepository.Stats(ctx, locationID, from, to)
	if err != nil {
		return domain.OrderStatsResponse{}, err
	}

	return domain.OrderStatsResponse{
		PrepsReceived:  stats.Received,
		PrepsDelivered: stats.Delivered,
		TotalEarnings:  stats.Earnings,
		Date:           from.Format("2006-01-02"),
	}, nil
}
