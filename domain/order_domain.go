package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessCreateOrder       = "order created successfully"
	MessageSuccessUpdateOrder       = "order updated successfully"
	MessageSuccessUpdateOrderStatus = "order status updated successfully"
	MessageSuccessDeleteOrder       = "order deleted successfully"
	MessageSuccessGetOrderStats     = "order statistics retrieved successfully"
	MessageFailedGetOrders          = "failed to retrieve orders"
	MessageFailedCreateOrder        = "failed to create order"
	MessageFailedUpdateOrder        = "failed to update order"
	MessageFailedDeleteOrder        = "failed to delete order"
	MessageFailedGetOrderStats      = "failed to retrieve order statistics"

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNoItems       = errors.New("order must contain at least one item")
	ErrOrderStatusInvalid = errors.New("invalid order status")
)

const (
	OrderStatusReceived  = "received"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type (
	OrderItemRequest struct {
		MenuItemID string  `json:"menu_item_id" validate:"omitempty,uuid"`
		Quantity   int     `json:"quantity" validate:"required,min=1"`
		UnitPrice  float64 `json:"unit_price" validate:"min=0"`
		Notes      string  `json:"notes"`
	}

	CreateOrderRequest struct {
		LocationID string             `json:"location_id" validate:"required,uuid"`
		CustomerID string             `json:"customer_id" validate:"omitempty,uuid"`
		Notes      string             `json:"notes"`
		Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	UpdateOrderRequest struct {
		CustomerID *string            `json:"customer_id,omitempty"`
		Notes      *string            `json:"notes,omitempty"`
		Items      []OrderItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=received preparing ready delivered cancelled"`
	}

	OrderItemResponse struct {
		ID           string  `json:"id"`
		MenuItemID   string  `json:"menu_item_id,omitempty"`
		MenuItemName string  `json:"menu_item_name,omitempty"`
		Quantity     int     `json:"quantity"`
		UnitPrice    float64 `json:"unit_price"`
		TotalPrice   float64 `json:"total_price"`
		Notes        string  `json:"notes,omitempty"`
	}

	OrderResponse struct {
		ID           string              `json:"id"`
		LocationID   string              `json:"location_id"`
		CustomerID   string              `json:"customer_id,omitempty"`
		CustomerName string              `json:"customer_name,omitempty"`
		OrderNumber  string              `json:"order_number,omitempty"`
		Status       string              `json:"status"`
		TotalPrice   float64             `json:"total_price"`
		Notes        string              `json:"notes,omitempty"`
		OrderDate    time.Time           `json:"order_date"`
		DeliveredAt  *time.Time          `json:"delivered_at,omitempty"`
		Items        []OrderItemResponse `json:"items,omitempty"`
		CreatedAt    time.Time           `json:"created_at"`
	}

	OrderStatsResponse struct {
		PrepsReceived  int64   `json:"preps_received"`
		PrepsDelivered int64   `json:"preps_delivered"`
		TotalEarnings  float64 `json:"total_earnings"`
		Date           string  `json:"date"`
	}
)
