package handlers

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/internal/api/presenters"
	"Meal-Prep-Backend/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		GetOrders(c *fiber.Ctx) error
		GetOrderDetails(c *fiber.Ctx) error
		GetOrderStats(c *fiber.Ctx) error
		CreateOrder(c *fiber.Ctx) error
		UpdateOrder(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
		DeleteOrder(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) GetOrders(c *fiber.Ctx) error {
	filter := order.OrderFilter{
		LocationID: c.Query("location_id"),
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
	}

	orders, err := h.orderService.List(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessListResponse(c, orders, len(orders), fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetOrderDetails(c *fiber.Ctx) error {
	res, err := h.orderService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetOrderStats(c *fiber.Ctx) error {
	stats, err := h.orderService.Stats(c.Context(), c.Query("location_id"), c.Query("date"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetOrderStats, err)
	}
	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetOrderStats)
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	req := new(domain.CreateOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	res, err := h.orderService.Create(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateOrder, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

func (h *orderHandler) UpdateOrder(c *fiber.Ctx) error {
	req := new(domain.UpdateOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrder, err)
	}

	res, err := h.orderService.Update(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateOrder, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateOrder)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrder, err)
	}

	res, err := h.orderService.UpdateStatus(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateOrder, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateOrderStatus)
}

func (h *orderHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.orderService.Delete(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteOrder, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteOrder)
}
