package handlers

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/internal/api/presenters"
	"Meal-Prep-Backend/pkg/customer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CustomerHandler interface {
		GetCustomers(c *fiber.Ctx) error
		GetCustomerDetails(c *fiber.Ctx) error
		CreateCustomer(c *fiber.Ctx) error
		UpdateCustomer(c *fiber.Ctx) error
		DeleteCustomer(c *fiber.Ctx) error
	}

	customerHandler struct {
		customerService customer.CustomerService
		validator       *validator.Validate
	}
)

func NewCustomerHandler(customerService customer.CustomerService, validator *validator.Validate) CustomerHandler {
	return &customerHandler{
		customerService: customerService,
		validator:       validator,
	}
}

func (h *customerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.customerService.List(c.Context(), c.Query("location_id"), c.Query("search"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetCustomers, err)
	}
	return presenters.SuccessListResponse(c, customers, len(customers), fiber.StatusOK, domain.MessageSuccessGetCustomers)
}

func (h *customerHandler) GetCustomerDetails(c *fiber.Ctx) error {
	res, err := h.customerService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetCustomers, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCustomers)
}

func (h *customerHandler) CreateCustomer(c *fiber.Ctx) error {
	req := new(domain.CreateCustomerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCustomer, err)
	}

	res, err := h.customerService.Create(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateCustomer, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCustomer)
}

func (h *customerHandler) UpdateCustomer(c *fiber.Ctx) error {
	req := new(domain.UpdateCustomerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCustomer, err)
	}

	res, err := h.customerService.Update(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateCustomer, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCustomer)
}

func (h *customerHandler) DeleteCustomer(c *fiber.Ctx) error {
	if err := h.customerService.Delete(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteCustomer, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCustomer)
}
