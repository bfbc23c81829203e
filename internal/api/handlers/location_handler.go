package handlers

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/internal/api/presenters"
	"Meal-Prep-Backend/pkg/location"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LocationHandler interface {
		GetLocations(c *fiber.Ctx) error
		GetLocationDetails(c *fiber.Ctx) error
		CreateLocation(c *fiber.Ctx) error
		UpdateLocation(c *fiber.Ctx) error
		DeleteLocation(c *fiber.Ctx) error
	}

	locationHandler struct {
		locationService location.LocationService
		validator       *validator.Validate
	}
)

func NewLocationHandler(locationService location.LocationService, validator *validator.Validate) LocationHandler {
	return &locationHandler{
		locationService: locationService,
		validator:       validator,
	}
}

func (h *locationHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.locationService.List(c.Context(), c.Query("status"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetLocations, err)
	}
	return presenters.SuccessListResponse(c, locations, len(locations), fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) GetLocationDetails(c *fiber.Ctx) error {
	res, err := h.locationService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetLocations, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) CreateLocation(c *fiber.Ctx) error {
	req := new(domain.CreateLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateLocation, err)
	}

	res, err := h.locationService.Create(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateLocation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateLocation)
}

func (h *locationHandler) UpdateLocation(c *fiber.Ctx) error {
	req := new(domain.UpdateLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLocation, err)
	}

	res, err := h.locationService.Update(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateLocation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateLocation)
}

func (h *locationHandler) DeleteLocation(c *fiber.Ctx) error {
	if err := h.locationService.Delete(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteLocation, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLocation)
}
