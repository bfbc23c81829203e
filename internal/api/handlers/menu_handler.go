package handlers

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/internal/api/presenters"
	"Meal-Prep-Backend/pkg/menu"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetMenuItems(c *fiber.Ctx) error
		GetMenuItemDetails(c *fiber.Ctx) error
		CreateMenuItem(c *fiber.Ctx) error
		CreateDraftMenuItem(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		ToggleMenuItemStatus(c *fiber.Ctx) error
		RemoveMenuItemPhoto(c *fiber.Ctx) error
		DeleteMenuItem(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) GetMenuItems(c *fiber.Ctx) error {
	filter := menu.MenuFilter{
		LocationID: c.Query("location_id"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
		CategoryID: c.Query("category_id"),
	}

	items, err := h.menuService.List(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetMenuItems, err)
	}
	return presenters.SuccessListResponse(c, items, len(items), fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuHandler) GetMenuItemDetails(c *fiber.Ctx) error {
	res, err := h.menuService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetMenuItems, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuHandler) CreateMenuItem(c *fiber.Ctx) error {
	req := new(domain.CreateMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenuItem, err)
	}

	res, err := h.menuService.Create(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateMenuItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMenuItem)
}

// CreateDraftMenuItem opens an empty composer row for the given location.
func (h *menuHandler) CreateDraftMenuItem(c *fiber.Ctx) error {
	res, err := h.menuService.CreateDraft(c.Context(), c.Query("location_id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateMenuItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMenuItem)
}

func (h *menuHandler) UpdateMenuItem(c *fiber.Ctx) error {
	req := new(domain.UpdateMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	res, err := h.menuService.Update(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateMenuItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMenuItem)
}

func (h *menuHandler) ToggleMenuItemStatus(c *fiber.Ctx) error {
	res, err := h.menuService.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedToggleStatus, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleStatus)
}

func (h *menuHandler) RemoveMenuItemPhoto(c *fiber.Ctx) error {
	position, err := strconv.Atoi(c.Params("position"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	res, err := h.menuService.RemovePhoto(c.Context(), c.Params("id"), position)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateMenuItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMenuItem)
}

func (h *menuHandler) DeleteMenuItem(c *fiber.Ctx) error {
	if err := h.menuService.Delete(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteMenuItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMenuItem)
}
