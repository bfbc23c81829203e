package handlers

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/internal/api/presenters"
	"Meal-Prep-Backend/pkg/selection"
	"Meal-Prep-Backend/pkg/taxonomy"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TaxonomyHandler interface {
		GetCategories(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error

		GetTypes(c *fiber.Ctx) error
		CreateType(c *fiber.Ctx) error
		UpdateType(c *fiber.Ctx) error
		DeleteType(c *fiber.Ctx) error

		GetSpecifications(c *fiber.Ctx) error
		CreateSpecification(c *fiber.Ctx) error
		UpdateSpecification(c *fiber.Ctx) error
		DeleteSpecification(c *fiber.Ctx) error

		GetCookTypes(c *fiber.Ctx) error
		CreateCookType(c *fiber.Ctx) error
		UpdateCookType(c *fiber.Ctx) error
		DeleteCookType(c *fiber.Ctx) error

		GetSelectionOptions(c *fiber.Ctx) error
	}

	taxonomyHandler struct {
		taxonomyService taxonomy.TaxonomyService
		validator       *validator.Validate
	}
)

func NewTaxonomyHandler(taxonomyService taxonomy.TaxonomyService, validator *validator.Validate) TaxonomyHandler {
	return &taxonomyHandler{
		taxonomyService: taxonomyService,
		validator:       validator,
	}
}

func (h *taxonomyHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.taxonomyService.ListCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessListResponse(c, categories, len(categories), fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *taxonomyHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.taxonomyService.CreateCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *taxonomyHandler) UpdateCategory(c *fiber.Ctx) error {
	req := new(domain.UpdateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	res, err := h.taxonomyService.UpdateCategory(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *taxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.taxonomyService.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteCategory, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *taxonomyHandler) GetTypes(c *fiber.Ctx) error {
	types, err := h.taxonomyService.ListTypes(c.Context(), c.Query("category_id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetTypes, err)
	}
	return presenters.SuccessListResponse(c, types, len(types), fiber.StatusOK, domain.MessageSuccessGetTypes)
}

func (h *taxonomyHandler) CreateType(c *fiber.Ctx) error {
	req := new(domain.CreateFoodTypeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateType, err)
	}

	res, err := h.taxonomyService.CreateType(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateType, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateType)
}

func (h *taxonomyHandler) UpdateType(c *fiber.Ctx) error {
	req := new(domain.UpdateFoodTypeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateType, err)
	}

	res, err := h.taxonomyService.UpdateType(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateType, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateType)
}

func (h *taxonomyHandler) DeleteType(c *fiber.Ctx) error {
	if err := h.taxonomyService.DeleteType(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteType, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteType)
}

func (h *taxonomyHandler) GetSpecifications(c *fiber.Ctx) error {
	specs, err := h.taxonomyService.ListSpecifications(c.Context(), c.Query("food_type_id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetSpecifications, err)
	}
	return presenters.SuccessListResponse(c, specs, len(specs), fiber.StatusOK, domain.MessageSuccessGetSpecifications)
}

func (h *taxonomyHandler) CreateSpecification(c *fiber.Ctx) error {
	req := new(domain.CreateSpecificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSpecification, err)
	}

	res, err := h.taxonomyService.CreateSpecification(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSpecification, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSpecification)
}

func (h *taxonomyHandler) UpdateSpecification(c *fiber.Ctx) error {
	req := new(domain.UpdateSpecificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSpecification, err)
	}

	res, err := h.taxonomyService.UpdateSpecification(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSpecification, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSpecification)
}

func (h *taxonomyHandler) DeleteSpecification(c *fiber.Ctx) error {
	if err := h.taxonomyService.DeleteSpecification(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSpecification, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSpecification)
}

func (h *taxonomyHandler) GetCookTypes(c *fiber.Ctx) error {
	cookTypes, err := h.taxonomyService.ListCookTypes(c.Context(), c.Query("category_id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetCookTypes, err)
	}
	return presenters.SuccessListResponse(c, cookTypes, len(cookTypes), fiber.StatusOK, domain.MessageSuccessGetCookTypes)
}

func (h *taxonomyHandler) CreateCookType(c *fiber.Ctx) error {
	req := new(domain.CreateCookTypeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookType, err)
	}

	res, err := h.taxonomyService.CreateCookType(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCookType, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCookType)
}

func (h *taxonomyHandler) UpdateCookType(c *fiber.Ctx) error {
	req := new(domain.UpdateCookTypeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookType, err)
	}

	res, err := h.taxonomyService.UpdateCookType(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCookType, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCookType)
}

func (h *taxonomyHandler) DeleteCookType(c *fiber.Ctx) error {
	if err := h.taxonomyService.DeleteCookType(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCookType, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCookType)
}

// GetSelectionOptions resolves the dependent dropdowns for the ingredient and
// menu forms from the current selection.
func (h *taxonomyHandler) GetSelectionOptions(c *fiber.Ctx) error {
	sel := selection.Selection{
		CategoryID:      c.Query("category_id"),
		FoodTypeID:      c.Query("food_type_id"),
		SpecificationID: c.Query("specification_id"),
		CookTypeID:      c.Query("cook_type_id"),
	}

	options, err := h.taxonomyService.SelectionOptions(c.Context(), sel)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, options, fiber.StatusOK, domain.MessageSuccessGetTypes)
}
