package taxonomy

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/entities"
	"Meal-Prep-Backend/pkg/selection"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TaxonomyService interface {
		ListCategories(ctx context.Context) ([]domain.FoodCategoryResponse, error)
		GetCategoryByID(ctx context.Context, id string) (domain.FoodCategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.FoodCategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.FoodCategoryResponse, error)
		DeleteCategory(ctx context.Context, id string) error

		ListTypes(ctx context.Context, categoryID string) ([]domain.FoodTypeResponse, error)
		GetTypeByID(ctx context.Context, id string) (domain.FoodTypeResponse, error)
		CreateType(ctx context.Context, req domain.CreateFoodTypeRequest) (domain.FoodTypeResponse, error)
		UpdateType(ctx context.Context, id string, req domain.UpdateFoodTypeRequest) (domain.FoodTypeResponse, error)
		DeleteType(ctx context.Context, id string) error

		ListSpecifications(ctx context.Context, foodTypeID string) ([]domain.SpecificationResponse, error)
		CreateSpecification(ctx context.Context, req domain.CreateSpecificationRequest) (domain.SpecificationResponse, error)
		UpdateSpecification(ctx context.Context, id string, req domain.UpdateSpecificationRequest) (domain.SpecificationResponse, error)
		DeleteSpecification(ctx context.Context, id string) error

		ListCookTypes(ctx context.Context, categoryID string) ([]domain.CookTypeResponse, error)
		CreateCookType(ctx context.Context, req domain.CreateCookTypeRequest) (domain.CookTypeResponse, error)
		UpdateCookType(ctx context.Context, id string, req domain.UpdateCookTypeRequest) (domain.CookTypeResponse, error)
		DeleteCookType(ctx context.Context, id string) error

		SelectionOptions(ctx context.Context, sel selection.Selection) (domain.SelectionOptionsResponse, error)
	}

	taxonomyService struct {
		taxonomyRepository TaxonomyRepository
		cache              TaxonomyCache
	}
)

func NewTaxonomyService(taxonomyRepository TaxonomyRepository, cache TaxonomyCache) TaxonomyService {
	return &taxonomyService{
		taxonomyRepository: taxonomyRepository,
		cache:              cache,
	}
}

func toCategoryResponse(category *entities.FoodCategory) domain.FoodCategoryResponse {
	return domain.FoodCategoryResponse{
		ID:                category.ID.String(),
		Name:              category.Name,
		DisplayOrder:      category.DisplayOrder,
		ShowSpecification: category.ShowSpecification,
		ShowCookType:      category.ShowCookType,
		CreatedAt:         category.CreatedAt,
		UpdatedAt:         category.UpdatedAt,
	}
}

func toTypeResponse(foodType *entities.FoodType) domain.FoodTypeResponse {
	res := domain.FoodTypeResponse{
		ID:         foodType.ID.String(),
		CategoryID: foodType.CategoryID.String(),
		Name:       foodType.Name,
		CreatedAt:  foodType.CreatedAt,
	}
	if foodType.Category != nil {
		res.CategoryName = foodType.Category.Name
	}
	return res
}

func toSpecificationResponse(spec *entities.Specification) domain.SpecificationResponse {
	res := domain.SpecificationResponse{
		ID:         spec.ID.String(),
		FoodTypeID: spec.FoodTypeID.String(),
		Name:       spec.Name,
		CreatedAt:  spec.CreatedAt,
	}
	if spec.FoodType != nil {
		res.FoodTypeName = spec.FoodType.Name
		if spec.FoodType.Category != nil {
			res.CategoryName = spec.FoodType.Category.Name
		}
	}
	return res
}

func toCookTypeResponse(cookType *entities.CookType) domain.CookTypeResponse {
	res := domain.CookTypeResponse{
		ID:         cookType.ID.String(),
		CategoryID: cookType.CategoryID.String(),
		Name:       cookType.Name,
		CreatedAt:  cookType.CreatedAt,
	}
	if cookType.Category != nil {
		res.CategoryName = cookType.Category.Name
	}
	return res
}

func (s *taxonomyService) listCategories(ctx context.Context) ([]entities.FoodCategory, error) {
	var categories []entities.FoodCategory
	if s.cache.Get(ctx, cacheKeyCategories, &categories) {
		return categories, nil
	}
	categories, err := s.taxonomyRepository.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyCategories, categories)
	return categories, nil
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]domain.FoodCategoryResponse, error) {
	categories, err := s.listCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodCategoryResponse, 0, len(categories))
	for i := range categories {
		response = append(response, toCategoryResponse(&categories[i]))
	}
	return response, nil
}

func (s *taxonomyService) GetCategoryByID(ctx context.Context, id string) (domain.FoodCategoryResponse, error) {
	category, err := s.taxonomyRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodCategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.FoodCategoryResponse{}, err
	}
	return toCategoryResponse(category), nil
}

func (s *taxonomyService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.FoodCategoryResponse, error) {
	category := &entities.FoodCategory{
		ID:                uuid.New(),
		Name:              req.Name,
		DisplayOrder:      req.DisplayOrder,
		ShowSpecification: req.ShowSpecification,
		ShowCookType:      req.ShowCookType,
	}

	if err := s.taxonomyRepository.CreateCategory(ctx, category); err != nil {
		return domain.FoodCategoryResponse{}, err
	}

	s.cache.Invalidate(ctx, cacheKeyCategories)
	return toCategoryResponse(category), nil
}

func (s *taxonomyService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.FoodCategoryResponse, error) {
	category, err := s.taxonomyRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodCategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.FoodCategoryResponse{}, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if req.ShowSpecification != nil {
		category.ShowSpecification = *req.ShowSpecification
	}
	if req.ShowCookType != nil {
		category.ShowCookType = *req.ShowCookType
	}

	if err := s.taxonomyRepository.UpdateCategory(ctx, category); err != nil {
		return domain.FoodCategoryResponse{}, err
	}

	s.cache.Invalidate(ctx, cacheKeyCategories)
	return toCategoryResponse(category), nil
}

func (s *taxonomyService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.taxonomyRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	refs, err := s.taxonomyRepository.CountCategoryReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrCategoryInUse
	}

	if err := s.taxonomyRepository.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cacheKeyCategories, cacheKeyTypes+id, cacheKeyCookTypes+id)
	s.cache.Invalidate(ctx, cacheKeyTypes, cacheKeyCookTypes)
	return nil
}

func (s *taxonomyService) listTypes(ctx context.Context, categoryID string) ([]entities.FoodType, error) {
	var types []entities.FoodType
	if s.cache.Get(ctx, cacheKeyTypes+categoryID, &types) {
		return types, nil
	}
	types, err := s.taxonomyRepository.ListTypes(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyTypes+categoryID, types)
	return types, nil
}

func (s *taxonomyService) ListTypes(ctx context.Context, categoryID string) ([]domain.FoodTypeResponse, error) {
	types, err := s.listTypes(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodTypeResponse, 0, len(types))
	for i := range types {
		response = append(response, toTypeResponse(&types[i]))
	}
	return response, nil
}

func (s *taxonomyService) GetTypeByID(ctx context.Context, id string) (domain.FoodTypeResponse, error) {
	foodType, err := s.taxonomyRepository.GetTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodTypeResponse{}, domain.ErrFoodTypeNotFound
		}
		return domain.FoodTypeResponse{}, err
	}
	return toTypeResponse(foodType), nil
}

func (s *taxonomyService) CreateType(ctx context.Context, req domain.CreateFoodTypeRequest) (domain.FoodTypeResponse, error) {
	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.FoodTypeResponse{}, domain.ErrParseUUID
	}

	if _, err := s.taxonomyRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodTypeResponse{}, domain.ErrCategoryNotFound
		}
		return domain.FoodTypeResponse{}, err
	}

	foodType := &entities.FoodType{
		ID:         uuid.New(),
		CategoryID: categoryUUID,
		Name:       req.Name,
	}

	if err := s.taxonomyRepository.CreateType(ctx, foodType); err != nil {
		return domain.FoodTypeResponse{}, err
	}

	s.cache.InvalidatePrefix(ctx, cacheKeyTypes)
	return toTypeResponse(foodType), nil
}

func (s *taxonomyService) UpdateType(ctx context.Context, id string, req domain.UpdateFoodTypeRequest) (domain.FoodTypeResponse, error) {
	foodType, err := s.taxonomyRepository.GetTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodTypeResponse{}, domain.ErrFoodTypeNotFound
		}
		return domain.FoodTypeResponse{}, err
	}

	if req.CategoryID != nil {
		categoryUUID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return domain.FoodTypeResponse{}, domain.ErrParseUUID
		}
		if _, err := s.taxonomyRepository.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.FoodTypeResponse{}, domain.ErrCategoryNotFound
			}
			return domain.FoodTypeResponse{}, err
		}
		foodType.CategoryID = categoryUUID
		foodType.Category = nil
	}
	if req.Name != nil {
		foodType.Name = *req.Name
	}

	if err := s.taxonomyRepository.UpdateType(ctx, foodType); err != nil {
		return domain.FoodTypeResponse{}, err
	}

	s.cache.InvalidatePrefix(ctx, cacheKeyTypes)
	return toTypeResponse(foodType), nil
}

func (s *taxonomyService) DeleteType(ctx context.Context, id string) error {
	foodType, err := s.taxonomyRepository.GetTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodTypeNotFound
		}
		return err
	}

	refs, err := s.taxonomyRepository.CountTypeReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrFoodTypeInUse
	}

	if err := s.taxonomyRepository.DeleteType(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cacheKeyTypes, cacheKeyTypes+foodType.CategoryID.String(), cacheKeySpecs+id)
	return nil
}

func (s *taxonomyService) listSpecifications(ctx context.Context, foodTypeID string) ([]entities.Specification, error) {
	var specs []entities.Specification
	if s.cache.Get(ctx, cacheKeySpecs+foodTypeID, &specs) {
		return specs, nil
	}
	specs, err := s.taxonomyRepository.ListSpecifications(ctx, foodTypeID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeySpecs+foodTypeID, specs)
	return specs, nil
}

func (s *taxonomyService) ListSpecifications(ctx context.Context, foodTypeID string) ([]domain.SpecificationResponse, error) {
	specs, err := s.listSpecifications(ctx, foodTypeID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SpecificationResponse, 0, len(specs))
	for i := range specs {
		response = append(response, toSpecificationResponse(&specs[i]))
	}
	return response, nil
}

func (s *taxonomyService) CreateSpecification(ctx context.Context, req domain.CreateSpecificationRequest) (domain.SpecificationResponse, error) {
	foodTypeUUID, err := uuid.Parse(req.FoodTypeID)
	if err != nil {
		return domain.SpecificationResponse{}, domain.ErrParseUUID
	}

	if _, err := s.taxonomyRepository.GetTypeByID(ctx, req.FoodTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SpecificationResponse{}, domain.ErrFoodTypeNotFound
		}
		return domain.SpecificationResponse{}, err
	}

	spec := &entities.Specification{
		ID:         uuid.New(),
		FoodTypeID: foodTypeUUID,
		Name:       req.Name,
	}

	if err := s.taxonomyRepository.CreateSpecification(ctx, spec); err != nil {
		return domain.SpecificationResponse{}, err
	}

	s.cache.InvalidatePrefix(ctx, cacheKeySpecs)
	return toSpecificationResponse(spec), nil
}

func (s *taxonomyService) UpdateSpecification(ctx context.Context, id string, req domain.UpdateSpecificationRequest) (domain.SpecificationResponse, error) {
	spec, err := s.taxonomyRepository.GetSpecificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SpecificationResponse{}, domain.ErrSpecificationNotFound
		}
		return domain.SpecificationResponse{}, err
	}

	if req.FoodTypeID != nil {
		foodTypeUUID, err := uuid.Parse(*req.FoodTypeID)
		if err != nil {
			return domain.SpecificationResponse{}, domain.ErrParseUUID
		}
		if _, err := s.taxonomyRepository.GetTypeByID(ctx, *req.FoodTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.SpecificationResponse{}, domain.ErrFoodTypeNotFound
			}
			return domain.SpecificationResponse{}, err
		}
		spec.FoodTypeID = foodTypeUUID
		spec.FoodType = nil
	}
	if req.Name != nil {
		spec.Name = *req.Name
	}

	if err := s.taxonomyRepository.UpdateSpecification(ctx, spec); err != nil {
		return domain.SpecificationResponse{}, err
	}

	s.cache.InvalidatePrefix(ctx, cacheKeySpecs)
	return toSpecificationResponse(spec), nil
}

func (s *taxonomyService) DeleteSpecification(ctx context.Context, id string) error {
	spec, err := s.taxonomyRepository.GetSpecificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSpecificationNotFound
		}
		return err
	}

	refs, err := s.taxonomyRepository.CountSpecificationReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrSpecificationInUse
	}

	if err := s.taxonomyRepository.DeleteSpecification(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cacheKeySpecs, cacheKeySpecs+spec.FoodTypeID.String())
	return nil
}

func (s *taxonomyService) listCookTypes(ctx context.Context, categoryID string) ([]entities.CookType, error) {
	var cookTypes []entities.CookType
	if s.cache.Get(ctx, cacheKeyCookTypes+categoryID, &cookTypes) {
		return cookTypes, nil
	}
	cookTypes, err := s.taxonomyRepository.ListCookTypes(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyCookTypes+categoryID, cookTypes)
	return cookTypes, nil
}

func (s *taxonomyService) ListCookTypes(ctx context.Context, categoryID string) ([]domain.CookTypeResponse, error) {
	cookTypes, err := s.listCookTypes(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CookTypeResponse, 0, len(cookTypes))
	for i := range cookTypes {
		response = append(response, toCookTypeResponse(&cookTypes[i]))
	}
	return response, nil
}

func (s *taxonomyService) CreateCookType(ctx context.Context, req domain.CreateCookTypeRequest) (domain.CookTypeResponse, error) {
	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.CookTypeResponse{}, domain.ErrParseUUID
	}

	if _, err := s.taxonomyRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookTypeResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CookTypeResponse{}, err
	}

	cookType := &entities.CookType{
		ID:         uuid.New(),
		CategoryID: categoryUUID,
		Name:       req.Name,
	}

	if err := s.taxonomyRepository.CreateCookType(ctx, cookType); err != nil {
		return domain.CookTypeResponse{}, err
	}

	s.cache.InvalidatePrefix(ctx, cacheKeyCookTypes)
	return toCookTypeResponse(cookType), nil
}

func (s *taxonomyService) UpdateCookType(ctx context.Context, id string, req domain.UpdateCookTypeRequest) (domain.CookTypeResponse, error) {
	cookType, err := s.taxonomyRepository.GetCookTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookTypeResponse{}, domain.ErrCookTypeNotFound
		}
		return domain.CookTypeResponse{}, err
	}

	if req.CategoryID != nil {
		categoryUUID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return domain.CookTypeResponse{}, domain.ErrParseUUID
		}
		if _, err := s.taxonomyRepository.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CookTypeResponse{}, domain.ErrCategoryNotFound
			}
			return domain.CookTypeResponse{}, err
		}
		cookType.CategoryID = categoryUUID
		cookType.Category = nil
	}
	if req.Name != nil {
		cookType.Name = *req.Name
	}

	if err := s.taxonomyRepository.UpdateCookType(ctx, cookType); err != nil {
		return domain.CookTypeResponse{}, err
	}

	s.cache.InvalidatePrefix(ctx, cacheKeyCookTypes)
	return toCookTypeResponse(cookType), nil
}

func (s *taxonomyService) DeleteCookType(ctx context.Context, id string) error {
	cookType, err := s.taxonomyRepository.GetCookTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCookTypeNotFound
		}
		return err
	}

	refs, err := s.taxonomyRepository.CountCookTypeReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrCookTypeInUse
	}

	if err := s.taxonomyRepository.DeleteCookType(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cacheKeyCookTypes, cacheKeyCookTypes+cookType.CategoryID.String())
	return nil
}

// SelectionOptions feeds the dependent dropdowns of the ingredient and menu
// item forms from one snapshot, so both forms cascade identically.
func (s *taxonomyService) SelectionOptions(ctx context.Context, sel selection.Selection) (domain.SelectionOptionsResponse, error) {
	catalog := selection.Catalog{}

	categories, err := s.listCategories(ctx)
	if err != nil {
		return domain.SelectionOptionsResponse{}, err
	}
	for i := range categories {
		catalog.Categories = append(catalog.Categories, selection.Category{
			ID:                categories[i].ID.String(),
			Name:              categories[i].Name,
			ShowSpecification: categories[i].ShowSpecification,
			ShowCookType:      categories[i].ShowCookType,
		})
	}

	var types []entities.FoodType
	if sel.CategoryID != "" {
		types, err = s.listTypes(ctx, sel.CategoryID)
		if err != nil {
			return domain.SelectionOptionsResponse{}, err
		}
	}
	typesByID := make(map[string]*entities.FoodType, len(types))
	for i := range types {
		catalog.FoodTypes = append(catalog.FoodTypes, selection.FoodType{
			ID:         types[i].ID.String(),
			CategoryID: types[i].CategoryID.String(),
			Name:       types[i].Name,
		})
		typesByID[types[i].ID.String()] = &types[i]
	}

	var specs []entities.Specification
	if sel.FoodTypeID != "" {
		if _, ok := typesByID[sel.FoodTypeID]; !ok {
			// Category was not part of the selection; resolve the food type so
			// the catalog still knows its owning category.
			foodType, err := s.taxonomyRepository.GetTypeByID(ctx, sel.FoodTypeID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.SelectionOptionsResponse{}, err
			}
			if foodType != nil {
				catalog.FoodTypes = append(catalog.FoodTypes, selection.FoodType{
					ID:         foodType.ID.String(),
					CategoryID: foodType.CategoryID.String(),
					Name:       foodType.Name,
				})
			}
		}

		specs, err = s.listSpecifications(ctx, sel.FoodTypeID)
		if err != nil {
			return domain.SelectionOptionsResponse{}, err
		}
	}
	for i := range specs {
		catalog.Specifications = append(catalog.Specifications, selection.Specification{
			ID:         specs[i].ID.String(),
			FoodTypeID: specs[i].FoodTypeID.String(),
			Name:       specs[i].Name,
		})
	}

	var cookTypes []entities.CookType
	if sel.CategoryID != "" {
		cookTypes, err = s.listCookTypes(ctx, sel.CategoryID)
		if err != nil {
			return domain.SelectionOptionsResponse{}, err
		}
	}
	cookTypesByID := make(map[string]*entities.CookType, len(cookTypes))
	for i := range cookTypes {
		catalog.CookTypes = append(catalog.CookTypes, selection.CookType{
			ID:         cookTypes[i].ID.String(),
			CategoryID: cookTypes[i].CategoryID.String(),
			Name:       cookTypes[i].Name,
		})
		cookTypesByID[cookTypes[i].ID.String()] = &cookTypes[i]
	}

	specsByID := make(map[string]*entities.Specification, len(specs))
	for i := range specs {
		specsByID[specs[i].ID.String()] = &specs[i]
	}

	response := domain.SelectionOptionsResponse{
		FoodTypes:      []domain.FoodTypeResponse{},
		Specifications: []domain.SpecificationResponse{},
		CookTypes:      []domain.CookTypeResponse{},
	}
	for _, opt := range catalog.FoodTypeOptions(sel) {
		if foodType, ok := typesByID[opt.ID]; ok {
			response.FoodTypes = append(response.FoodTypes, toTypeResponse(foodType))
		}
	}
	for _, opt := range catalog.SpecificationOptions(sel) {
		if spec, ok := specsByID[opt.ID]; ok {
			response.Specifications = append(response.Specifications, toSpecificationResponse(spec))
		}
	}
	for _, opt := range catalog.CookTypeOptions(sel) {
		if cookType, ok := cookTypesByID[opt.ID]; ok {
			response.CookTypes = append(response.CookTypes, toCookTypeResponse(cookType))
		}
	}

	return response, nil
}
