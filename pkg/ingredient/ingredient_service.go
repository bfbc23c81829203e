package ingredient

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/entities"
	"Meal-Prep-Backend/internal/utils"
	"Meal-Prep-Backend/pkg/selection"
	"Meal-Prep-Backend/pkg/taxonomy"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		List(ctx context.Context, categoryID, foodTypeID string, isActive *bool) ([]domain.IngredientResponse, error)
		ListByCategory(ctx context.Context) ([]domain.IngredientCategoryGroup, error)
		GetByID(ctx context.Context, id string) (domain.IngredientResponse, error)
		Create(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error)
		Delete(ctx context.Context, id string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		taxonomyRepository   taxonomy.TaxonomyRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, taxonomyRepository taxonomy.TaxonomyRepository) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		taxonomyRepository:   taxonomyRepository,
	}
}

func toQuantityResponses(quantities []entities.IngredientQuantity) []domain.IngredientQuantityResponse {
	out := make([]domain.IngredientQuantityResponse, 0, len(quantities))
	for _, q := range quantities {
		out = append(out, domain.IngredientQuantityResponse{
			ID:            q.ID.String(),
			QuantityValue: q.QuantityValue,
			QuantityGrams: q.QuantityGrams,
			Price:         q.Price,
			IsAvailable:   q.IsAvailable,
		})
	}
	return out
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	res := domain.IngredientResponse{
		ID:          ingredient.ID.String(),
		FoodTypeID:  ingredient.FoodTypeID.String(),
		Name:        ingredient.Name,
		Description: ingredient.Description,
		IsActive:    ingredient.IsActive,
		Quantities:  toQuantityResponses(ingredient.Quantities),
		CreatedAt:   ingredient.CreatedAt,
	}
	if ingredient.SpecificationID != nil {
		res.SpecificationID = ingredient.SpecificationID.String()
	}
	if ingredient.CookTypeID != nil {
		res.CookTypeID = ingredient.CookTypeID.String()
	}
	if ingredient.FoodType != nil {
		res.FoodTypeName = ingredient.FoodType.Name
		res.CategoryID = ingredient.FoodType.CategoryID.String()
		if ingredient.FoodType.Category != nil {
			res.CategoryName = ingredient.FoodType.Category.Name
		}
	}
	if ingredient.Specification != nil {
		res.SpecificationName = ingredient.Specification.Name
	}
	if ingredient.CookType != nil {
		res.CookTypeName = ingredient.CookType.Name
	}
	return res
}

func (s *ingredientService) typeCategoryIndex(ctx context.Context) (map[string]string, error) {
	types, err := s.taxonomyRepository.ListTypes(ctx, "")
	if err != nil {
		return nil, err
	}
	index := make(map[string]string, len(types))
	for _, foodType := range types {
		index[foodType.ID.String()] = foodType.CategoryID.String()
	}
	return index, nil
}

func (s *ingredientService) List(ctx context.Context, categoryID, foodTypeID string, isActive *bool) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.List(ctx, foodTypeID, isActive)
	if err != nil {
		return nil, err
	}
	ingredients = utils.UniqueBy(ingredients, func(i entities.Ingredient) uuid.UUID { return i.ID })

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		response = append(response, toIngredientResponse(&ingredients[i]))
	}

	if categoryID == "" {
		return response, nil
	}

	category, err := s.taxonomyRepository.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	typeCategory, err := s.typeCategoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.IngredientResponse, 0, len(response))
	for _, item := range response {
		in := categoryMatchInput{
			FoodTypeID:   item.FoodTypeID,
			CategoryID:   item.CategoryID,
			CategoryName: item.CategoryName,
		}
		if matchesCategory(in, category, typeCategory) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *ingredientService) ListByCategory(ctx context.Context) ([]domain.IngredientCategoryGroup, error) {
	categories, err := s.taxonomyRepository.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.ingredientRepository.List(ctx, "", nil)
	if err != nil {
		return nil, err
	}
	ingredients = utils.UniqueBy(ingredients, func(i entities.Ingredient) uuid.UUID { return i.ID })
	typeCategory, err := s.typeCategoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]domain.IngredientCategoryGroup, 0, len(categories))
	for i := range categories {
		group := domain.IngredientCategoryGroup{
			CategoryID:   categories[i].ID.String(),
			CategoryName: categories[i].Name,
			Ingredients:  []domain.IngredientResponse{},
		}
		for j := range ingredients {
			item := toIngredientResponse(&ingredients[j])
			in := categoryMatchInput{
				FoodTypeID:   item.FoodTypeID,
				CategoryID:   item.CategoryID,
				CategoryName: item.CategoryName,
			}
			if matchesCategory(in, &categories[i], typeCategory) {
				group.Ingredients = append(group.Ingredients, item)
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *ingredientService) GetByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) validateSpecification(ctx context.Context, specificationID string, foodTypeID uuid.UUID) (*uuid.UUID, error) {
	spec, err := s.taxonomyRepository.GetSpecificationByID(ctx, specificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSpecificationNotFound
		}
		return nil, err
	}
	if spec.FoodTypeID != foodTypeID {
		return nil, domain.ErrSpecificationWrongType
	}
	id := spec.ID
	return &id, nil
}

func (s *ingredientService) validateCookType(ctx context.Context, cookTypeID string, categoryID uuid.UUID) (*uuid.UUID, error) {
	cookType, err := s.taxonomyRepository.GetCookTypeByID(ctx, cookTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCookTypeNotFound
		}
		return nil, err
	}
	if cookType.CategoryID != categoryID {
		return nil, domain.ErrCookTypeWrongCategory
	}
	id := cookType.ID
	return &id, nil
}

func scheduleToQuantities(schedule Schedule, ingredientID uuid.UUID) []entities.IngredientQuantity {
	rows := schedule.ValidRows()
	out := make([]entities.IngredientQuantity, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.IngredientQuantity{
			ID:            uuid.New(),
			IngredientID:  ingredientID,
			QuantityValue: row.QuantityValue,
			QuantityGrams: row.QuantityGrams,
			Price:         row.Price,
			IsAvailable:   row.IsAvailable,
		})
	}
	return out
}

func (s *ingredientService) Create(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	foodTypeUUID, err := uuid.Parse(req.FoodTypeID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	foodType, err := s.taxonomyRepository.GetTypeByID(ctx, req.FoodTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrFoodTypeNotFound
		}
		return domain.IngredientResponse{}, err
	}

	ingredient := &entities.Ingredient{
		ID:          uuid.New(),
		FoodTypeID:  foodTypeUUID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if req.SpecificationID != "" {
		specID, err := s.validateSpecification(ctx, req.SpecificationID, foodTypeUUID)
		if err != nil {
			return domain.IngredientResponse{}, err
		}
		ingredient.SpecificationID = specID
	}
	if req.CookTypeID != "" {
		cookTypeID, err := s.validateCookType(ctx, req.CookTypeID, foodType.CategoryID)
		if err != nil {
			return domain.IngredientResponse{}, err
		}
		ingredient.CookTypeID = cookTypeID
	}

	// A bare create gets the default 100g-400g rows; an explicit empty list
	// means the caller removed them all.
	schedule := ScheduleFromRequests(req.Quantities)
	if req.Quantities == nil {
		schedule = DefaultSchedule()
	}
	ingredient.Quantities = scheduleToQuantities(schedule, ingredient.ID)

	if err := s.ingredientRepository.Create(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return s.GetByID(ctx, ingredient.ID.String())
}

func (s *ingredientService) Update(ctx context.Context, id string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	sel := selection.Selection{FoodTypeID: ingredient.FoodTypeID.String()}
	if ingredient.SpecificationID != nil {
		sel.SpecificationID = ingredient.SpecificationID.String()
	}

	if req.FoodTypeID != nil {
		foodTypeUUID, err := uuid.Parse(*req.FoodTypeID)
		if err != nil {
			return domain.IngredientResponse{}, domain.ErrParseUUID
		}
		if _, err := s.taxonomyRepository.GetTypeByID(ctx, *req.FoodTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.IngredientResponse{}, domain.ErrFoodTypeNotFound
			}
			return domain.IngredientResponse{}, err
		}

		// Same cascade as the menu form: a food type change invalidates the
		// specification in the same update.
		sel = sel.WithFoodType(*req.FoodTypeID)
		ingredient.FoodTypeID = foodTypeUUID
		ingredient.FoodType = nil
		if sel.SpecificationID == "" {
			ingredient.SpecificationID = nil
			ingredient.Specification = nil
		}
	}

	if req.SpecificationID != nil {
		if *req.SpecificationID == "" {
			ingredient.SpecificationID = nil
			ingredient.Specification = nil
		} else {
			specID, err := s.validateSpecification(ctx, *req.SpecificationID, ingredient.FoodTypeID)
			if err != nil {
				return domain.IngredientResponse{}, err
			}
			ingredient.SpecificationID = specID
			ingredient.Specification = nil
		}
	}

	if req.CookTypeID != nil {
		if *req.CookTypeID == "" {
			ingredient.CookTypeID = nil
			ingredient.CookType = nil
		} else {
			foodType, err := s.taxonomyRepository.GetTypeByID(ctx, ingredient.FoodTypeID.String())
			if err != nil {
				return domain.IngredientResponse{}, err
			}
			cookTypeID, err := s.validateCookType(ctx, *req.CookTypeID, foodType.CategoryID)
			if err != nil {
				return domain.IngredientResponse{}, err
			}
			ingredient.CookTypeID = cookTypeID
			ingredient.CookType = nil
		}
	}

	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.Description != nil {
		ingredient.Description = *req.Description
	}
	if req.IsActive != nil {
		ingredient.IsActive = *req.IsActive
	}

	if err := s.ingredientRepository.Update(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	if req.Quantities != nil {
		schedule := ScheduleFromRequests(req.Quantities)
		if err := s.ingredientRepository.ReplaceQuantities(ctx, ingredient.ID, scheduleToQuantities(schedule, ingredient.ID)); err != nil {
			return domain.IngredientResponse{}, err
		}
	}

	return s.GetByID(ctx, ingredient.ID.String())
}

func (s *ingredientService) Delete(ctx context.Context, id string) error {
	if _, err := s.ingredientRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	refs, err := s.ingredientRepository.CountMenuReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrIngredientInUse
	}

	return s.ingredientRepository.Delete(ctx, id)
}
