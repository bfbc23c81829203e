package menu

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/entities"
	"Meal-Prep-Backend/internal/utils/storage"
	"Meal-Prep-Backend/pkg/ingredient"
	"Meal-Prep-Backend/pkg/location"
	"Meal-Prep-Backend/pkg/selection"
	"Meal-Prep-Backend/pkg/taxonomy"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const photoFolder = "menu-items"

type (
	MenuService interface {
		List(ctx context.Context, filter MenuFilter) ([]domain.MenuItemResponse, error)
		GetByID(ctx context.Context, id string) (domain.MenuItemResponse, error)
		CreateDraft(ctx context.Context, locationID string) (domain.MenuItemResponse, error)
		Create(ctx context.Context, req domain.CreateMenuItemRequest) (domain.MenuItemResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateMenuItemRequest) (domain.MenuItemResponse, error)
		ToggleStatus(ctx context.Context, id string) (domain.MenuItemResponse, error)
		RemovePhoto(ctx context.Context, id string, position int) (domain.MenuItemResponse, error)
		Delete(ctx context.Context, id string) error
	}

	menuService struct {
		menuRepository       MenuRepository
		taxonomyRepository   taxonomy.TaxonomyRepository
		ingredientRepository ingredient.IngredientRepository
		locationRepository   location.LocationRepository
		awsS3                storage.AwsS3
	}
)

func NewMenuService(
	menuRepository MenuRepository,
	taxonomyRepository taxonomy.TaxonomyRepository,
	ingredientRepository ingredient.IngredientRepository,
	locationRepository location.LocationRepository,
	awsS3 storage.AwsS3,
) MenuService {
	return &menuService{
		menuRepository:       menuRepository,
		taxonomyRepository:   taxonomyRepository,
		ingredientRepository: ingredientRepository,
		locationRepository:   locationRepository,
		awsS3:                awsS3,
	}
}

func parseOptionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return &id, nil
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func selectionFromItem(item *entities.MenuItem) selection.Selection {
	return selection.Selection{
		CategoryID:      uuidString(item.FoodCategoryID),
		FoodTypeID:      uuidString(item.FoodTypeID),
		SpecificationID: uuidString(item.SpecificationID),
		CookTypeID:      uuidString(item.CookTypeID),
	}
}

func (s *menuService) applySelection(item *entities.MenuItem, sel selection.Selection) error {
	categoryID, err := parseOptionalUUID(sel.CategoryID)
	if err != nil {
		return err
	}
	foodTypeID, err := parseOptionalUUID(sel.FoodTypeID)
	if err != nil {
		return err
	}
	specificationID, err := parseOptionalUUID(sel.SpecificationID)
	if err != nil {
		return err
	}
	cookTypeID, err := parseOptionalUUID(sel.CookTypeID)
	if err != nil {
		return err
	}

	item.FoodCategoryID = categoryID
	item.FoodTypeID = foodTypeID
	item.SpecificationID = specificationID
	item.CookTypeID = cookTypeID
	return nil
}

// validateSelection checks every id the selection still carries against the
// taxonomy tables.
func (s *menuService) validateSelection(ctx context.Context, sel selection.Selection) error {
	if sel.CategoryID != "" {
		if _, err := s.taxonomyRepository.GetCategoryByID(ctx, sel.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCategoryNotFound
			}
			return err
		}
	}
	if sel.FoodTypeID != "" {
		if _, err := s.taxonomyRepository.GetTypeByID(ctx, sel.FoodTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFoodTypeNotFound
			}
			return err
		}
	}
	if sel.SpecificationID != "" {
		if _, err := s.taxonomyRepository.GetSpecificationByID(ctx, sel.SpecificationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSpecificationNotFound
			}
			return err
		}
	}
	if sel.CookTypeID != "" {
		if _, err := s.taxonomyRepository.GetCookTypeByID(ctx, sel.CookTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCookTypeNotFound
			}
			return err
		}
	}
	return nil
}

func (s *menuService) ingredientAssocs(ctx context.Context, menuItemID uuid.UUID, reqs []domain.MenuItemIngredientRequest) ([]entities.MenuItemIngredient, error) {
	assocs := make([]entities.MenuItemIngredient, 0, len(reqs))
	for _, req := range reqs {
		ingredientID, err := uuid.Parse(req.IngredientID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if _, err := s.ingredientRepository.GetByID(ctx, req.IngredientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrIngredientNotFound
			}
			return nil, err
		}
		quantityID, err := parseOptionalUUID(req.IngredientQuantityID)
		if err != nil {
			return nil, err
		}
		assocs = append(assocs, entities.MenuItemIngredient{
			ID:                   uuid.New(),
			MenuItemID:           menuItemID,
			IngredientID:         ingredientID,
			IngredientQuantityID: quantityID,
			CustomQuantity:       req.CustomQuantity,
		})
	}
	return assocs, nil
}

// uploadPhotos decodes the submitted data URLs and stores them, handing back
// photo rows numbered from startOrder.
func (s *menuService) uploadPhotos(menuItemID uuid.UUID, raws []string, startOrder int) ([]entities.MenuItemPhoto, error) {
	blobs, err := decodePhotoBatch(raws)
	if err != nil {
		return nil, err
	}

	photos := make([]entities.MenuItemPhoto, 0, len(blobs))
	for i, blob := range blobs {
		fileName := uuid.New().String() + blob.Extension
		objectKey, err := s.awsS3.UploadBytes(fileName, blob.Data, blob.ContentType, photoFolder)
		if err != nil {
			return nil, err
		}
		photos = append(photos, entities.MenuItemPhoto{
			ID:           uuid.New(),
			MenuItemID:   menuItemID,
			PhotoURL:     s.awsS3.GetPublicLinkKey(objectKey),
			DisplayOrder: startOrder + i,
		})
	}
	return photos, nil
}

func toMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	photos := make([]domain.MenuItemPhotoResponse, 0, len(item.Photos))
	for _, photo := range item.Photos {
		photos = append(photos, domain.MenuItemPhotoResponse{
			ID:           photo.ID.String(),
			PhotoURL:     photo.PhotoURL,
			DisplayOrder: photo.DisplayOrder,
		})
	}

	assocs := make([]domain.MenuItemIngredientResponse, 0, len(item.Ingredients))
	for _, assoc := range item.Ingredients {
		resp := domain.MenuItemIngredientResponse{
			ID:                   assoc.ID.String(),
			IngredientID:         assoc.IngredientID.String(),
			IngredientQuantityID: uuidString(assoc.IngredientQuantityID),
			CustomQuantity:       assoc.CustomQuantity,
		}
		if assoc.Ingredient != nil {
			resp.IngredientName = assoc.Ingredient.Name
			if assoc.IngredientQuantityID != nil {
				for _, quantity := range assoc.Ingredient.Quantities {
					if quantity.ID == *assoc.IngredientQuantityID {
						resp.QuantityValue = quantity.QuantityValue
						resp.QuantityPrice = quantity.Price
						break
					}
				}
			}
		}
		assocs = append(assocs, resp)
	}

	return domain.MenuItemResponse{
		ID:              item.ID.String(),
		LocationID:      item.LocationID.String(),
		DisplayID:       item.DisplayID,
		Name:            item.Name,
		FoodCategoryID:  uuidString(item.FoodCategoryID),
		FoodTypeID:      uuidString(item.FoodTypeID),
		SpecificationID: uuidString(item.SpecificationID),
		CookTypeID:      uuidString(item.CookTypeID),
		Quantity:        item.Quantity,
		Description:     item.Description,
		Price:           item.Price,
		Tags:            item.Tags,
		PrepWorkout:     item.PrepWorkout,
		Status:          item.Status,
		Photos:          photos,
		Ingredients:     assocs,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func (s *menuService) List(ctx context.Context, filter MenuFilter) ([]domain.MenuItemResponse, error) {
	if filter.LocationID == "" {
		return nil, domain.ErrLocationIDRequired
	}

	items, err := s.menuRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MenuItemResponse, 0, len(items))
	for i := range items {
		response = append(response, toMenuItemResponse(&items[i]))
	}
	return response, nil
}

func (s *menuService) GetByID(ctx context.Context, id string) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}
	return toMenuItemResponse(item), nil
}

func (s *menuService) resolveLocation(ctx context.Context, locationID string) (uuid.UUID, error) {
	id, err := uuid.Parse(locationID)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	if _, err := s.locationRepository.GetByID(ctx, locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domain.ErrLocationNotFound
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (s *menuService) nextDisplayID(ctx context.Context, locationID string) (string, error) {
	count, err := s.menuRepository.CountByLocation(ctx, locationID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("M-%04d", count+1), nil
}

// CreateDraft opens an empty composer row. The backend rejects blank names, so
// the draft is born with a placeholder the form overwrites later.
func (s *menuService) CreateDraft(ctx context.Context, locationID string) (domain.MenuItemResponse, error) {
	if locationID == "" {
		return domain.MenuItemResponse{}, domain.ErrLocationIDRequired
	}
	locID, err := s.resolveLocation(ctx, locationID)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	displayID, err := s.nextDisplayID(ctx, locationID)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	item := &entities.MenuItem{
		ID:         uuid.New(),
		LocationID: locID,
		DisplayID:  displayID,
		Name:       domain.DraftMenuItemName,
		Status:     domain.MenuStatusDraft,
	}
	if err := s.menuRepository.Create(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}
	return toMenuItemResponse(item), nil
}

func (s *menuService) Create(ctx context.Context, req domain.CreateMenuItemRequest) (domain.MenuItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.MenuItemResponse{}, domain.ErrMenuItemNameRequired
	}

	locID, err := s.resolveLocation(ctx, req.LocationID)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	sel := selection.Selection{
		CategoryID:      req.FoodCategoryID,
		FoodTypeID:      req.FoodTypeID,
		SpecificationID: req.SpecificationID,
		CookTypeID:      req.CookTypeID,
	}
	if err := s.validateSelection(ctx, sel); err != nil {
		return domain.MenuItemResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = domain.MenuStatusDraft
	}

	displayID, err := s.nextDisplayID(ctx, req.LocationID)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	item := &entities.MenuItem{
		ID:          uuid.New(),
		LocationID:  locID,
		DisplayID:   displayID,
		Name:        name,
		Quantity:    req.Quantity,
		Description: req.Description,
		Price:       req.Price,
		Tags:        JoinTagSet(ParseTagSet(req.Tags)),
		PrepWorkout: JoinTagSet(ParseTagSet(req.PrepWorkout)),
		Status:      status,
	}
	if err := s.applySelection(item, sel); err != nil {
		return domain.MenuItemResponse{}, err
	}

	photos, err := s.uploadPhotos(item.ID, req.Photos, 0)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}
	assocs, err := s.ingredientAssocs(ctx, item.ID, req.Ingredients)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	if err := s.menuRepository.Create(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}
	if err := s.menuRepository.AddPhotos(ctx, photos); err != nil {
		return domain.MenuItemResponse{}, err
	}
	if len(assocs) > 0 {
		if err := s.menuRepository.ReplaceIngredients(ctx, item.ID, assocs); err != nil {
			return domain.MenuItemResponse{}, err
		}
	}

	return s.GetByID(ctx, item.ID.String())
}

func (s *menuService) Update(ctx context.Context, id string, req domain.UpdateMenuItemRequest) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNameRequired
		}
		item.Name = name
	}

	// Changing a level of the hierarchy clears its dependants in the same
	// step; explicit values in the request then land on the fresh selection.
	sel := selectionFromItem(item)
	if req.FoodCategoryID != nil {
		sel = sel.WithCategory(*req.FoodCategoryID)
	}
	if req.FoodTypeID != nil {
		sel = sel.WithFoodType(*req.FoodTypeID)
	}
	if req.SpecificationID != nil {
		sel = sel.WithSpecification(*req.SpecificationID)
	}
	if req.CookTypeID != nil {
		sel = sel.WithCookType(*req.CookTypeID)
	}
	if err := s.validateSelection(ctx, sel); err != nil {
		return domain.MenuItemResponse{}, err
	}
	if err := s.applySelection(item, sel); err != nil {
		return domain.MenuItemResponse{}, err
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Tags != nil {
		item.Tags = JoinTagSet(ParseTagSet(*req.Tags))
	}
	if req.PrepWorkout != nil {
		item.PrepWorkout = JoinTagSet(ParseTagSet(*req.PrepWorkout))
	}
	if req.Status != nil {
		item.Status = *req.Status
	}

	if err := s.menuRepository.Update(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	if req.Photos != nil {
		maxOrder, err := s.menuRepository.MaxPhotoOrder(ctx, id)
		if err != nil {
			return domain.MenuItemResponse{}, err
		}
		photos, err := s.uploadPhotos(item.ID, req.Photos, maxOrder+1)
		if err != nil {
			return domain.MenuItemResponse{}, err
		}
		if err := s.menuRepository.AddPhotos(ctx, photos); err != nil {
			return domain.MenuItemResponse{}, err
		}
	}

	if req.Ingredients != nil {
		assocs, err := s.ingredientAssocs(ctx, item.ID, req.Ingredients)
		if err != nil {
			return domain.MenuItemResponse{}, err
		}
		if err := s.menuRepository.ReplaceIngredients(ctx, item.ID, assocs); err != nil {
			return domain.MenuItemResponse{}, err
		}
	}

	return s.GetByID(ctx, id)
}

func (s *menuService) ToggleStatus(ctx context.Context, id string) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	if item.Status == domain.MenuStatusActive {
		item.Status = domain.MenuStatusDraft
	} else {
		item.Status = domain.MenuStatusActive
	}

	if err := s.menuRepository.Update(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}
	return toMenuItemResponse(item), nil
}

// RemovePhoto deletes the photo at the given display position. An out of range
// position leaves the item untouched.
func (s *menuService) RemovePhoto(ctx context.Context, id string, position int) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	if position < 0 || position >= len(item.Photos) {
		return toMenuItemResponse(item), nil
	}

	photo := item.Photos[position]
	if key := s.awsS3.GetObjectKeyFromLink(photo.PhotoURL); key != "" {
		if err := s.awsS3.DeleteFile(key); err != nil {
			return domain.MenuItemResponse{}, err
		}
	}
	if err := s.menuRepository.DeletePhoto(ctx, photo.ID.String()); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return s.GetByID(ctx, id)
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	item, err := s.menuRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	for _, photo := range item.Photos {
		if key := s.awsS3.GetObjectKeyFromLink(photo.PhotoURL); key != "" {
			if err := s.awsS3.DeleteFile(key); err != nil {
				return err
			}
		}
	}

	return s.menuRepository.Delete(ctx, id)
}
