package location

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LocationService interface {
		List(ctx context.Context, status string) ([]domain.LocationResponse, error)
		GetByID(ctx context.Context, id string) (domain.LocationResponse, error)
		Create(ctx context.Context, req domain.CreateLocationRequest) (domain.LocationResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateLocationRequest) (domain.LocationResponse, error)
		Delete(ctx context.Context, id string) error
	}

	locationService struct {
		locationRepository LocationRepository
	}
)

func NewLocationService(locationRepository LocationRepository) LocationService {
	return &locationService{locationRepository: locationRepository}
}

func toLocationResponse(location *entities.Location) domain.LocationResponse {
	return domain.LocationResponse{
		ID:           location.ID.String(),
		Name:         location.Name,
		Currency:     location.Currency,
		LocationType: location.LocationType,
		Address:      location.Address,
		Phone:        location.Phone,
		Status:       location.Status,
		CreatedAt:    location.CreatedAt,
		UpdatedAt:    location.UpdatedAt,
	}
}

func (s *locationService) List(ctx context.Context, status string) ([]domain.LocationResponse, error) {
	locations, err := s.locationRepository.List(ctx, status)
	if err != nil {
		return nil, err
	}

	response := make([]domain.LocationResponse, 0, len(locations))
	for i := range locations {
		response = append(response, toLocationResponse(&locations[i]))
	}
	return response, nil
}

func (s *locationService) GetByID(ctx context.Context, id string) (domain.LocationResponse, error) {
	location, err := s.locationRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LocationResponse{}, domain.ErrLocationNotFound
		}
		return domain.LocationResponse{}, err
	}
	return toLocationResponse(location), nil
}

func (s *locationService) Create(ctx context.Context, req domain.CreateLocationRequest) (domain.LocationResponse, error) {
	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	location := &entities.Location{
		ID:           uuid.New(),
		Name:         req.Name,
		Currency:     currency,
		LocationType: req.LocationType,
		Address:      req.Address,
		Phone:        req.Phone,
		Status:       status,
	}

	if err := s.locationRepository.Create(ctx, location); err != nil {
		return domain.LocationResponse{}, err
	}
	return toLocationResponse(location), nil
}

func (s *locationService) Update(ctx context.Context, id string, req domain.UpdateLocationRequest) (domain.LocationResponse, error) {
	location, err := s.locationRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LocationResponse{}, domain.ErrLocationNotFound
		}
		return domain.LocationResponse{}, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Currency != nil {
		location.Currency = *req.Currency
	}
	if req.LocationType != nil {
		location.LocationType = *req.LocationType
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.Phone != nil {
		location.Phone = *req.Phone
	}
	if req.Status != nil {
		location.Status = *req.Status
	}

	if err := s.locationRepository.Update(ctx, location); err != nil {
		return domain.LocationResponse{}, err
	}
	return toLocationResponse(location), nil
}

func (s *locationService) Delete(ctx context.Context, id string) error {
	if _, err := s.locationRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLocationNotFound
		}
		return err
	}

	refs, err := s.locationRepository.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrLocationInUse
	}

	return s.locationRepository.Delete(ctx, id)
}
