package customer

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/entities"
	"Meal-Prep-Backend/pkg/location"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CustomerService interface {
		List(ctx context.Context, locationID string, search string) ([]domain.CustomerResponse, error)
		GetByID(ctx context.Context, id string) (domain.CustomerResponse, error)
		Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.CustomerResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateCustomerRequest) (domain.CustomerResponse, error)
		Delete(ctx context.Context, id string) error
	}

	customerService struct {
		customerRepository CustomerRepository
		locationRepository location.LocationRepository
	}
)

func NewCustomerService(
	customerRepository CustomerRepository,
	locationRepository location.LocationRepository,
) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		locationRepository: locationRepository,
	}
}

func toCustomerResponse(customer *entities.Customer) domain.CustomerResponse {
	return domain.CustomerResponse{
		ID:            customer.ID.String(),
		LocationID:    customer.LocationID.String(),
		Email:         customer.Email,
		Name:          customer.Name,
		ContactNumber: customer.ContactNumber,
		Address:       customer.Address,
		AccountStatus: customer.AccountStatus,
		TotalPreps:    customer.TotalPreps,
		CreatedAt:     customer.CreatedAt,
	}
}

func (s *customerService) List(ctx context.Context, locationID string, search string) ([]domain.CustomerResponse, error) {
	customers, err := s.customerRepository.List(ctx, locationID, search)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CustomerResponse, 0, len(customers))
	for i := range customers {
		response = append(response, toCustomerResponse(&customers[i]))
	}
	return response, nil
}

func (s *customerService) GetByID(ctx context.Context, id string) (domain.CustomerResponse, error) {
	customer, err := s.customerRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerResponse{}, domain.ErrCustomerNotFound
		}
		return domain.CustomerResponse{}, err
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.CustomerResponse, error) {
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return domain.CustomerResponse{}, domain.ErrParseUUID
	}
	if _, err := s.locationRepository.GetByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerResponse{}, domain.ErrLocationNotFound
		}
		return domain.CustomerResponse{}, err
	}

	if _, err := s.customerRepository.GetByEmail(ctx, req.LocationID, req.Email); err == nil {
		return domain.CustomerResponse{}, domain.ErrCustomerEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CustomerResponse{}, err
	}

	customer := &entities.Customer{
		ID:            uuid.New(),
		LocationID:    locationID,
		Email:         req.Email,
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		AccountStatus: domain.StatusActive,
	}

	if err := s.customerRepository.Create(ctx, customer); err != nil {
		return domain.CustomerResponse{}, err
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) Update(ctx context.Context, id string, req domain.UpdateCustomerRequest) (domain.CustomerResponse, error) {
	customer, err := s.customerRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerResponse{}, domain.ErrCustomerNotFound
		}
		return domain.CustomerResponse{}, err
	}

	if req.Email != nil && *req.Email != customer.Email {
		existing, err := s.customerRepository.GetByEmail(ctx, customer.LocationID.String(), *req.Email)
		if err == nil && existing.ID != customer.ID {
			return domain.CustomerResponse{}, domain.ErrCustomerEmailExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerResponse{}, err
		}
		customer.Email = *req.Email
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.ContactNumber != nil {
		customer.ContactNumber = *req.ContactNumber
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.AccountStatus != nil {
		customer.AccountStatus = *req.AccountStatus
	}

	if err := s.customerRepository.Update(ctx, customer); err != nil {
		return domain.CustomerResponse{}, err
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	if _, err := s.customerRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCustomerNotFound
		}
		return err
	}
	return s.customerRepository.Delete(ctx, id)
}
