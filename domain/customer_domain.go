package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCustomers   = "customers retrieved successfully"
	MessageSuccessCreateCustomer = "customer created successfully"
	MessageSuccessUpdateCustomer = "customer updated successfully"
	MessageSuccessDeleteCustomer = "customer deleted successfully"
	MessageFailedGetCustomers    = "failed to retrieve customers"
	MessageFailedCreateCustomer  = "failed to create customer"
	MessageFailedUpdateCustomer  = "failed to update customer"
	MessageFailedDeleteCustomer  = "failed to delete customer"

	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerEmailExists = errors.New("customer email already registered for this location")
)

type (
	CreateCustomerRequest struct {
		LocationID    string `json:"location_id" validate:"required,uuid"`
		Email         string `json:"email" validate:"required,email"`
		Name          string `json:"name" validate:"required"`
		ContactNumber string `json:"contact_number"`
		Address       string `json:"address"`
	}

	UpdateCustomerRequest struct {
		Email         *string `json:"email,omitempty" validate:"omitempty,email"`
		Name          *string `json:"name,omitempty" validate:"omitempty,min=1"`
		ContactNumber *string `json:"contact_number,omitempty"`
		Address       *string `json:"address,omitempty"`
		AccountStatus *string `json:"account_status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	}

	CustomerResponse struct {
		ID            string    `json:"id"`
		LocationID    string    `json:"location_id"`
		Email         string    `json:"email"`
		Name          string    `json:"name"`
		ContactNumber string    `json:"contact_number,omitempty"`
		Address       string    `json:"address,omitempty"`
		AccountStatus string    `json:"account_status"`
		TotalPreps    int       `json:"total_preps"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
