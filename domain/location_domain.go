package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetLocations   = "locations retrieved successfully"
	MessageSuccessCreateLocation = "location created successfully"
	MessageSuccessUpdateLocation = "location updated successfully"
	MessageSuccessDeleteLocation = "location deleted successfully"
	MessageFailedGetLocations    = "failed to retrieve locations"
	MessageFailedCreateLocation  = "failed to create location"
	MessageFailedUpdateLocation  = "failed to update location"
	MessageFailedDeleteLocation  = "failed to delete location"

	ErrLocationNotFound = errors.New("location not found")
	ErrLocationInUse    = errors.New("location is still in use")
)

type (
	CreateLocationRequest struct {
		Name         string `json:"name" validate:"required"`
		Currency     string `json:"currency"`
		LocationType string `json:"location_type"`
		Address      string `json:"address"`
		Phone        string `json:"phone"`
		Status       string `json:"status" validate:"omitempty,oneof=active inactive"`
	}

	UpdateLocationRequest struct {
		Name         *string `json:"name,omitempty" validate:"omitempty,min=1"`
		Currency     *string `json:"currency,omitempty"`
		LocationType *string `json:"location_type,omitempty"`
		Address      *string `json:"address,omitempty"`
		Phone        *string `json:"phone,omitempty"`
		Status       *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	}

	LocationResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Currency     string    `json:"currency"`
		LocationType string    `json:"location_type,omitempty"`
		Address      string    `json:"address,omitempty"`
		Phone        string    `json:"phone,omitempty"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
)
