package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogin      = "login successful"
	MessageSuccessGetMe      = "current user retrieved successfully"
	MessageSuccessGetUsers   = "users retrieved successfully"
	MessageSuccessCreateUser = "user created successfully"
	MessageSuccessUpdateUser = "user updated successfully"
	MessageSuccessDeleteUser = "user deleted successfully"
	MessageFailedLogin       = "failed to login"
	MessageFailedGetUsers    = "failed to retrieve users"
	MessageFailedCreateUser  = "failed to create user"
	MessageFailedUpdateUser  = "failed to update user"
	MessageFailedDeleteUser  = "failed to delete user"

	MessageSuccessSetupPassword = "password set successfully"
	MessageFailedSetupPassword  = "failed to set password"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not active")
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		User  UserResponse `json:"user"`
		Token string       `json:"token"`
	}

	CreateUserRequest struct {
		LocationID    string `json:"location_id" validate:"required,uuid"`
		Email         string `json:"email" validate:"required,email"`
		Password      string `json:"password" validate:"omitempty,min=8"`
		Name          string `json:"name" validate:"required"`
		ContactNumber string `json:"contact_number"`
		Role          string `json:"role" validate:"omitempty,oneof=admin manager staff kitchen_staff"`
	}

	SetupPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UpdateUserRequest struct {
		Email         *string `json:"email,omitempty" validate:"omitempty,email"`
		Password      *string `json:"password,omitempty" validate:"omitempty,min=8"`
		Name          *string `json:"name,omitempty" validate:"omitempty,min=1"`
		ContactNumber *string `json:"contact_number,omitempty"`
		Role          *string `json:"role,omitempty" validate:"omitempty,oneof=admin manager staff kitchen_staff"`
		AccountStatus *string `json:"account_status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	}

	UserResponse struct {
		ID            string    `json:"id"`
		LocationID    string    `json:"location_id"`
		Email         string    `json:"email"`
		Name          string    `json:"name"`
		ContactNumber string    `json:"contact_number,omitempty"`
		Role          string    `json:"role"`
		AccountStatus string    `json:"account_status"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
