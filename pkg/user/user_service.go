package user

import (
	"Meal-Prep-Backend/domain"
	"Meal-Prep-Backend/entities"
	"Meal-Prep-Backend/internal/utils"
	"Meal-Prep-Backend/internal/utils/mailing"
	"Meal-Prep-Backend/pkg/jwt"
	"Meal-Prep-Backend/pkg/location"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		List(ctx context.Context, locationID string) ([]domain.UserResponse, error)
		Create(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error)
		SetupPassword(ctx context.Context, req domain.SetupPasswordRequest) error
		Update(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error)
		Delete(ctx context.Context, id string) error
	}

	userService struct {
		userRepository     UserRepository
		locationRepository location.LocationRepository
		jwtService         jwt.JWTService
	}
)

func NewUserService(
	userRepository UserRepository,
	locationRepository location.LocationRepository,
	jwtService jwt.JWTService,
) UserService {
	return &userService{
		userRepository:     userRepository,
		locationRepository: locationRepository,
		jwtService:         jwtService,
	}
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:            user.ID.String(),
		LocationID:    user.LocationID.String(),
		Email:         user.Email,
		Name:          user.Name,
		ContactNumber: user.ContactNumber,
		Role:          user.Role,
		AccountStatus: user.AccountStatus,
		CreatedAt:     user.CreatedAt,
	}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}
	if user.AccountStatus != domain.StatusActive {
		return domain.LoginResponse{}, domain.ErrAccountInactive
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{User: toUserResponse(user), Token: token}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) List(ctx context.Context, locationID string) ([]domain.UserResponse, error) {
	users, err := s.userRepository.List(ctx, locationID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}
	return response, nil
}

// Create registers a staff account. Without a password the account starts
// inactive and the user gets a setup link by mail.
func (s *userService) Create(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error) {
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return domain.UserResponse{}, domain.ErrParseUUID
	}
	if _, err := s.locationRepository.GetByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrLocationNotFound
		}
		return domain.UserResponse{}, err
	}

	if _, err := s.userRepository.GetByEmail(ctx, req.Email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleStaff
	}

	user := &entities.User{
		ID:            uuid.New(),
		LocationID:    locationID,
		Email:         req.Email,
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Role:          role,
		AccountStatus: domain.StatusActive,
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.UserResponse{}, err
		}
		user.Password = string(hashed)
	} else {
		user.AccountStatus = domain.StatusInactive
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	if req.Password == "" {
		if err := s.sendSetupMail(user); err != nil {
			return domain.UserResponse{}, err
		}
	}

	return toUserResponse(user), nil
}

func (s *userService) sendSetupMail(user *entities.User) error {
	token, err := s.jwtService.GeneratePasswordSetupToken(
		map[string]any{"user_id": user.ID.String()},
		time.Hour*48,
	)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/setup-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>An account was created for you. Set your password here:</p><p><a href=%q>%s</a></p>",
		user.Name, link, link,
	)
	return mailing.SendMail(user.Email, "Set up your account", body)
}

func (s *userService) SetupPassword(ctx context.Context, req domain.SetupPasswordRequest) error {
	claims, err := s.jwtService.ValidatePasswordSetupToken(req.Token)
	if err != nil {
		return err
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.AccountStatus = domain.StatusActive

	return s.userRepository.Update(ctx, user)
}

func (s *userService) Update(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.userRepository.GetByEmail(ctx, *req.Email); err == nil && existing.ID != user.ID {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.UserResponse{}, err
		}
		user.Password = string(hashed)
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ContactNumber != nil {
		user.ContactNumber = *req.ContactNumber
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.AccountStatus != nil {
		user.AccountStatus = *req.AccountStatus
	}

	if err := s.userRepository.Update(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.userRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.Delete(ctx, id)
}
