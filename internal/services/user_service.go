package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"hbnb/internal/models/db_models"
	"hbnb/internal/models/request_models"
	"hbnb/internal/models/response_models"
	"hbnb/internal/repositories"
	"hbnb/pkg/utils"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", utils.ErrValidation, msg)
}

type UserServiceInterface interface {
	CreateUser(ctx context.Context, request request_models.CreateUserRequest) (*response_models.UserResponse, error)
	GetUser(ctx context.Context, id string) (*response_models.UserResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*response_models.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]response_models.UserResponse, error)
	UpdateUser(ctx context.Context, id string, request request_models.UpdateUserRequest) (*response_models.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
	}
}

func (u *UserService) CreateUser(ctx context.Context, request request_models.CreateUserRequest) (*response_models.UserResponse, error) {
	if err := validateUserNames(request.FirstName, request.LastName); err != nil {
		return nil, err
	}
	if !emailPattern.MatchString(request.Email) {
		return nil, validationError("invalid email format")
	}

	existing, err := u.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	password := ""
	if request.Password != "" {
		password, err = utils.HashPassword(request.Password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	user := &db_models.User{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  password,
		IsAdmin:   request.IsAdmin,
	}

	if err := u.userRepo.Insert(ctx, user); err != nil {
		// backstop for the race the pre-check cannot close
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	return toUserResponse(user), nil
}

func (u *UserService) GetUser(ctx context.Context, id string) (*response_models.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (u *UserService) GetUserByEmail(ctx context.Context, email string) (*response_models.UserResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (u *UserService) GetAllUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}
	return responses, nil
}

func (u *UserService) UpdateUser(ctx context.Context, id string, request request_models.UpdateUserRequest) (*response_models.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if request.Email != nil && *request.Email != user.Email {
		if !emailPattern.MatchString(*request.Email) {
			return nil, validationError("invalid email format")
		}
		existing, err := u.userRepo.FindByEmail(ctx, *request.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrEmailAlreadyExists
		}
		user.Email = *request.Email
	}
	if request.FirstName != nil {
		user.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		user.LastName = *request.LastName
	}
	if err := validateUserNames(user.FirstName, user.LastName); err != nil {
		return nil, err
	}
	if request.Password != nil {
		hashed, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		user.Password = hashed
	}
	if request.IsAdmin != nil {
		user.IsAdmin = *request.IsAdmin
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	return toUserResponse(user), nil
}

func (u *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	// owned places and authored reviews go with the user (cascade)
	if err := u.userRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func validateUserNames(firstName, lastName string) error {
	if firstName == "" || len(firstName) > 50 {
		return validationError("first name is required and must be <= 50 characters")
	}
	if lastName == "" || len(lastName) > 50 {
		return validationError("last name is required and must be <= 50 characters")
	}
	return nil
}

func toUserResponse(user *db_models.User) *response_models.UserResponse {
	return &response_models.UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
