package services

import (
	"fmt"
	"time"

	"ecom/internal/apperrors"
	"ecom/internal/models"
	"ecom/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserRequest is the request DTO for creating or updating a user.
type UserRequest struct {
	FirstName string          `json:"first_name" validate:"required,max=100"`
	LastName  string          `json:"last_name" validate:"omitempty,max=100"`
	Email     string          `json:"email" validate:"required,email"`
	Phone     string          `json:"phone" validate:"omitempty,max=30"`
	Password  string          `json:"password" validate:"omitempty,min=6"`
	Role      models.UserRole `json:"role" validate:"omitempty,oneof=CUSTOMER ADMIN"`
	Address   models.Address  `json:"address"`
}

// UserResponse is the response DTO for user reads.
type UserResponse struct {
	ID        string          `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Role      models.UserRole `json:"role"`
	Address   models.Address  `json:"address"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// AddUser registers a new user. The email must be unique and the password,
// when given, is stored as a bcrypt hash.
func (s *UserService) AddUser(req UserRequest) (*UserResponse, error) {
	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, &apperrors.ConflictError{
			Message: fmt.Sprintf("email '%s' already registered", req.Email),
		}
	}

	user := &models.User{Role: models.RoleCustomer}
	applyUserRequest(user, req)

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return mapToUserResponse(user), nil
}

// UpdateUser updates an existing user's profile fields.
func (s *UserService) UpdateUser(id string, req UserRequest) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	applyUserRequest(user, req)
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return mapToUserResponse(user), nil
}

// FindUserByID retrieves a single user by their ID.
func (s *UserService) FindUserByID(id string) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return mapToUserResponse(user), nil
}

// FetchAllUsers retrieves all users.
func (s *UserService) FetchAllUsers() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *mapToUserResponse(&users[i]))
	}
	return responses, nil
}

func applyUserRequest(user *models.User, req UserRequest) {
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Phone = req.Phone
	user.Address = req.Address
	if req.Role != "" {
		user.Role = req.Role
	}
}

func mapToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
