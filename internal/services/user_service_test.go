package services_test

import (
	"testing"

	"ecom/internal/apperrors"
	"ecom/internal/models"
	"ecom/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func TestUserService_AddUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByEmail", "jane@example.com").
		Return(nil, apperrors.NewNotFound("User", "jane@example.com")).Once()
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		hashOK := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
		return u.Email == "jane@example.com" && u.Role == models.RoleCustomer && hashOK
	})).Return(nil).Once()

	resp, err := service.AddUser(services.UserRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
		Address:   models.Address{City: "Austin", Country: "US"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, models.RoleCustomer, resp.Role)
	assert.Equal(t, "Austin", resp.Address.City)
	mockRepo.AssertExpectations(t)
}

func TestUserService_AddUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByEmail", "jane@example.com").
		Return(&models.User{ID: "user-1", Email: "jane@example.com"}, nil).Once()

	resp, err := service.AddUser(services.UserRequest{
		FirstName: "Jane",
		Email:     "jane@example.com",
	})

	assert.Nil(t, resp)
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_UpdateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	existing := &models.User{ID: "user-1", FirstName: "Jane", Email: "jane@example.com", Role: models.RoleCustomer}
	mockRepo.On("GetByID", "user-1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return u.ID == "user-1" && u.Phone == "555-0100" && u.Role == models.RoleAdmin
	})).Return(nil).Once()

	resp, err := service.UpdateUser("user-1", services.UserRequest{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Phone:     "555-0100",
		Role:      models.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.Equal(t, "555-0100", resp.Phone)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", "missing").
		Return(nil, apperrors.NewNotFound("User", "missing")).Once()
	resp, err = service.UpdateUser("missing", services.UserRequest{FirstName: "X", Email: "x@example.com"})
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserService_FindUserByID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByID", "user-1").
		Return(&models.User{ID: "user-1", FirstName: "Jane", Email: "jane@example.com"}, nil).Once()

	resp, err := service.FindUserByID("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", resp.ID)

	mockRepo.On("GetByID", "missing").
		Return(nil, apperrors.NewNotFound("User", "missing")).Once()
	resp, err = service.FindUserByID("missing")
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserService_FetchAllUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetAll").Return([]models.User{
		{ID: "user-1", Email: "a@example.com"},
		{ID: "user-2", Email: "b@example.com"},
	}, nil).Once()

	users, err := service.FetchAllUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "a@example.com", users[0].Email)
	mockRepo.AssertExpectations(t)
}
