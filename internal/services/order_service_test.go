package services_test

import (
	"context"
	"testing"

	"ecom/internal/apperrors"
	"ecom/internal/clients"
	"ecom/internal/models"
	"ecom/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

// MockCartReader is a mock implementation of services.CartReader.
type MockCartReader struct {
	mock.Mock
}

func (m *MockCartReader) GetCart(userID string) ([]models.CartItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartReader) ClearCart(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func newOrderFixture() (*services.OrderService, *MockOrderRepository, *MockCartReader, *MockUserFetcher) {
	orderRepo := new(MockOrderRepository)
	cart := new(MockCartReader)
	userClient := new(MockUserFetcher)
	service := services.NewOrderService(orderRepo, cart, userClient, nil)
	return service, orderRepo, cart, userClient
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	service, orderRepo, cart, userClient := newOrderFixture()

	cart.On("GetCart", "user-1").Return([]models.CartItem{}, nil).Once()

	resp, err := service.CreateOrder(context.Background(), "user-1")

	assert.Nil(t, resp)
	var emptyCart *apperrors.EmptyCartError
	assert.ErrorAs(t, err, &emptyCart)
	assert.Equal(t, "user-1", emptyCart.UserID)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
	cart.AssertNotCalled(t, "ClearCart", mock.Anything)
	userClient.AssertNotCalled(t, "GetUser", mock.Anything)
}

func TestOrderService_CreateOrder_UserNotFound(t *testing.T) {
	service, orderRepo, cart, userClient := newOrderFixture()

	cart.On("GetCart", "ghost").Return([]models.CartItem{
		{ProductID: "prod-1", Quantity: 1, Price: 10.0},
	}, nil).Once()
	userClient.On("GetUser", "ghost").Return(nil, nil).Once()

	resp, err := service.CreateOrder(context.Background(), "ghost")

	assert.Nil(t, resp)
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User", notFound.Resource)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_TotalsAndCartClear(t *testing.T) {
	service, orderRepo, cart, userClient := newOrderFixture()

	cart.On("GetCart", "user-1").Return([]models.CartItem{
		{ProductID: "prod-1", Quantity: 2, Price: 10.0},
		{ProductID: "prod-2", Quantity: 3, Price: 5.0},
	}, nil).Once()
	userClient.On("GetUser", "user-1").
		Return(&clients.UserDetails{ID: "user-1"}, nil).Once()
	orderRepo.On("Create", mock.MatchedBy(func(order *models.Order) bool {
		return order.UserID == "user-1" &&
			order.Status == models.OrderStatusConfirmed &&
			order.TotalAmount == 35.0 &&
			len(order.Items) == 2
	})).Return(nil).Once()
	cart.On("ClearCart", "user-1").Return(nil).Once()

	resp, err := service.CreateOrder(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, resp.Status)
	assert.Equal(t, 35.0, resp.TotalAmount)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 20.0, resp.Items[0].Subtotal)
	assert.Equal(t, 15.0, resp.Items[1].Subtotal)
	orderRepo.AssertExpectations(t)
	cart.AssertExpectations(t)
}

func TestOrderService_CreateOrder_CartClearFailureKeepsOrder(t *testing.T) {
	service, orderRepo, cart, userClient := newOrderFixture()

	cart.On("GetCart", "user-1").Return([]models.CartItem{
		{ProductID: "prod-1", Quantity: 1, Price: 10.0},
	}, nil).Once()
	userClient.On("GetUser", "user-1").
		Return(&clients.UserDetails{ID: "user-1"}, nil).Once()
	orderRepo.On("Create", mock.Anything).Return(nil).Once()
	cart.On("ClearCart", "user-1").Return(assert.AnError).Once()

	resp, err := service.CreateOrder(context.Background(), "user-1")

	// The clear failure is logged, not surfaced.
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 10.0, resp.TotalAmount)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	service, orderRepo, _, _ := newOrderFixture()

	order := &models.Order{
		ID:          "order-1",
		UserID:      "user-1",
		Status:      models.OrderStatusConfirmed,
		TotalAmount: 20.0,
		Items: []models.OrderItem{
			{ID: "item-1", ProductID: "prod-1", Quantity: 2, Price: 10.0},
		},
	}
	orderRepo.On("GetByID", "order-1").Return(order, nil).Once()

	resp, err := service.GetOrderByID("order-1")
	assert.NoError(t, err)
	assert.Equal(t, "order-1", resp.ID)
	assert.Equal(t, 20.0, resp.Items[0].Subtotal)

	orderRepo.On("GetByID", "missing").
		Return(nil, apperrors.NewNotFound("Order", "missing")).Once()
	resp, err = service.GetOrderByID("missing")
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderService_GetOrdersByUser(t *testing.T) {
	service, orderRepo, _, _ := newOrderFixture()

	orders := []models.Order{
		{ID: "order-2", UserID: "user-1", TotalAmount: 5.0},
		{ID: "order-1", UserID: "user-1", TotalAmount: 35.0},
	}
	orderRepo.On("GetByUser", "user-1").Return(orders, nil).Once()

	resp, err := service.GetOrdersByUser("user-1")
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "order-2", resp[0].ID)
}
