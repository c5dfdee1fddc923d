package handlers_test

import (
	"WebFood-API/domain"
	"WebFood-API/internal/api/handlers"
	"WebFood-API/internal/api/presenters"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMock struct {
	mock.Mock
}

func (m *orderServiceMock) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderResponse, error) {
	args := m.Called(req)
	return args.Get(0).(domain.OrderResponse), args.Error(1)
}

func (m *orderServiceMock) GetOrders(ctx context.Context) ([]domain.OrderResponse, error) {
	args := m.Called()
	return args.Get(0).([]domain.OrderResponse), args.Error(1)
}

func (m *orderServiceMock) GetOrderByID(ctx context.Context, id uint) (domain.OrderResponse, error) {
	args := m.Called(id)
	return args.Get(0).(domain.OrderResponse), args.Error(1)
}

func (m *orderServiceMock) GetOrdersByUser(ctx context.Context, userID uint) ([]domain.OrderResponse, error) {
	args := m.Called(userID)
	return args.Get(0).([]domain.OrderResponse), args.Error(1)
}

func (m *orderServiceMock) GetOrdersByStatus(ctx context.Context, status string) ([]domain.OrderResponse, error) {
	args := m.Called(status)
	return args.Get(0).([]domain.OrderResponse), args.Error(1)
}

func (m *orderServiceMock) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	return m.Called(id, status).Error(0)
}

func (m *orderServiceMock) PatchOrder(ctx context.Context, id uint, req domain.PatchOrderRequest) error {
	return m.Called(id, req).Error(0)
}

func (m *orderServiceMock) DeleteOrder(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

func (m *orderServiceMock) GetStatusOptions() []domain.OrderStatusOption {
	return m.Called().Get(0).([]domain.OrderStatusOption)
}

func (m *orderServiceMock) GenerateQRCode(ctx context.Context, id uint) ([]byte, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func setupOrderApp() (*fiber.App, *orderServiceMock) {
	service := new(orderServiceMock)
	h := handlers.NewOrderHandler(service, validator.New())

	app := fiber.New()
	order := app.Group("/api/order")
	order.Get("/status-options", h.GetStatusOptions)
	order.Get("/:id/qrcode", h.GetOrderQRCode)
	order.Get("/:id", h.GetOrderByID)
	order.Post("", h.CreateOrder)
	order.Put("/:id/status", h.UpdateOrderStatus)
	order.Put("/:id", h.PatchOrder)
	order.Delete("/:id", h.DeleteOrder)
	return app, service
}

func decodeBody(t *testing.T, body io.Reader) presenters.Response {
	t.Helper()
	var res presenters.Response
	require.NoError(t, json.NewDecoder(body).Decode(&res))
	return res
}

func TestOrderHandler_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	app, service := setupOrderApp()

	req := httptest.NewRequest("PUT", "/api/order/5/status", strings.NewReader(`{"status":"Shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	res := decodeBody(t, resp.Body)
	assert.False(t, res.Status)
	assert.Equal(t, "invalid status: 'Shipped', valid values: Pending, Processing, Delivered, Cancelled", res.Error)
	details, ok := res.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Shipped", details["received_status"])
	assert.Equal(t, []any{"Pending", "Processing", "Delivered", "Cancelled"}, details["valid_statuses"])
	service.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{name: "ok", expectedCode: fiber.StatusNoContent},
		{name: "missing_order", serviceErr: domain.ErrOrderNotFound, expectedCode: fiber.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			app, service := setupOrderApp()
			service.On("UpdateOrderStatus", uint(5), domain.OrderStatusDelivered).Return(testCase.serviceErr).Once()

			req := httptest.NewRequest("PUT", "/api/order/5/status", strings.NewReader(`{"status":"Delivered"}`))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			assert.Equal(t, testCase.expectedCode, resp.StatusCode)
			service.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_PatchRejectsUnknownStatus(t *testing.T) {
	app, service := setupOrderApp()

	req := httptest.NewRequest("PUT", "/api/order/5", strings.NewReader(`{"status":"pending"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	service.AssertNotCalled(t, "PatchOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	app, service := setupOrderApp()
	service.On("GetOrderByID", uint(9)).Return(domain.OrderResponse{}, domain.ErrOrderNotFound).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/order/9", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/order/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	app, service := setupOrderApp()
	service.On("CreateOrder", mock.MatchedBy(func(req domain.CreateOrderRequest) bool {
		return req.UserID == 7 && len(req.OrderDetails) == 1 && req.OrderDetails[0].Quantity == 2
	})).Return(domain.OrderResponse{ID: 1, UserID: 7, Status: domain.OrderStatusPending}, nil).Once()

	body := `{"user_id":7,"address":"1 Main St","order_details":[{"food_id":3,"quantity":2,"unit_price":5.5}]}`
	req := httptest.NewRequest("POST", "/api/order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	res := decodeBody(t, resp.Body)
	assert.True(t, res.Status)
	assert.Equal(t, domain.MessageSuccessCreateOrder, res.Message)
	service.AssertExpectations(t)
}

func TestOrderHandler_QRCode(t *testing.T) {
	app, service := setupOrderApp()
	png := []byte("\x89PNG\r\n\x1a\n")
	service.On("GenerateQRCode", uint(4)).Return(png, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/order/4/qrcode", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	app, service := setupOrderApp()
	service.On("DeleteOrder", uint(5)).Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/order/5", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	service.AssertExpectations(t)
}
