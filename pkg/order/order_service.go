package order

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

const qrCodeSize = 256

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderResponse, error)
		GetOrders(ctx context.Context) ([]domain.OrderResponse, error)
		GetOrderByID(ctx context.Context, id uint) (domain.OrderResponse, error)
		GetOrdersByUser(ctx context.Context, userID uint) ([]domain.OrderResponse, error)
		GetOrdersByStatus(ctx context.Context, status string) ([]domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, id uint, status string) error
		PatchOrder(ctx context.Context, id uint, req domain.PatchOrderRequest) error
		DeleteOrder(ctx context.Context, id uint) error
		GetStatusOptions() []domain.OrderStatusOption
		GenerateQRCode(ctx context.Context, id uint) ([]byte, error)
	}

	orderService struct {
		orderRepository OrderRepository
		publisher       OrderEventPublisher
		appURL          string
		now             func() time.Time
	}
)

var statusOptions = []domain.OrderStatusOption{
	{Value: domain.OrderStatusPending, Label: "Pending", Color: "#FFA726", Icon: "pending", Description: "Order created, waiting to be processed"},
	{Value: domain.OrderStatusProcessing, Label: "Processing", Color: "#42A5F5", Icon: "processing", Description: "Food is being prepared"},
	{Value: domain.OrderStatusDelivered, Label: "Delivered", Color: "#66BB6A", Icon: "delivered", Description: "Order delivered successfully"},
	{Value: domain.OrderStatusCancelled, Label: "Cancelled", Color: "#EF5350", Icon: "cancelled", Description: "Order has been cancelled"},
}

func NewOrderService(orderRepository OrderRepository, publisher OrderEventPublisher, appURL string) OrderService {
	return NewOrderServiceWithClock(orderRepository, publisher, appURL, time.Now)
}

func NewOrderServiceWithClock(orderRepository OrderRepository, publisher OrderEventPublisher, appURL string, now func() time.Time) OrderService {
	if publisher == nil {
		publisher = NewNopOrderPublisher()
	}
	return &orderService{
		orderRepository: orderRepository,
		publisher:       publisher,
		appURL:          strings.TrimRight(appURL, "/"),
		now:             now,
	}
}

func (s *orderService) publish(ctx context.Context, eventType string, orderID, userID uint, status string) {
	s.publisher.Publish(ctx, domain.OrderEvent{
		Type:       eventType,
		OrderID:    orderID,
		UserID:     userID,
		Status:     status,
		OccurredAt: s.now(),
	})
}

func (s *orderService) validateLines(ctx context.Context, lines []domain.OrderDetailRequest) error {
	if len(lines) == 0 {
		return domain.ErrOrderEmpty
	}

	seen := make(map[uint]struct{}, len(lines))
	foodIDs := make([]uint, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return domain.ErrOrderInvalidQuantity
		}
		if line.UnitPrice.IsNegative() {
			return domain.ErrOrderInvalidPrice
		}
		if _, ok := seen[line.FoodID]; !ok {
			seen[line.FoodID] = struct{}{}
			foodIDs = append(foodIDs, line.FoodID)
		}
	}

	count, err := s.orderRepository.CountFoods(ctx, foodIDs)
	if err != nil {
		return fmt.Errorf("check foods: %w", err)
	}
	if count != int64(len(foodIDs)) {
		return domain.ErrOrderFoodNotFound
	}
	return nil
}

// orderTotal is the sum of the lines reduced by the promotion discount.
func orderTotal(lines []domain.OrderDetailRequest, promotion *entities.Promotion) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	if promotion != nil && promotion.DiscountPercent != nil {
		factor := decimal.NewFromInt(int64(100 - *promotion.DiscountPercent)).Div(decimal.NewFromInt(100))
		total = total.Mul(factor)
	}
	return total.Round(2)
}

func (s *orderService) getPromotion(ctx context.Context, id uint) (*entities.Promotion, error) {
	promotion, err := s.orderRepository.GetPromotionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderPromotionMissing
		}
		return nil, fmt.Errorf("check promotion: %w", err)
	}
	return promotion, nil
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderResponse, error) {
	userExists, err := s.orderRepository.UserExists(ctx, req.UserID)
	if err != nil {
		return domain.OrderResponse{}, fmt.Errorf("check user: %w", err)
	}
	if !userExists {
		return domain.OrderResponse{}, domain.ErrOrderUserNotFound
	}

	if err := s.validateLines(ctx, req.OrderDetails); err != nil {
		return domain.OrderResponse{}, err
	}

	var promotion *entities.Promotion
	if req.PromotionID != nil {
		promotion, err = s.getPromotion(ctx, *req.PromotionID)
		if err != nil {
			return domain.OrderResponse{}, err
		}
	}

	var total decimal.Decimal
	if req.TotalAmount != nil {
		if req.TotalAmount.IsNegative() {
			return domain.OrderResponse{}, domain.ErrOrderInvalidTotal
		}
		total = *req.TotalAmount
	} else {
		total = orderTotal(req.OrderDetails, promotion)
	}

	// unknown statuses fall back to Pending on creation
	status := domain.OrderStatusPending
	if domain.IsValidOrderStatus(req.Status) {
		status = req.Status
	}

	order := &entities.Order{
		UserID:       req.UserID,
		Address:      req.Address,
		TotalAmount:  total,
		Status:       status,
		OrderDate:    s.now().UTC(),
		PromotionID:  req.PromotionID,
		OrderDetails: make([]*entities.OrderDetail, 0, len(req.OrderDetails)),
	}
	for _, line := range req.OrderDetails {
		order.OrderDetails = append(order.OrderDetails, &entities.OrderDetail{
			FoodID:    line.FoodID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.OrderResponse{}, domain.ErrOrderReferenceMissing
		}
		return domain.OrderResponse{}, fmt.Errorf("insert order: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount.String(),
	}).Info("order created")
	s.publish(ctx, domain.OrderEventCreated, order.ID, order.UserID, order.Status)

	created, err := s.orderRepository.GetOrderByID(ctx, order.ID)
	if err != nil {
		return domain.OrderResponse{}, fmt.Errorf("load created order: %w", err)
	}
	return toOrderResponse(created), nil
}

func (s *orderService) GetOrders(ctx context.Context) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrders(ctx, domain.OrderFilter{})
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id uint) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	return toOrderResponse(order), nil
}

func (s *orderService) GetOrdersByUser(ctx context.Context, userID uint) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrders(ctx, domain.OrderFilter{UserID: &userID})
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) GetOrdersByStatus(ctx context.Context, status string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrders(ctx, domain.OrderFilter{Status: status})
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// UpdateOrderStatus writes the status column without loading the order.
// Any valid status may follow any other.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	if !domain.IsValidOrderStatus(status) {
		return domain.NewInvalidOrderStatusError(status)
	}

	rows, err := s.orderRepository.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if rows == 0 {
		return domain.ErrOrderNotFound
	}

	logrus.WithFields(logrus.Fields{"order_id": id, "status": status}).Info("order status updated")
	s.publish(ctx, domain.OrderEventStatusUpdated, id, 0, status)
	return nil
}

func (s *orderService) PatchOrder(ctx context.Context, id uint, req domain.PatchOrderRequest) error {
	fields := make(map[string]interface{})

	if req.Status != nil {
		if !domain.IsValidOrderStatus(*req.Status) {
			return domain.NewInvalidOrderStatusError(*req.Status)
		}
		fields["status"] = *req.Status
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.TotalAmount != nil {
		if req.TotalAmount.IsNegative() {
			return domain.ErrOrderInvalidTotal
		}
		fields["total_amount"] = *req.TotalAmount
	}
	if req.PromotionID != nil {
		// A missing order outranks a missing promotion.
		if err := s.ensureOrderExists(ctx, id); err != nil {
			return err
		}
		if _, err := s.getPromotion(ctx, *req.PromotionID); err != nil {
			return err
		}
		fields["promotion_id"] = *req.PromotionID
	}

	if len(fields) == 0 {
		return s.ensureOrderExists(ctx, id)
	}

	rows, err := s.orderRepository.UpdateOrderFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrOrderPromotionMissing
		}
		return fmt.Errorf("update order: %w", err)
	}
	if rows == 0 {
		if err := s.ensureOrderExists(ctx, id); err != nil {
			return err
		}
		return domain.ErrOrderUpdateConflict
	}

	status, _ := fields["status"].(string)
	s.publish(ctx, domain.OrderEventUpdated, id, 0, status)
	return nil
}

func (s *orderService) ensureOrderExists(ctx context.Context, id uint) error {
	exists, err := s.orderRepository.OrderExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	rows, err := s.orderRepository.DeleteOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if rows == 0 {
		return domain.ErrOrderNotFound
	}

	logrus.WithField("order_id", id).Info("order deleted")
	s.publish(ctx, domain.OrderEventDeleted, id, 0, "")
	return nil
}

func (s *orderService) GetStatusOptions() []domain.OrderStatusOption {
	options := make([]domain.OrderStatusOption, len(statusOptions))
	copy(options, statusOptions)
	return options
}

// GenerateQRCode renders a PNG pointing at the order tracking page.
func (s *orderService) GenerateQRCode(ctx context.Context, id uint) ([]byte, error) {
	exists, err := s.orderRepository.OrderExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrOrderNotFound
	}

	return qrcode.Encode(fmt.Sprintf("%s/orders/%d", s.appURL, id), qrcode.Medium, qrCodeSize)
}
