package order

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id uint) (*entities.Order, error)
		GetOrders(ctx context.Context, filter domain.OrderFilter) ([]*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id uint, status string) (int64, error)
		UpdateOrderFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
		DeleteOrder(ctx context.Context, id uint) (int64, error)
		OrderExists(ctx context.Context, id uint) (bool, error)
		UserExists(ctx context.Context, userID uint) (bool, error)
		GetPromotionByID(ctx context.Context, id uint) (*entities.Promotion, error)
		CountFoods(ctx context.Context, foodIDs []uint) (int64, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order and its details in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		details := order.OrderDetails
		if err := tx.Omit("OrderDetails", "User", "Promotion").Create(order).Error; err != nil {
			return err
		}

		for _, detail := range details {
			detail.OrderID = order.ID
		}
		if len(details) > 0 {
			if err := tx.Omit("Food").Create(&details).Error; err != nil {
				return err
			}
		}
		order.OrderDetails = details
		return nil
	})
}

func (r *orderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("OrderDetails", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("OrderDetails.Food").
		Preload("Promotion")
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uint) (*entities.Order, error) {
	var order entities.Order
	if err := r.preloaded(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrders returns newest orders first.
func (r *orderRepository) GetOrders(ctx context.Context, filter domain.OrderFilter) ([]*entities.Order, error) {
	var orders []*entities.Order

	query := r.preloaded(ctx)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Order("order_date desc").Order("id desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uint, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *orderRepository) UpdateOrderFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// DeleteOrder removes the details before the order row in one transaction.
func (r *orderRepository) DeleteOrder(ctx context.Context, id uint) (int64, error) {
	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entities.OrderDetail{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entities.Order{})
		if result.Error != nil {
			return result.Error
		}
		rows = result.RowsAffected
		return nil
	})
	return rows, err
}

func (r *orderRepository) count(ctx context.Context, model interface{}, query string, args ...interface{}) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Where(query, args...).Count(&count).Error
	return count, err
}

func (r *orderRepository) OrderExists(ctx context.Context, id uint) (bool, error) {
	count, err := r.count(ctx, &entities.Order{}, "id = ?", id)
	return count > 0, err
}

func (r *orderRepository) UserExists(ctx context.Context, userID uint) (bool, error) {
	count, err := r.count(ctx, &entities.User{}, "id = ?", userID)
	return count > 0, err
}

func (r *orderRepository) GetPromotionByID(ctx context.Context, id uint) (*entities.Promotion, error) {
	var promotion entities.Promotion
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&promotion).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *orderRepository) CountFoods(ctx context.Context, foodIDs []uint) (int64, error) {
	return r.count(ctx, &entities.Food{}, "id IN ?", foodIDs)
}
