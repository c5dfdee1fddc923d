package cart

import (
	"WebFood-API/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CartRepository interface {
		GetCartItems(ctx context.Context, userID uint) ([]*entities.CartItem, error)
		GetCartItemByFood(ctx context.Context, userID uint, foodID uint) (*entities.CartItem, error)
		UpsertCartItem(ctx context.Context, item *entities.CartItem) error
		UpdateQuantity(ctx context.Context, userID uint, itemID uint, quantity int) (int64, error)
		DeleteCartItem(ctx context.Context, userID uint, itemID uint) (int64, error)
		ClearCart(ctx context.Context, userID uint) error
		FoodExists(ctx context.Context, foodID uint) (bool, error)
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetCartItems(ctx context.Context, userID uint) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ?", userID).
		Order("created_at asc").Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) GetCartItemByFood(ctx context.Context, userID uint, foodID uint) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ? AND food_id = ?", userID, foodID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertCartItem adds the quantity to an existing (user, food) row.
func (r *cartRepository) UpsertCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).
		Omit("User", "Food").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "food_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			}),
		}).
		Create(item).Error
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID uint, itemID uint, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, userID uint, itemID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entities.CartItem{})
	return result.RowsAffected, result.Error
}

func (r *cartRepository) ClearCart(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.CartItem{}).Error
}

func (r *cartRepository) FoodExists(ctx context.Context, foodID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Food{}).Where("id = ?", foodID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
