package cart

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	CartService interface {
		GetCart(ctx context.Context, userID uint) (domain.CartResponse, error)
		AddItem(ctx context.Context, userID uint, req domain.AddCartItemRequest) (domain.CartItemResponse, error)
		UpdateItem(ctx context.Context, userID uint, itemID uint, req domain.UpdateCartItemRequest) error
		RemoveItem(ctx context.Context, userID uint, itemID uint) error
		ClearCart(ctx context.Context, userID uint) error
	}

	cartService struct {
		cartRepository CartRepository
		now            func() time.Time
	}
)

func NewCartService(cartRepository CartRepository) CartService {
	return &cartService{
		cartRepository: cartRepository,
		now:            time.Now,
	}
}

func toCartItemResponse(item *entities.CartItem) domain.CartItemResponse {
	res := domain.CartItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		FoodID:    item.FoodID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}
	if item.Food != nil {
		res.FoodName = item.Food.Name
		res.FoodPrice = item.Food.Price
		res.FoodImageURL = item.Food.ImageURL
	}
	return res
}

func (s *cartService) GetCart(ctx context.Context, userID uint) (domain.CartResponse, error) {
	items, err := s.cartRepository.GetCartItems(ctx, userID)
	if err != nil {
		return domain.CartResponse{}, err
	}

	res := domain.CartResponse{
		Items:      make([]domain.CartItemResponse, 0, len(items)),
		TotalPrice: decimal.Zero,
	}
	for _, item := range items {
		line := toCartItemResponse(item)
		res.Items = append(res.Items, line)
		res.TotalItems += line.Quantity
		res.TotalPrice = res.TotalPrice.Add(line.FoodPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return res, nil
}

func (s *cartService) AddItem(ctx context.Context, userID uint, req domain.AddCartItemRequest) (domain.CartItemResponse, error) {
	if req.Quantity <= 0 {
		return domain.CartItemResponse{}, domain.ErrCartInvalidQuantity
	}

	exists, err := s.cartRepository.FoodExists(ctx, req.FoodID)
	if err != nil {
		return domain.CartItemResponse{}, fmt.Errorf("check food: %w", err)
	}
	if !exists {
		return domain.CartItemResponse{}, domain.ErrCartFoodNotFound
	}

	item := &entities.CartItem{
		UserID:    userID,
		FoodID:    req.FoodID,
		Quantity:  req.Quantity,
		CreatedAt: s.now().UTC(),
	}
	if err := s.cartRepository.UpsertCartItem(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.CartItemResponse{}, domain.ErrCartFoodNotFound
		}
		return domain.CartItemResponse{}, fmt.Errorf("add cart item: %w", err)
	}

	stored, err := s.cartRepository.GetCartItemByFood(ctx, userID, req.FoodID)
	if err != nil {
		return domain.CartItemResponse{}, fmt.Errorf("load cart item: %w", err)
	}
	return toCartItemResponse(stored), nil
}

// UpdateItem removes the item when quantity drops to zero or below.
func (s *cartService) UpdateItem(ctx context.Context, userID uint, itemID uint, req domain.UpdateCartItemRequest) error {
	if req.Quantity <= 0 {
		return s.RemoveItem(ctx, userID, itemID)
	}

	rows, err := s.cartRepository.UpdateQuantity(ctx, userID, itemID, req.Quantity)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if rows == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID uint, itemID uint) error {
	rows, err := s.cartRepository.DeleteCartItem(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if rows == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (s *cartService) ClearCart(ctx context.Context, userID uint) error {
	return s.cartRepository.ClearCart(ctx, userID)
}
