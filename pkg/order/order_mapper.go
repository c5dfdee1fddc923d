package order

import (
	"WebFood-API/domain"
	"WebFood-API/entities"

	"github.com/shopspring/decimal"
)

// toOrderResponse reads food name and image from the current food row.
func toOrderResponse(order *entities.Order) domain.OrderResponse {
	res := domain.OrderResponse{
		ID:           order.ID,
		UserID:       order.UserID,
		OrderDate:    order.OrderDate,
		TotalAmount:  order.TotalAmount,
		Status:       order.Status,
		Address:      order.Address,
		PromotionID:  order.PromotionID,
		OrderDetails: make([]domain.OrderDetailResponse, 0, len(order.OrderDetails)),
	}
	if order.Promotion != nil {
		res.PromotionCode = order.Promotion.Code
	}

	for _, detail := range order.OrderDetails {
		line := domain.OrderDetailResponse{
			FoodID:    detail.FoodID,
			Quantity:  detail.Quantity,
			UnitPrice: detail.UnitPrice,
			Total:     detail.UnitPrice.Mul(decimal.NewFromInt(int64(detail.Quantity))),
		}
		if detail.Food != nil {
			line.FoodName = detail.Food.Name
			line.FoodImageURL = detail.Food.ImageURL
		}
		res.TotalItems += detail.Quantity
		res.OrderDetails = append(res.OrderDetails, line)
	}
	return res
}

func toOrderResponses(orders []*entities.Order) []domain.OrderResponse {
	res := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		res = append(res, toOrderResponse(order))
	}
	return res
}
