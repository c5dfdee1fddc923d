package food

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
)

func toFoodResponse(food *entities.Food) domain.FoodResponse {
	res := domain.FoodResponse{
		ID:          food.ID,
		Name:        food.Name,
		Description: food.Description,
		Price:       food.Price,
		ImageURL:    food.ImageURL,
		CategoryID:  food.CategoryID,
	}
	if food.Category != nil {
		res.CategoryName = food.Category.Name
	}
	return res
}
