package user

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
)

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
