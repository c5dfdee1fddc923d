package entities

import "time"

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_food" json:"user_id"`
	FoodID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_food" json:"food_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Food *Food `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
}
