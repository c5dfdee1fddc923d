package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Address     string          `json:"address"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_amount"`
	Status      string          `gorm:"size:50;not null;default:Pending;index" json:"status"` // Pending, Processing, Delivered, Cancelled
	OrderDate   time.Time       `gorm:"not null" json:"order_date"`
	PromotionID *uint           `gorm:"index" json:"promotion_id,omitempty"`

	User         *User          `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Promotion    *Promotion     `gorm:"foreignKey:PromotionID;constraint:OnDelete:RESTRICT"`
	OrderDetails []*OrderDetail `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderDetail struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	FoodID    uint            `gorm:"not null;index" json:"food_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`

	Food *Food `gorm:"foreignKey:FoodID;constraint:OnDelete:RESTRICT"`
}
