package entities

import (
	"github.com/shopspring/decimal"
)

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

type Food struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	ImageURL    string          `gorm:"size:255" json:"image_url,omitempty"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Timestamp
}
