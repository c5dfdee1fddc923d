package entities

import "time"

type Promotion struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Code            string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description     string    `gorm:"size:255" json:"description,omitempty"`
	DiscountPercent *int      `json:"discount_percent,omitempty"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
}
