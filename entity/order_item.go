package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MealID uint `json:"mealId"`
	Meal   Meal `json:"-"` // preload only when the meal name is needed
}
