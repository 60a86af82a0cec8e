package entity

import (
	"gorm.io/gorm"
)

type Meal struct {
	gorm.Model
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Available   bool   `gorm:"default:true" json:"available"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
