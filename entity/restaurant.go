package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name           string `gorm:"size:255;not null" json:"name"`
	Description    string `json:"description"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	IsActive       bool   `gorm:"default:true" json:"isActive"`
	DeliveryFee    int64  `json:"deliveryFee"`
	MinOrderAmount int64  `json:"minOrderAmount"`

	// hidden to keep list payloads small
	Operators []RestaurantUser `json:"-"`
	Meals     []Meal           `json:"-"`
	Orders    []Order          `json:"-"`
}

// RestaurantUser links an operator account to the restaurant it runs.
// Authorization-only; never mutated by the order flow.
type RestaurantUser struct {
	gorm.Model
	RestaurantID uint       `gorm:"index:idx_restaurant_user,unique" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
	UserID       uint       `gorm:"index:idx_restaurant_user,unique" json:"userId"`
	User         User       `json:"-"`
}
