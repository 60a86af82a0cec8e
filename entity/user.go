package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`

	// preload only where the endpoint needs them
	Roles       []UserRole        `json:"-"`
	Restaurants []RestaurantUser  `json:"-"`
	Gyms        []GymUser         `json:"-"`
	Bookings    []ClassBooking    `gorm:"foreignKey:UserID" json:"-"`
}
