package entity

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber     string      `gorm:"size:64;uniqueIndex" json:"orderNumber"`
	Status          OrderStatus `gorm:"size:32;index;default:pending" json:"status"`
	Subtotal        int64       `json:"subtotal"`
	DeliveryFee     int64       `json:"deliveryFee"`
	Total           int64       `json:"total"`
	DeliveryAddress string      `json:"deliveryAddress"`
	CustomerNotes   string      `json:"customerNotes"`

	CustomerID uint `gorm:"index" json:"customerId"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// preload only on detail endpoints
	OrderItems []OrderItem       `json:"-"`
	Assignment *DriverAssignment `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate assigns the human-facing order number.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = "ORD-" + strings.ToUpper(uuid.NewString()[:8])
	}
	return nil
}
