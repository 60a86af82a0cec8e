package entity

import (
	"gorm.io/gorm"
)

type DriverStatus string

const (
	DriverActive   DriverStatus = "active"
	DriverInactive DriverStatus = "inactive"
)

func (s DriverStatus) IsValid() bool {
	return s == DriverActive || s == DriverInactive
}

type Driver struct {
	gorm.Model
	FullName    string       `json:"fullName"`
	Phone       string       `json:"phone"`
	VehicleType string       `json:"vehicleType"`
	Status      DriverStatus `gorm:"size:16;default:inactive" json:"status"`
	IsAvailable bool         `gorm:"default:false" json:"isAvailable"`

	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Assignments []DriverAssignment `json:"-"`
}
