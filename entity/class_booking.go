package entity

import (
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingNoShow    BookingStatus = "no_show"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled,
		BookingCompleted, BookingNoShow:
		return true
	default:
		return false
	}
}

type ClassBooking struct {
	gorm.Model
	Status BookingStatus `gorm:"size:32;default:pending" json:"status"`
	Notes  string        `json:"notes"`

	ClassID uint     `gorm:"index:idx_class_booking,unique" json:"classId"`
	Class   GymClass `gorm:"foreignKey:ClassID" json:"-"`

	UserID uint `gorm:"index:idx_class_booking,unique" json:"userId"`
	User   User `json:"-"`
}
