package entity

import (
	"time"

	"gorm.io/gorm"
)

type GymClass struct {
	gorm.Model
	Name            string    `gorm:"size:255;not null" json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	TrainerName     string    `json:"trainerName"`
	StartAt         time.Time `gorm:"index" json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	MaxParticipants int       `json:"maxParticipants"`
	Price           int64     `json:"price"`

	GymID uint `gorm:"index" json:"gymId"`
	Gym   Gym  `json:"-"`

	Bookings []ClassBooking `gorm:"foreignKey:ClassID" json:"-"`
}
