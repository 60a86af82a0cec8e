package entity

import (
	"gorm.io/gorm"
)

type Gym struct {
	gorm.Model
	Name          string `gorm:"size:255;not null" json:"name"`
	Description   string `json:"description"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	IsActive      bool   `gorm:"default:true" json:"isActive"`
	MembershipFee int64  `json:"membershipFee"`

	Operators []GymUser  `json:"-"`
	Classes   []GymClass `json:"-"`
}

// GymUser links an operator account to the gym it runs. Authorization-only.
type GymUser struct {
	gorm.Model
	GymID  uint `gorm:"index:idx_gym_user,unique" json:"gymId"`
	Gym    Gym  `json:"-"`
	UserID uint `gorm:"index:idx_gym_user,unique" json:"userId"`
	User   User `json:"-"`
}
