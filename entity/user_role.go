package entity

import (
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin           Role = "admin"
	RoleRestaurantOwner Role = "restaurant_owner"
	RoleGymOwner        Role = "gym_owner"
	RoleDriver          Role = "driver"
	RoleCustomer        Role = "customer"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleRestaurantOwner, RoleGymOwner, RoleDriver, RoleCustomer:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// UserRole maps a user to one of their roles. A user may hold several
// active roles at once (e.g. restaurant_owner and driver).
type UserRole struct {
	gorm.Model
	UserID   uint `gorm:"index:idx_user_role,unique" json:"userId"`
	User     User `json:"-"`
	Role     Role `gorm:"size:32;index:idx_user_role,unique" json:"role"`
	IsActive bool `gorm:"default:true" json:"isActive"`
}
