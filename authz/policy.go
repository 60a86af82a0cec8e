// Package authz answers one question for every handler: may caller X
// perform action Y on resource Z. Role membership and the restaurant/gym
// operator links live in the database; the checks here are the only place
// they are consulted.
package authz

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type Policy struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Policy { return &Policy{DB: db} }

// HasRole reports whether the user holds an active role.
func (p *Policy) HasRole(userID uint, role entity.Role) (bool, error) {
	var cnt int64
	err := p.DB.Model(&entity.UserRole{}).
		Where("user_id = ? AND role = ? AND is_active = ?", userID, role, true).
		Count(&cnt).Error
	return cnt > 0, err
}

// RequireRole is HasRole collapsed to the error taxonomy.
func (p *Policy) RequireRole(userID uint, role entity.Role) error {
	if userID == 0 {
		return apperr.ErrUnauthenticated
	}
	ok, err := p.HasRole(userID, role)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrForbidden
	}
	return nil
}

// CanManageRestaurant reports whether the user operates the restaurant.
// Admins pass unconditionally.
func (p *Policy) CanManageRestaurant(userID, restaurantID uint) (bool, error) {
	if admin, err := p.HasRole(userID, entity.RoleAdmin); err != nil {
		return false, err
	} else if admin {
		return true, nil
	}
	var cnt int64
	err := p.DB.Model(&entity.RestaurantUser{}).
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

// RestaurantIDs returns every restaurant the user is linked to.
func (p *Policy) RestaurantIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := p.DB.Model(&entity.RestaurantUser{}).
		Where("user_id = ?", userID).
		Pluck("restaurant_id", &ids).Error
	return ids, err
}

// CanManageGym reports whether the user operates the gym. Admins pass.
func (p *Policy) CanManageGym(userID, gymID uint) (bool, error) {
	if admin, err := p.HasRole(userID, entity.RoleAdmin); err != nil {
		return false, err
	} else if admin {
		return true, nil
	}
	var cnt int64
	err := p.DB.Model(&entity.GymUser{}).
		Where("gym_id = ? AND user_id = ?", gymID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

// IsAssignedDriver reports whether the caller is the driver on the
// assignment. No admin bypass: only the assigned driver moves an
// assignment through its lifecycle.
func (p *Policy) IsAssignedDriver(userID uint, a *entity.DriverAssignment) (bool, error) {
	var d entity.Driver
	if err := p.DB.First(&d, a.DriverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return d.UserID == userID, nil
}
