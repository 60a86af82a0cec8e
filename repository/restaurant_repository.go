package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// List is the admin view, ordered by name like the dashboard table.
func (r *RestaurantRepository) List(limit int) ([]entity.Restaurant, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	var out []entity.Restaurant
	err := r.DB.Order("name ASC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Link(tx *gorm.DB, restaurantID, userID uint) error {
	return tx.Create(&entity.RestaurantUser{RestaurantID: restaurantID, UserID: userID}).Error
}

func (r *RestaurantRepository) Count() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).Count(&cnt).Error
	return cnt, err
}
