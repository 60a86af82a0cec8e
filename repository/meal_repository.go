package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MealRepository struct {
	DB *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{DB: db}
}

func (r *MealRepository) Create(tx *gorm.DB, m *entity.Meal) error {
	return tx.Create(m).Error
}

func (r *MealRepository) Get(id uint) (*entity.Meal, error) {
	var m entity.Meal
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MealRepository) ListForRestaurants(restaurantIDs []uint, limit int) ([]entity.Meal, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	var meals []entity.Meal
	err := r.DB.Where("restaurant_id IN ?", restaurantIDs).
		Order("id DESC").Limit(limit).
		Find(&meals).Error
	return meals, err
}

func (r *MealRepository) Update(tx *gorm.DB, id uint, fields map[string]interface{}) error {
	return tx.Model(&entity.Meal{}).
		Where("id = ?", id).
		Updates(fields).Error
}
