package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type GymRepository struct {
	DB *gorm.DB
}

func NewGymRepository(db *gorm.DB) *GymRepository {
	return &GymRepository{DB: db}
}

func (r *GymRepository) Get(id uint) (*entity.Gym, error) {
	var g entity.Gym
	if err := r.DB.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GymRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Gym{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *GymRepository) Link(tx *gorm.DB, gymID, userID uint) error {
	return tx.Create(&entity.GymUser{GymID: gymID, UserID: userID}).Error
}

// ---------------- Classes ----------------

func (r *GymRepository) CreateClass(tx *gorm.DB, c *entity.GymClass) error {
	return tx.Create(c).Error
}

func (r *GymRepository) GetClass(id uint) (*entity.GymClass, error) {
	var c entity.GymClass
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListClasses returns the gym's schedule, soonest first.
func (r *GymRepository) ListClasses(gymID uint) ([]entity.GymClass, error) {
	var classes []entity.GymClass
	err := r.DB.Where("gym_id = ?", gymID).
		Order("start_at ASC").
		Find(&classes).Error
	return classes, err
}
