package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type DriverRepository struct {
	DB *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{DB: db}
}

func (r *DriverRepository) Create(tx *gorm.DB, d *entity.Driver) error {
	return tx.Create(d).Error
}

func (r *DriverRepository) Get(id uint) (*entity.Driver, error) {
	var d entity.Driver
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DriverRepository) GetByUserID(userID uint) (*entity.Driver, error) {
	var d entity.Driver
	if err := r.DB.Where("user_id = ?", userID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DriverRepository) List(limit int) ([]entity.Driver, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var drivers []entity.Driver
	err := r.DB.Order("id DESC").Limit(limit).Find(&drivers).Error
	return drivers, err
}

// Update applies the given fields only; zero values in the patch are
// passed explicitly by the service.
func (r *DriverRepository) Update(tx *gorm.DB, id uint, fields map[string]interface{}) error {
	return tx.Model(&entity.Driver{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *DriverRepository) SetAvailability(tx *gorm.DB, id uint, available bool) error {
	return tx.Model(&entity.Driver{}).
		Where("id = ?", id).
		Update("is_available", available).Error
}

func (r *DriverRepository) Count() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Driver{}).Count(&cnt).Error
	return cnt, err
}
