package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) Get(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt > 0, err
}

func (r *UserRepository) AddRole(tx *gorm.DB, userID uint, role entity.Role) error {
	return tx.Create(&entity.UserRole{UserID: userID, Role: role, IsActive: true}).Error
}

// Roles returns the user's active roles.
func (r *UserRepository) Roles(userID uint) ([]entity.Role, error) {
	var roles []entity.Role
	err := r.DB.Model(&entity.UserRole{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Pluck("role", &roles).Error
	return roles, err
}

func (r *UserRepository) Count() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Count(&cnt).Error
	return cnt, err
}
