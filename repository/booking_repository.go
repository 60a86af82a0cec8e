package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) Create(tx *gorm.DB, b *entity.ClassBooking) error {
	return tx.Create(b).Error
}

/// BookingRow is the gym dashboard list row: booking plus customer name.
type BookingRow struct {
	ID           uint                 `json:"id"`
	Status       entity.BookingStatus `json:"status"`
	ClassID      uint                 `json:"classId"`
	UserID       uint                 `json:"userId"`
	CustomerName string               `json:"customerName"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func (r *BookingRepository) ListForClass(classID uint) ([]BookingRow, error) {
	var rows []BookingRow
	err := r.DB.Table("class_bookings AS b").
		Select("b.id, b.status, b.class_id, b.user_id, u.first_name || ' ' || u.last_name AS customer_name, b.created_at").
		Joins("JOIN users u ON u.id = b.user_id").
		Where("b.class_id = ?", classID).
		Order("b.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *BookingRepository) ExistsForUser(classID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.ClassBooking{}).
		Where("class_id = ? AND user_id = ?", classID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}
