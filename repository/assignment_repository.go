package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Get(id uint) (*entity.DriverAssignment, error) {
	var a entity.DriverAssignment
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) GetByOrder(orderID uint) (*entity.DriverAssignment, error) {
	var a entity.DriverAssignment
	if err := r.DB.Where("order_id = ?", orderID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// AssignmentRow is the driver dashboard list row.
type AssignmentRow struct {
	ID              uint                    `json:"id"`
	Status          entity.AssignmentStatus `json:"status"`
	OrderID         uint                    `json:"orderId"`
	OrderNumber     string                  `json:"orderNumber"`
	RestaurantName  string                  `json:"restaurantName"`
	DeliveryAddress string                  `json:"deliveryAddress"`
	AcceptedAt      *time.Time              `json:"acceptedAt,omitempty"`
	PickedUpAt      *time.Time              `json:"pickedUpAt,omitempty"`
	DeliveredAt     *time.Time              `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
}

func (r *AssignmentRepository) ListForDriver(driverID uint, limit int) ([]AssignmentRow, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var rows []AssignmentRow
	err := r.DB.Table("driver_assignments AS a").
		Select("a.id, a.status, a.order_id, o.order_number, r.name AS restaurant_name, o.delivery_address, a.accepted_at, a.picked_up_at, a.delivered_at, a.created_at").
		Joins("JOIN orders o ON o.id = a.order_id").
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Where("a.driver_id = ?", driverID).
		Order("a.id DESC").Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// Upsert installs driverID as the order's driver in a single conditional
// write keyed by the unique order_id index. Replacing the previous driver
// resets the lifecycle: status back to assigned, milestones cleared. No
// reader can ever observe an order without an assignment mid-replace.
func (r *AssignmentRepository) Upsert(tx *gorm.DB, orderID, driverID uint) error {
	a := entity.DriverAssignment{
		OrderID:  orderID,
		DriverID: driverID,
		Status:   entity.AssignmentAssigned,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"driver_id":    driverID,
			"status":       entity.AssignmentAssigned,
			"accepted_at":  nil,
			"picked_up_at": nil,
			"delivered_at": nil,
			"updated_at":   time.Now(),
		}),
	}).Create(&a).Error
}

// UpdateStatus writes the status plus the milestone timestamp for the
// states that carry one. Repeating a milestone status re-stamps it.
func (r *AssignmentRepository) UpdateStatus(tx *gorm.DB, id uint, to entity.AssignmentStatus, now time.Time) error {
	fields := map[string]interface{}{"status": to}
	switch to {
	case entity.AssignmentAccepted:
		fields["accepted_at"] = now
	case entity.AssignmentPickedUp:
		fields["picked_up_at"] = now
	case entity.AssignmentDelivered:
		fields["delivered_at"] = now
	}
	return tx.Model(&entity.DriverAssignment{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *AssignmentRepository) CountForOrder(orderID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.DriverAssignment{}).
		Where("order_id = ?", orderID).
		Count(&cnt).Error
	return cnt, err
}
