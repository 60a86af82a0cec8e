package repository

import (
	"strings"
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderSummary is the dashboard list row: order basics plus the customer
// and restaurant names joined in.
type OrderSummary struct {
	ID             uint               `json:"id"`
	OrderNumber    string             `json:"orderNumber"`
	Status         entity.OrderStatus `json:"status"`
	Total          int64              `json:"total"`
	RestaurantID   uint               `json:"restaurantId"`
	RestaurantName string             `json:"restaurantName"`
	CustomerID     uint               `json:"customerId"`
	CustomerName   string             `json:"customerName"`
	CreatedAt      time.Time          `json:"createdAt"`
}

func (r *OrderRepository) listSummaries(q *gorm.DB, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var rows []struct {
		ID             uint
		OrderNumber    string
		Status         entity.OrderStatus
		Total          int64
		RestaurantID   uint
		RestaurantName string
		CustomerID     uint
		FirstName      string
		LastName       string
		CreatedAt      time.Time
	}
	err := q.
		Select("o.id, o.order_number, o.status, o.total, o.restaurant_id, r.name AS restaurant_name, o.customer_id, u.first_name, u.last_name, o.created_at").
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Joins("JOIN users u ON u.id = o.customer_id").
		Order("o.id DESC").Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, OrderSummary{
			ID:             row.ID,
			OrderNumber:    row.OrderNumber,
			Status:         row.Status,
			Total:          row.Total,
			RestaurantID:   row.RestaurantID,
			RestaurantName: row.RestaurantName,
			CustomerID:     row.CustomerID,
			CustomerName:   strings.TrimSpace(row.FirstName + " " + row.LastName),
			CreatedAt:      row.CreatedAt,
		})
	}
	return out, nil
}

// ListAll is the admin view: latest orders across every restaurant.
func (r *OrderRepository) ListAll(limit int) ([]OrderSummary, error) {
	return r.listSummaries(r.DB.Table("orders AS o"), limit)
}

// ListForRestaurants is the operator view, scoped to the linked restaurants.
func (r *OrderRepository) ListForRestaurants(restaurantIDs []uint, limit int) ([]OrderSummary, error) {
	return r.listSummaries(
		r.DB.Table("orders AS o").Where("o.restaurant_id IN ?", restaurantIDs),
		limit,
	)
}

// UpdateStatus overwrites the status. Transition legality is checked in the
// service; this is the single write.
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, to entity.OrderStatus) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", to).Error
}

func (r *OrderRepository) Count() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) CountSince(since time.Time) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("created_at >= ?", since).
		Count(&cnt).Error
	return cnt, err
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}
