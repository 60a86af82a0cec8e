package services

import (
	"errors"
	"fmt"

	"backend/authz"
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/ws"

	"gorm.io/gorm"
)

type OrderService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Policy *authz.Policy
	Events *ws.EventHub
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, policy *authz.Policy, events *ws.EventHub) *OrderService {
	return &OrderService{DB: db, Repo: repo, Policy: policy, Events: events}
}

// SetStatus applies a restaurant-requested status to the order.
// Checks run in taxonomy order: literal, existence, ownership, transition.
func (s *OrderService) SetStatus(callerID, orderID uint, requested string) error {
	status := entity.OrderStatus(requested)
	if !status.IsValid() || !status.RestaurantSettable() {
		return apperr.ErrInvalidBody
	}

	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	ok, err := s.Policy.CanManageRestaurant(callerID, o.RestaurantID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrForbidden
	}

	if !o.Status.CanTransition(status) {
		return fmt.Errorf("%w: %s -> %s", apperr.ErrInvalidTransition, o.Status, status)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, o.ID, status)
	})
	if err != nil {
		return err
	}

	s.Events.Publish(ws.Event{Type: "order_status", OrderID: o.ID, Status: status.String()})
	return nil
}

// ListForOperator returns orders for every restaurant the caller is linked
// to, newest first.
func (s *OrderService) ListForOperator(callerID uint, limit int) ([]repository.OrderSummary, error) {
	ids, err := s.Policy.RestaurantIDs(callerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []repository.OrderSummary{}, nil
	}
	return s.Repo.ListForRestaurants(ids, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForOperator(callerID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	ok, err := s.Policy.CanManageRestaurant(callerID, o.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrForbidden
	}

	items, err := s.Repo.GetItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}
