package services

import (
	"errors"
	"fmt"
	"time"

	"backend/authz"
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/ws"

	"gorm.io/gorm"
)

type AssignmentService struct {
	DB         *gorm.DB
	Repo       *repository.AssignmentRepository
	OrderRepo  *repository.OrderRepository
	DriverRepo *repository.DriverRepository
	Policy     *authz.Policy
	Events     *ws.EventHub
}

func NewAssignmentService(
	db *gorm.DB,
	repo *repository.AssignmentRepository,
	orderRepo *repository.OrderRepository,
	driverRepo *repository.DriverRepository,
	policy *authz.Policy,
	events *ws.EventHub,
) *AssignmentService {
	return &AssignmentService{
		DB: db, Repo: repo, OrderRepo: orderRepo, DriverRepo: driverRepo,
		Policy: policy, Events: events,
	}
}

// SetStatus applies a driver-requested status to the assignment. Milestone
// statuses stamp their timestamp; delivered also cascades to the parent
// order inside the same transaction, so the pair can never end up split.
func (s *AssignmentService) SetStatus(callerID, assignmentID uint, requested string) error {
	status := entity.AssignmentStatus(requested)
	if !status.IsValid() || !status.DriverSettable() {
		return apperr.ErrInvalidBody
	}

	a, err := s.Repo.Get(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	ok, err := s.Policy.IsAssignedDriver(callerID, a)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrForbidden
	}

	if !a.Status.CanTransition(status) {
		return fmt.Errorf("%w: %s -> %s", apperr.ErrInvalidTransition, a.Status, status)
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateStatus(tx, a.ID, status, now); err != nil {
			return err
		}
		if status == entity.AssignmentDelivered {
			// cascade: the order is delivered exactly when its assignment is
			return s.OrderRepo.UpdateStatus(tx, a.OrderID, entity.OrderDelivered)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Events.Publish(ws.Event{
		Type:         "assignment_status",
		OrderID:      a.OrderID,
		AssignmentID: a.ID,
		Status:       status.String(),
	})
	if status == entity.AssignmentDelivered {
		s.Events.Publish(ws.Event{Type: "order_status", OrderID: a.OrderID, Status: entity.OrderDelivered.String()})
	}
	return nil
}

// ListForCaller returns the caller's assignments; the caller must have a
// driver record.
func (s *AssignmentService) ListForCaller(callerID uint, limit int) ([]repository.AssignmentRow, error) {
	d, err := s.DriverRepo.GetByUserID(callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrForbidden
		}
		return nil, err
	}
	return s.Repo.ListForDriver(d.ID, limit)
}

func (s *AssignmentService) DetailForCaller(callerID, assignmentID uint) (*entity.DriverAssignment, error) {
	a, err := s.Repo.Get(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	ok, err := s.Policy.IsAssignedDriver(callerID, a)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrForbidden
	}
	return a, nil
}

// SetAvailability toggles the caller's driver availability flag.
func (s *AssignmentService) SetAvailability(callerID uint, available bool) error {
	d, err := s.DriverRepo.GetByUserID(callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrForbidden
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.DriverRepo.SetAvailability(tx, d.ID, available)
	})
}
