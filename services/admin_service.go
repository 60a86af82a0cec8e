package services

import (
	"errors"
	"time"

	"backend/authz"
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/ws"

	"gorm.io/gorm"
)

type AdminService struct {
	DB             *gorm.DB
	OrderRepo      *repository.OrderRepository
	AssignmentRepo *repository.AssignmentRepository
	DriverRepo     *repository.DriverRepository
	RestaurantRepo *repository.RestaurantRepository
	UserRepo       *repository.UserRepository
	Policy         *authz.Policy
	Events         *ws.EventHub
}

func NewAdminService(
	db *gorm.DB,
	orderRepo *repository.OrderRepository,
	assignmentRepo *repository.AssignmentRepository,
	driverRepo *repository.DriverRepository,
	restaurantRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
	policy *authz.Policy,
	events *ws.EventHub,
) *AdminService {
	return &AdminService{
		DB: db, OrderRepo: orderRepo, AssignmentRepo: assignmentRepo,
		DriverRepo: driverRepo, RestaurantRepo: restaurantRepo,
		UserRepo: userRepo, Policy: policy, Events: events,
	}
}

// AssignDriver installs the driver on the order as one atomic upsert keyed
// by order_id. Re-assigning replaces the previous driver and resets the
// assignment lifecycle; at no point does the order have zero assignments.
func (s *AdminService) AssignDriver(callerID, orderID, driverID uint) error {
	if err := s.Policy.RequireRole(callerID, entity.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.OrderRepo.Get(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	d, err := s.DriverRepo.Get(driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}
	if d.Status != entity.DriverActive {
		return apperr.ErrInvalidBody
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.AssignmentRepo.Upsert(tx, orderID, driverID)
	})
	if err != nil {
		return err
	}

	s.Events.Publish(ws.Event{
		Type:    "driver_assigned",
		OrderID: orderID,
		Status:  entity.AssignmentAssigned.String(),
	})
	return nil
}

// ---------------- Driver administration ----------------

type CreateDriverReq struct {
	UserID      uint   `json:"userId" binding:"required"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicleType"`
}

// CreateDriver registers a driver record for an existing user. New drivers
// start inactive until an admin activates them.
func (s *AdminService) CreateDriver(callerID uint, req *CreateDriverReq) (*entity.Driver, error) {
	if err := s.Policy.RequireRole(callerID, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.Get(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	d := entity.Driver{
		UserID:      req.UserID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		VehicleType: req.VehicleType,
		Status:      entity.DriverInactive,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.DriverRepo.Create(tx, &d); err != nil {
			return err
		}
		return s.UserRepo.AddRole(tx, req.UserID, entity.RoleDriver)
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type UpdateDriverReq struct {
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
	Phone       *string `json:"phone"`
	VehicleType *string `json:"vehicleType"`
}

func (s *AdminService) UpdateDriver(callerID, driverID uint, req *UpdateDriverReq) error {
	if err := s.Policy.RequireRole(callerID, entity.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.DriverRepo.Get(driverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	fields := map[string]interface{}{}
	if req.Status != nil {
		fields["status"] = entity.DriverStatus(*req.Status)
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.VehicleType != nil {
		fields["vehicle_type"] = *req.VehicleType
	}
	if len(fields) == 0 {
		return apperr.ErrInvalidBody
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.DriverRepo.Update(tx, driverID, fields)
	})
}

func (s *AdminService) ListDrivers(callerID uint, limit int) ([]entity.Driver, error) {
	if err := s.Policy.RequireRole(callerID, entity.RoleAdmin); err != nil {
		return nil, err
	}
	return s.DriverRepo.List(limit)
}

// ---------------- Dashboard & lists ----------------

type DashboardStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalRestaurants int64 `json:"totalRestaurants"`
	TotalDrivers     int64 `json:"totalDrivers"`
	TotalOrders      int64 `json:"totalOrders"`
	OrdersToday      int64 `json:"ordersToday"`
}

func (s *AdminService) Dashboard(callerID uint) (*DashboardStats, error) {
	if err := s.Policy.RequireRole(callerID, entity.RoleAdmin); err != nil {
		return nil, err
	}

	var stats DashboardStats
	var err error
	if stats.TotalUsers, err = s.UserRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalRestaurants, err = s.RestaurantRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalDrivers, err = s.DriverRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = s.OrderRepo.Count(); err != nil {
		return nil, err
	}
	start := time.Now().Truncate(24 * time.Hour)
	if stats.OrdersToday, err = s.OrderRepo.CountSince(start); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *AdminService) ListOrders(callerID uint, limit int) ([]repository.OrderSummary, error) {
	if err := s.Policy.RequireRole(callerID, entity.RoleAdmin); err != nil {
		return nil, err
	}
	return s.OrderRepo.ListAll(limit)
}

func (s *AdminService) ListRestaurants(callerID uint, limit int) ([]entity.Restaurant, error) {
	if err := s.Policy.RequireRole(callerID, entity.RoleAdmin); err != nil {
		return nil, err
	}
	return s.RestaurantRepo.List(limit)
}
