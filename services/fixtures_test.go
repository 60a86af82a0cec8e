package services

import (
	"testing"

	"backend/entity"

	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email string, roles ...entity.Role) *entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", FirstName: "Test"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	for _, r := range roles {
		if err := db.Create(&entity.UserRole{UserID: u.ID, Role: r, IsActive: true}).Error; err != nil {
			t.Fatalf("seed role: %v", err)
		}
	}
	return &u
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string, operatorIDs ...uint) *entity.Restaurant {
	t.Helper()
	r := entity.Restaurant{Name: name, IsActive: true}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	for _, uid := range operatorIDs {
		if err := db.Create(&entity.RestaurantUser{RestaurantID: r.ID, UserID: uid}).Error; err != nil {
			t.Fatalf("seed restaurant link: %v", err)
		}
	}
	return &r
}

func seedOrder(t *testing.T, db *gorm.DB, restaurantID, customerID uint, status entity.OrderStatus) *entity.Order {
	t.Helper()
	o := entity.Order{
		RestaurantID: restaurantID,
		CustomerID:   customerID,
		Status:       status,
		Subtotal:     1000,
		DeliveryFee:  200,
		Total:        1200,
	}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return &o
}

func seedDriver(t *testing.T, db *gorm.DB, userID uint, status entity.DriverStatus) *entity.Driver {
	t.Helper()
	d := entity.Driver{UserID: userID, FullName: "Test Driver", Status: status}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed driver: %v", err)
	}
	return &d
}

func seedAssignment(t *testing.T, db *gorm.DB, orderID, driverID uint, status entity.AssignmentStatus) *entity.DriverAssignment {
	t.Helper()
	a := entity.DriverAssignment{OrderID: orderID, DriverID: driverID, Status: status}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	return &a
}

func seedGym(t *testing.T, db *gorm.DB, name string, operatorIDs ...uint) *entity.Gym {
	t.Helper()
	g := entity.Gym{Name: name, IsActive: true}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("seed gym: %v", err)
	}
	for _, uid := range operatorIDs {
		if err := db.Create(&entity.GymUser{GymID: g.ID, UserID: uid}).Error; err != nil {
			t.Fatalf("seed gym link: %v", err)
		}
	}
	return &g
}
