package testutil

import (
	"fmt"
	"testing"

	"backend/entity"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns a migrated in-memory database unique to the test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{}, &entity.UserRole{},
		&entity.Restaurant{}, &entity.RestaurantUser{}, &entity.Meal{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Driver{}, &entity.DriverAssignment{},
		&entity.Gym{}, &entity.GymUser{},
		&entity.GymClass{}, &entity.ClassBooking{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
