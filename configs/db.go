package configs

import (
	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{}, &entity.UserRole{},
		&entity.Restaurant{}, &entity.RestaurantUser{}, &entity.Meal{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Driver{}, &entity.DriverAssignment{},
		&entity.Gym{}, &entity.GymUser{},
		&entity.GymClass{}, &entity.ClassBooking{},
	)
}
