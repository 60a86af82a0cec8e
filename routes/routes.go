package routes

import (
	"backend/authz"
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.EventHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	mealRepo := repository.NewMealRepository(db)
	gymRepo := repository.NewGymRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	policy := authz.New(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo, policy, hub)
	assignmentSvc := services.NewAssignmentService(db, assignmentRepo, orderRepo, driverRepo, policy, hub)
	adminSvc := services.NewAdminService(db, orderRepo, assignmentRepo, driverRepo, restaurantRepo, userRepo, policy, hub)
	restaurantSvc := services.NewRestaurantService(db, restaurantRepo, mealRepo, policy)
	gymSvc := services.NewGymService(db, gymRepo, bookingRepo, policy)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	driverCtrl := controllers.NewDriverController(assignmentSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)
	restaurantCtrl := controllers.NewRestaurantController(restaurantSvc)
	gymCtrl := controllers.NewGymController(gymSvc)

	secret := cfg.JWTSecret

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(secret), authCtrl.Me)

	// Public browsing
	r.GET("/gyms/:gymId/classes", gymCtrl.Classes)

	// Customer
	r.POST("/classes/:id/book", middlewares.AuthMiddleware(secret), gymCtrl.Book)

	// Restaurant operators
	restaurant := r.Group("/restaurant", middlewares.AuthMiddleware(secret, "restaurant_owner", "admin"))
	{
		restaurant.GET("/orders", orderCtrl.List)
		restaurant.GET("/orders/:id", orderCtrl.Detail)
		restaurant.POST("/orders/:id/status", orderCtrl.UpdateStatus)
		restaurant.GET("/meals", restaurantCtrl.Meals)
		restaurant.POST("/meals", restaurantCtrl.CreateMeal)
		restaurant.PATCH("/meals/:id", restaurantCtrl.UpdateMeal)
	}

	// Drivers
	driver := r.Group("/driver", middlewares.AuthMiddleware(secret, "driver"))
	{
		driver.GET("/assignments", driverCtrl.List)
		driver.GET("/assignments/:id", driverCtrl.Detail)
		driver.POST("/assignments/:id/status", driverCtrl.UpdateStatus)
		driver.POST("/availability", driverCtrl.SetAvailability)
	}

	// Gym owners
	gym := r.Group("/gym", middlewares.AuthMiddleware(secret, "gym_owner", "admin"))
	{
		gym.POST("/:gymId/classes", gymCtrl.CreateClass)
		gym.GET("/classes/:id/bookings", gymCtrl.Bookings)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(secret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/orders", adminCtrl.Orders)
		admin.GET("/restaurants", adminCtrl.Restaurants)
		admin.GET("/drivers", adminCtrl.Drivers)
		admin.POST("/drivers", adminCtrl.CreateDriver)
		admin.PATCH("/drivers/:id", adminCtrl.UpdateDriver)
		admin.POST("/orders/:id/assign-driver", adminCtrl.AssignDriver)
	}

	// Live order feed for the admin dashboard
	r.GET("/ws/admin/events", middlewares.AuthMiddleware(secret, "admin"), hub.HandleWebSocket)
}
