package routes

import (
	"salonshop-backend/config"
	"salonshop-backend/controllers"
	"salonshop-backend/models"
	"salonshop-backend/services"
	"salonshop-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, notifier services.Notifier) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	r.Use(config.PerformanceLogger())

	catalog := services.NewCatalogService(db)
	discounts := services.NewDiscountService(db)
	bookings := services.NewBookingService(db, notifier)
	attendance := services.NewAttendanceService(db)
	staff := services.NewStaffService(db)
	dashboard := services.NewDashboardService(db)

	authController := controllers.NewAuthController(db)
	serviceController := controllers.NewServiceController(catalog)
	discountController := controllers.NewDiscountController(discounts)
	bookingController := controllers.NewBookingController(bookings)
	attendanceController := controllers.NewAttendanceController(attendance)
	staffController := controllers.NewStaffController(staff)
	dashboardController := controllers.NewDashboardController(dashboard)
	healthController := controllers.NewHealthController(db)

	api := r.Group("/api")

	api.GET("/health", healthController.Check)

	auth := api.Group("/auth")
	{
		auth.POST("/admin/login", authController.AdminLogin)
		auth.POST("/customer/register", authController.CustomerRegister)
		auth.POST("/customer/login", authController.CustomerLogin)

		auth.GET("/me", utils.AuthMiddleware(), authController.Me)
	}

	// Catalog reads are public; customers browse before logging in.
	api.GET("/services", serviceController.GetServices)
	api.GET("/services/:id", serviceController.GetService)

	adminServices := api.Group("/services", utils.AuthMiddleware(), utils.RequireRole(models.RoleAdmin))
	{
		adminServices.POST("", serviceController.CreateService)
		adminServices.PUT("/:id", serviceController.UpdateService)
		adminServices.DELETE("/:id", serviceController.DeleteService)
	}

	adminDiscounts := api.Group("/discounts", utils.AuthMiddleware(), utils.RequireRole(models.RoleAdmin))
	{
		adminDiscounts.POST("", discountController.CreateDiscount)
		adminDiscounts.GET("", discountController.GetDiscounts)
		adminDiscounts.GET("/:id", discountController.GetDiscount)
		adminDiscounts.PUT("/:id", discountController.UpdateDiscount)
		adminDiscounts.DELETE("/:id", discountController.DeleteDiscount)
	}

	customerBookings := api.Group("/bookings", utils.AuthMiddleware(), utils.RequireRole(models.RoleCustomer))
	{
		customerBookings.POST("", bookingController.CreateBooking)
		customerBookings.GET("", bookingController.GetMyBookings)
		customerBookings.PUT("/:id/cancel", bookingController.CancelBooking)
	}

	admin := api.Group("/admin", utils.AuthMiddleware(), utils.RequireRole(models.RoleAdmin))
	{
		adminBookings := admin.Group("/bookings")
		{
			adminBookings.GET("", bookingController.GetAllBookings)
			adminBookings.GET("/:id", bookingController.GetBooking)
			adminBookings.PUT("/:id/status", bookingController.UpdateBookingStatus)
		}

		adminStaff := admin.Group("/staff")
		{
			adminStaff.POST("", staffController.CreateStaff)
			adminStaff.GET("", staffController.GetAllStaff)
			adminStaff.GET("/:id", staffController.GetStaff)
			adminStaff.PUT("/:id", staffController.UpdateStaff)
			adminStaff.DELETE("/:id", staffController.DeactivateStaff)
		}

		adminAttendance := admin.Group("/attendance")
		{
			adminAttendance.POST("/check-in", attendanceController.CheckIn)
			adminAttendance.PUT("/check-out", attendanceController.CheckOut)
			adminAttendance.GET("", attendanceController.GetAttendance)
			adminAttendance.PUT("/:id", attendanceController.UpdateAttendance)
		}

		adminDashboard := admin.Group("/dashboard")
		{
			adminDashboard.GET("/summary", dashboardController.GetSummary)
			adminDashboard.GET("/stats", dashboardController.GetStats)
			adminDashboard.GET("/recent-bookings", dashboardController.GetRecentBookings)
			adminDashboard.GET("/revenue-by-service", dashboardController.GetRevenueByService)
			adminDashboard.GET("/bookings-by-date", dashboardController.GetBookingsByDate)
			adminDashboard.GET("/top-services", dashboardController.GetTopServices)
		}
	}

	return r
}
