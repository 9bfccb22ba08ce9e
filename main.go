package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"salonshop-backend/config"
	"salonshop-backend/models"
	"salonshop-backend/routes"
	"salonshop-backend/services"
	"salonshop-backend/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Discount{},
		&models.Booking{},
		&models.Staff{},
		&models.Attendance{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seedAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	var notifier services.Notifier = services.NoopNotifier{}
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		notifier = services.NewTwilioNotifier(db)
		log.Println("SMS notifications enabled")
	}

	reminders := services.NewReminderService(db, notifier)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	r := routes.SetupRouter(db, notifier)
	printRoutes(r)
	r.Run(":" + port)
}

// seedAdmin creates the default admin account on first boot. Existing admins
// are left untouched.
func seedAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ? AND role = ?", username, models.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@salon.local"
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Role:     models.RoleAdmin,
		Username: &username,
		Email:    &email,
		Password: hashed,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Default admin user %q created", username)
	return nil
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
