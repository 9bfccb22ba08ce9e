package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salonshop-backend/models"
	"salonshop-backend/utils"
)

// newTestDB opens an in-memory database with the full schema. A single
// connection keeps the in-memory store from vanishing between sessions and
// serializes concurrent access the same way a busy pool would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Discount{},
		&models.Booking{},
		&models.Staff{},
		&models.Attendance{},
	))
	return db
}

func seedService(t *testing.T, db *gorm.DB, title string, basePrice float64) *models.Service {
	t.Helper()
	service := models.Service{
		Title:       title,
		Description: "test service",
		BasePrice:   basePrice,
		Duration:    30,
		Status:      models.ServiceActive,
	}
	require.NoError(t, db.Create(&service).Error)
	return &service
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	customer := models.User{
		Role:     models.RoleCustomer,
		Name:     name,
		Email:    &email,
		Password: "not-a-real-hash",
		Phone:    "+15550001111",
	}
	require.NoError(t, db.Create(&customer).Error)
	return &customer
}

func seedStaff(t *testing.T, db *gorm.DB, name string) *models.Staff {
	t.Helper()
	staff := models.Staff{
		FullName:     name,
		Phone:        "+15550002222",
		Role:         "stylist",
		WorkingDays:  models.StringList{"Monday", "Tuesday"},
		ShiftTimings: models.ShiftTimings{Start: "09:00", End: "17:00"},
		Status:       models.StaffActive,
	}
	require.NoError(t, db.Create(&staff).Error)
	return &staff
}

func dateFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format(utils.DateLayout)
}
