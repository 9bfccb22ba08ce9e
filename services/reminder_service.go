// services/reminder_service.go
package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"salonshop-backend/models"
	"salonshop-backend/utils"
)

// ReminderService dispatches a reminder event for every Pending or Confirmed
// booking scheduled for tomorrow. Delivery is whatever the configured
// Notifier does with it; with the no-op notifier the whole job is inert.
type ReminderService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewReminderService(db *gorm.DB, notifier Notifier) *ReminderService {
	return &ReminderService{db: db, notifier: notifier}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)

	var bookings []models.Booking
	err := s.db.
		Where("date = ? AND status IN ?", tomorrow,
			[]string{models.BookingPending, models.BookingConfirmed}).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	for i := range bookings {
		s.notifier.BookingReminder(&bookings[i])
	}

	log.Printf("Daily reminder processing completed (%d bookings)", len(bookings))
}
