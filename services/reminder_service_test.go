package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonshop-backend/models"
)

func TestSendDailyReminders(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := NewReminderService(db, notifier)
	haircut := seedService(t, db, "Haircut", 100)
	alice := seedCustomer(t, db, "Alice", "alice@example.com")

	tomorrow := dateFromNow(1)
	seedBooking(t, db, haircut, alice, tomorrow, "10:00", models.BookingPending, 100)
	seedBooking(t, db, haircut, alice, tomorrow, "11:00", models.BookingConfirmed, 100)
	// Not due or not actionable: no reminder.
	seedBooking(t, db, haircut, alice, tomorrow, "12:00", models.BookingCancelled, 100)
	seedBooking(t, db, haircut, alice, dateFromNow(2), "10:00", models.BookingConfirmed, 100)

	svc.SendDailyReminders()

	reminders := 0
	for _, e := range notifier.events {
		if e == "reminder" {
			reminders++
		}
	}
	assert.Equal(t, 2, reminders)
	require.Len(t, notifier.created, 0)
}
