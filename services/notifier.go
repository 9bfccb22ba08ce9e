package services

import (
	"salonshop-backend/models"
)

// Notifier receives booking lifecycle events. Implementations must never
// fail the operation that emitted the event: delivery errors are logged and
// swallowed inside the implementation.
type Notifier interface {
	BookingCreated(booking *models.Booking)
	BookingCancelled(booking *models.Booking, cancelledBy string)
	BookingStatusChanged(booking *models.Booking, oldStatus, newStatus string)
	BookingReminder(booking *models.Booking)
}

// NoopNotifier is the default: events are emitted but nothing is delivered.
type NoopNotifier struct{}

func (NoopNotifier) BookingCreated(*models.Booking)                       {}
func (NoopNotifier) BookingCancelled(*models.Booking, string)             {}
func (NoopNotifier) BookingStatusChanged(*models.Booking, string, string) {}
func (NoopNotifier) BookingReminder(*models.Booking)                      {}
