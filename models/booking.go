package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

// ValidBookingStatus reports whether s is one of the four booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking snapshots customer and service fields at creation time so later
// edits to either never retroactively alter history. The unique index on
// (service_id, date, time_slot) covers every row regardless of status and is
// the authoritative guard against double-booking a slot.
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`

	ServiceID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_service_date_slot,priority:1" json:"service_id"`
	ServiceTitle string    `json:"service_title"`
	Date         string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_service_date_slot,priority:2" json:"date"`
	TimeSlot     string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_service_date_slot,priority:3" json:"time_slot"`

	BasePrice       float64 `gorm:"type:decimal(10,2);not null" json:"base_price"`
	FinalPrice      float64 `gorm:"type:decimal(10,2);not null" json:"final_price"`
	DiscountApplied bool    `gorm:"default:false" json:"discount_applied"`

	Status string `gorm:"type:varchar(20);default:'Pending';index" json:"status"`
	Notes  string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
