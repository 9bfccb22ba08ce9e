package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"
)

// Discount windows are inclusive on both ends. Dates are fixed-width
// YYYY-MM-DD strings, so lexicographic comparison orders them correctly.
type Discount struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID     uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`
	DiscountType  string    `gorm:"type:varchar(20);not null" json:"discount_type"`
	DiscountValue float64   `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	StartDate     string    `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate       string    `gorm:"type:varchar(10);not null" json:"end_date"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`

	// Populated on reads for admin listings, never stored.
	ServiceTitle string `gorm:"-" json:"service_title,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Discount) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
