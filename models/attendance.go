package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceHalfDay = "Half-day"
)

// ValidAttendanceStatus reports whether s is an allowed attendance status.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceHalfDay:
		return true
	}
	return false
}

// Attendance holds one check-in/check-out cycle per staff member per day.
// The unique index on (staff_id, date) is the authoritative guard against
// double check-ins.
type Attendance struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_staff_date,priority:1" json:"staff_id"`
	StaffName string    `json:"staff_name"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_staff_date,priority:2" json:"date"`

	CheckInTime      string  `gorm:"type:varchar(5);not null" json:"check_in_time"`
	CheckOutTime     *string `gorm:"type:varchar(5)" json:"check_out_time"`
	AttendanceStatus string  `gorm:"type:varchar(20);default:'Present'" json:"attendance_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
