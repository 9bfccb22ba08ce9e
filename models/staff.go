package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StaffActive   = "Active"
	StaffInactive = "Inactive"
)

var staffRoles = map[string]bool{
	"stylist":      true,
	"receptionist": true,
	"manager":      true,
	"therapist":    true,
}

// ValidStaffRole reports whether role is one of the salon staff roles.
func ValidStaffRole(role string) bool {
	return staffRoles[role]
}

// StringList is a JSON-backed string slice column (working day names).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// ShiftTimings is a JSON-backed start/end time-of-day pair.
type ShiftTimings struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (s ShiftTimings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ShiftTimings) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(str)
	}
	return json.Unmarshal(b, s)
}

// Staff soft-delete (IsDeleted) is irreversible through the API and
// independent of Status.
type Staff struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	FullName     string       `gorm:"not null" json:"full_name"`
	Email        string       `json:"email"`
	Phone        string       `gorm:"not null" json:"phone"`
	Role         string       `gorm:"type:varchar(20);not null" json:"role"`
	WorkingDays  StringList   `gorm:"type:jsonb;default:'[]'" json:"working_days"`
	ShiftTimings ShiftTimings `gorm:"type:jsonb;default:'{}'" json:"shift_timings"`
	Status       string       `gorm:"type:varchar(20);default:'Active'" json:"status"`
	IsDeleted    bool         `gorm:"default:false" json:"is_deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
