package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User covers both roles: admins log in by username, customers by email.
// Username and Email are nullable so the unique indexes stay sparse and the
// two roles never collide on fields they don't carry.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Role     string    `gorm:"type:varchar(20);not null;index" json:"role"`
	Username *string   `gorm:"uniqueIndex" json:"username,omitempty"`
	Email    *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `json:"name,omitempty"`
	Phone    string    `json:"phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Initialize UUID before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
