package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role tags a staff member's function in the clinic.
type Role string

const (
	RoleDoctor       Role = "DOCTOR"
	RoleAdmin        Role = "ADMIN"
	RoleNurse        Role = "NURSE"
	RoleReceptionist Role = "RECEPTIONIST"
)

// IsValid reports whether the role is one of the known staff tags.
func (r Role) IsValid() bool {
	switch r {
	case RoleDoctor, RoleAdmin, RoleNurse, RoleReceptionist:
		return true
	}
	return false
}

// User represents a clinic staff account used for authentication.
// The password column always holds a bcrypt hash, never plaintext.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:uni_users_email;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'DOCTOR';index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
