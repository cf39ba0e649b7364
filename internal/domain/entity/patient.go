package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a clinic patient record. Everything beyond the name is
// optional; the intake form rarely has all of it on the first visit.
type Patient struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName  string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName   string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Phone      string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	NationalID string    `gorm:"type:varchar(30)" json:"nationalId,omitempty"`
	Address    string    `gorm:"type:text" json:"address,omitempty"`
	BloodGroup string    `gorm:"type:varchar(3)" json:"bloodGroup,omitempty"`
	Allergies  string    `gorm:"type:text" json:"allergies,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;index" json:"updatedAt"`

	// Relationships
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:PatientID" json:"prescriptions,omitempty"`
	Invoices      []Invoice      `gorm:"foreignKey:PatientID" json:"invoices,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
