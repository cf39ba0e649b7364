package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is a medication order attached to a patient record.
type Prescription struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"patientId"`
	Medication string    `gorm:"type:varchar(255);not null" json:"medication"`
	Dosage     string    `gorm:"type:varchar(100)" json:"dosage,omitempty"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
