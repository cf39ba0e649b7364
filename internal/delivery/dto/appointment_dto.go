package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PatientID uuid.UUID `json:"patientId" validate:"required"`
	// DoctorID is optional; when absent the appointment is attributed to
	// the authenticated caller.
	DoctorID uuid.UUID `json:"doctorId" validate:"omitempty"`
	Date     time.Time `json:"date" validate:"required"`
	Status   string    `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
	Notes    string    `json:"notes" validate:"omitempty"`
}
