package dto

import "github.com/google/uuid"

type CreatePatientRequest struct {
	FirstName  string `json:"firstName" validate:"required,max=100"`
	LastName   string `json:"lastName" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	NationalID string `json:"nationalId" validate:"omitempty,max=30"`
	Address    string `json:"address" validate:"omitempty"`
	BloodGroup string `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies  string `json:"allergies" validate:"omitempty"`
}

type CreatePrescriptionRequest struct {
	PatientID  uuid.UUID `json:"patientId" validate:"required"`
	Medication string    `json:"medication" validate:"required,max=255"`
	Dosage     string    `json:"dosage" validate:"omitempty,max=100"`
	Notes      string    `json:"notes" validate:"omitempty"`
}
