package repository

import (
	"context"

	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	// FindAll returns all patients ordered by last update, newest first.
	FindAll(ctx context.Context) ([]entity.Patient, error)
	// FindByID loads a patient with appointments, prescriptions and
	// invoices attached. Returns (nil, nil) when the id is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	// Exists reports whether a patient row with the given id is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
