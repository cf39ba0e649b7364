package repository

import (
	"context"

	"clinic-api/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	// FindAll returns all appointments with patient and doctor joined,
	// ordered by visit date ascending.
	FindAll(ctx context.Context) ([]entity.Appointment, error)
}
