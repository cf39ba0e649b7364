package repository

import (
	"context"

	"clinic-api/internal/domain/entity"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
}
