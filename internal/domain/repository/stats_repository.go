package repository

import (
	"context"
	"time"
)

// StatsRepository aggregates dashboard figures with full scans at request
// time. It is an interface so a caching implementation can be slotted in
// without touching the usecase when the clinic outgrows direct scans.
type StatsRepository interface {
	CountPatients(ctx context.Context) (int64, error)
	CountAppointments(ctx context.Context) (int64, error)
	CountAppointmentsSince(ctx context.Context, since time.Time) (int64, error)
	SumInvoiceTotals(ctx context.Context) (float64, error)
}
