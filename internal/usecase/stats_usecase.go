package usecase

import (
	"context"
	"time"

	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type StatsUsecase interface {
	Get(ctx context.Context) (*dto.StatsResponse, error)
}

type statsUsecase struct {
	log       *logrus.Logger
	statsRepo repository.StatsRepository
	now       func() time.Time
}

func NewStatsUsecase(log *logrus.Logger, statsRepo repository.StatsRepository) StatsUsecase {
	return &statsUsecase{
		log:       log,
		statsRepo: statsRepo,
		now:       time.Now,
	}
}

func (u *statsUsecase) Get(ctx context.Context) (*dto.StatsResponse, error) {
	patientCount, err := u.statsRepo.CountPatients(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	appointmentCount, err := u.statsRepo.CountAppointments(ctx)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	now := u.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	appointmentsToday, err := u.statsRepo.CountAppointmentsSince(ctx, startOfDay)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}

	totalRevenue, err := u.statsRepo.SumInvoiceTotals(ctx)
	if err != nil {
		u.log.Warnf("Failed to sum invoice totals: %+v", err)
		return nil, err
	}

	return &dto.StatsResponse{
		PatientCount:      patientCount,
		AppointmentCount:  appointmentCount,
		AppointmentsToday: appointmentsToday,
		TotalRevenue:      totalRevenue,
	}, nil
}
