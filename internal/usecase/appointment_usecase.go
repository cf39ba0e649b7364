package usecase

import (
	"context"
	"errors"

	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type AppointmentUsecase interface {
	List(ctx context.Context) ([]entity.Appointment, error)
	// Create books a visit. When req.DoctorID is zero the appointment is
	// attributed to callerID, the authenticated staff user.
	Create(ctx context.Context, req *dto.CreateAppointmentRequest, callerID uuid.UUID) (*entity.Appointment, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
}

func NewAppointmentUsecase(log *logrus.Logger, appointmentRepo repository.AppointmentRepository, patientRepo repository.PatientRepository) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
}

func (u *appointmentUsecase) List(ctx context.Context) ([]entity.Appointment, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return appointments, nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest, callerID uuid.UUID) (*entity.Appointment, error) {
	exists, err := u.patientRepo.Exists(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to check patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	doctorID := req.DoctorID
	if doctorID == uuid.Nil {
		doctorID = callerID
	}

	status := entity.AppointmentStatus(req.Status)
	if status == "" {
		status = entity.AppointmentStatusPending
	}

	appointment := &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  doctorID,
		Date:      req.Date,
		Status:    status,
		Notes:     req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	return appointment, nil
}
