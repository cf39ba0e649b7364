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

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	List(ctx context.Context) ([]entity.Patient, error)
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*entity.Patient, error)
	// Detail returns the patient with appointments, prescriptions and
	// invoices attached.
	Detail(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*entity.Prescription, error)
}

type patientUsecase struct {
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	prescriptionRepo repository.PrescriptionRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, prescriptionRepo repository.PrescriptionRepository) PatientUsecase {
	return &patientUsecase{
		log:              log,
		patientRepo:      patientRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

func (u *patientUsecase) List(ctx context.Context) ([]entity.Patient, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return patients, nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*entity.Patient, error) {
	patient := &entity.Patient{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
		Allergies:  req.Allergies,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}
	return patient, nil
}

func (u *patientUsecase) Detail(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to fetch patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (u *patientUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*entity.Prescription, error) {
	prescription := &entity.Prescription{
		PatientID:  req.PatientID,
		Medication: req.Medication,
		Dosage:     req.Dosage,
		Notes:      req.Notes,
	}

	if err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}
	return prescription, nil
}
