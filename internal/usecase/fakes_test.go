package usecase

import (
	"context"
	"io"
	"time"

	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uni_users_email"}
	}
	user.ID = uuid.New()
	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*entity.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: map[uuid.UUID]*entity.Patient{}}
}

func (r *fakePatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	patient.ID = uuid.New()
	patient.UpdatedAt = time.Now()
	stored := *patient
	r.patients[patient.ID] = &stored
	return nil
}

func (r *fakePatientRepo) FindAll(_ context.Context) ([]entity.Patient, error) {
	all := make([]entity.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		all = append(all, *p)
	}
	return all, nil
}

func (r *fakePatientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, ok := r.patients[id]
	if !ok {
		return nil, nil
	}
	copied := *patient
	return &copied, nil
}

func (r *fakePatientRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.patients[id]
	return ok, nil
}

type fakeAppointmentRepo struct {
	created []*entity.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	appointment.ID = uuid.New()
	r.created = append(r.created, appointment)
	return nil
}

func (r *fakeAppointmentRepo) FindAll(_ context.Context) ([]entity.Appointment, error) {
	all := make([]entity.Appointment, 0, len(r.created))
	for _, a := range r.created {
		all = append(all, *a)
	}
	return all, nil
}

type fakeInvoiceRepo struct {
	created []*entity.Invoice
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	invoice.ID = uuid.New()
	r.created = append(r.created, invoice)
	return nil
}

func (r *fakeInvoiceRepo) FindAll(_ context.Context) ([]entity.Invoice, error) {
	all := make([]entity.Invoice, 0, len(r.created))
	for _, inv := range r.created {
		all = append(all, *inv)
	}
	return all, nil
}

type fakeStatsRepo struct {
	patients     int64
	appointments int64
	sinceCount   int64
	revenue      float64
	lastSince    time.Time
}

func (r *fakeStatsRepo) CountPatients(_ context.Context) (int64, error) {
	return r.patients, nil
}

func (r *fakeStatsRepo) CountAppointments(_ context.Context) (int64, error) {
	return r.appointments, nil
}

func (r *fakeStatsRepo) CountAppointmentsSince(_ context.Context, since time.Time) (int64, error) {
	r.lastSince = since
	return r.sinceCount, nil
}

func (r *fakeStatsRepo) SumInvoiceTotals(_ context.Context) (float64, error) {
	return r.revenue, nil
}
