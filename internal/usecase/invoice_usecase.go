package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ErrInvoiceTotalMismatch rejects invoices whose submitted total does not
// equal the sum of line-item prices plus tax. The client-computed total
// is verified, never trusted.
var ErrInvoiceTotalMismatch = errors.New("invoice total does not match items plus tax")

type InvoiceUsecase interface {
	List(ctx context.Context) ([]entity.Invoice, error)
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*entity.Invoice, error)
}

type invoiceUsecase struct {
	log         *logrus.Logger
	invoiceRepo repository.InvoiceRepository
}

func NewInvoiceUsecase(log *logrus.Logger, invoiceRepo repository.InvoiceRepository) InvoiceUsecase {
	return &invoiceUsecase{
		log:         log,
		invoiceRepo: invoiceRepo,
	}
}

func (u *invoiceUsecase) List(ctx context.Context) ([]entity.Invoice, error) {
	invoices, err := u.invoiceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list invoices: %+v", err)
		return nil, err
	}
	return invoices, nil
}

func (u *invoiceUsecase) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	status := entity.InvoiceStatus(req.Status)
	if status == "" {
		status = entity.InvoiceStatusUnpaid
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	items := make(entity.InvoiceItems, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.InvoiceItem{
			Description: item.Description,
			Price:       item.Price,
		})
	}

	invoice := &entity.Invoice{
		PatientID:     req.PatientID,
		Amount:        req.Amount,
		TaxAmount:     req.TaxAmount,
		TotalAmount:   req.TotalAmount,
		Status:        status,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Items:         items,
		Date:          date,
	}

	if !invoice.TotalsConsistent() {
		return nil, ErrInvoiceTotalMismatch
	}

	if err := u.invoiceRepo.Create(ctx, invoice); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create invoice: %+v", err)
		return nil, err
	}
	return invoice, nil
}
