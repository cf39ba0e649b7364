package repository

import (
	"context"

	"clinic-api/internal/domain/entity"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// FindAll returns all invoices ordered by billing date, newest first.
	FindAll(ctx context.Context) ([]entity.Invoice, error)
}
