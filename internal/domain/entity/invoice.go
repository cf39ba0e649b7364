package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents whether an invoice has been settled.
type InvoiceStatus string

const (
	InvoiceStatusPaid   InvoiceStatus = "PAID"
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
)

// PaymentMethod enumerates the accepted settlement channels.
type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "CASH"
	PaymentMethodCCP       PaymentMethod = "CCP"
	PaymentMethodBaridimob PaymentMethod = "BARIDIMOB"
)

// InvoiceItem is a single billed line on an invoice.
type InvoiceItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// InvoiceItems is stored as a JSON column rather than a child table;
// line items are never queried independently of their invoice.
type InvoiceItems []InvoiceItem

// Invoice is a billing record for a patient. TotalAmount must equal the
// sum of line-item prices plus TaxAmount; the server enforces this.
type Invoice struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"patientId"`
	Amount        float64       `gorm:"type:numeric(12,2);not null" json:"amount"`
	TaxAmount     float64       `gorm:"type:numeric(12,2);not null;default:0" json:"taxAmount"`
	TotalAmount   float64       `gorm:"type:numeric(12,2);not null" json:"totalAmount"`
	Status        InvoiceStatus `gorm:"type:varchar(10);not null;default:'UNPAID';index" json:"status"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(15);not null" json:"paymentMethod"`
	Items         InvoiceItems  `gorm:"serializer:json;type:jsonb" json:"items"`
	Date          time.Time     `gorm:"not null;index" json:"date"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// ExpectedTotal computes the sum of line-item prices plus tax using
// decimal arithmetic, so float drift in the inputs cannot accumulate.
func (i *Invoice) ExpectedTotal() float64 {
	total := decimal.NewFromFloat(i.TaxAmount)
	for _, item := range i.Items {
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// TotalsConsistent reports whether the submitted TotalAmount matches the
// recomputed total to the cent.
func (i *Invoice) TotalsConsistent() bool {
	submitted := decimal.NewFromFloat(i.TotalAmount).Round(2)
	expected := decimal.NewFromFloat(i.ExpectedTotal()).Round(2)
	return submitted.Equal(expected)
}

// IsPaid checks if the invoice has been settled.
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}
