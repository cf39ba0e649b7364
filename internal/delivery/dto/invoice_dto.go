package dto

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceItemRequest struct {
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type CreateInvoiceRequest struct {
	PatientID     uuid.UUID            `json:"patientId" validate:"required"`
	Amount        float64              `json:"amount" validate:"gte=0"`
	TaxAmount     float64              `json:"taxAmount" validate:"gte=0"`
	TotalAmount   float64              `json:"totalAmount" validate:"gte=0"`
	Status        string               `json:"status" validate:"omitempty,oneof=PAID UNPAID"`
	PaymentMethod string               `json:"paymentMethod" validate:"required,oneof=CASH CCP BARIDIMOB"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	Date          time.Time            `json:"date" validate:"omitempty"`
}
