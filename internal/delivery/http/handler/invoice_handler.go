package handler

import (
	"encoding/json"
	"net/http"

	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/usecase"
	"clinic-api/pkg/response"
	"clinic-api/pkg/validator"
)

type InvoiceHandler struct {
	invoiceUsecase usecase.InvoiceUsecase
	validator      *validator.CustomValidator
}

func NewInvoiceHandler(invoiceUsecase usecase.InvoiceUsecase, validator *validator.CustomValidator) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUsecase: invoiceUsecase,
		validator:      validator,
	}
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch invoices")
		return
	}

	response.JSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	invoice, err := h.invoiceUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceTotalMismatch:
			response.BadRequest(w, "Invoice total does not match items plus tax")
		case usecase.ErrPatientNotFound:
			response.BadRequest(w, "Could not create invoice")
		default:
			response.InternalServerError(w, "Could not create invoice")
		}
		return
	}

	response.JSON(w, http.StatusOK, invoice)
}
