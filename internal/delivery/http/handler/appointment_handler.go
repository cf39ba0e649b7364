package handler

import (
	"encoding/json"
	"net/http"

	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/delivery/http/middleware"
	"clinic-api/internal/usecase"
	"clinic-api/pkg/response"
	"clinic-api/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch appointments")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req, callerID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound, usecase.ErrDoctorNotFound:
			response.BadRequest(w, "Could not create appointment")
		default:
			response.InternalServerError(w, "Could not create appointment")
		}
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}
