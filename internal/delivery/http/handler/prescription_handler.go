package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
	"clinic-booking/pkg/validator"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.CreatePrescription(r.Context(), identity, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicationsRequired:
			response.BadRequest(w, err.Error())
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAppointmentDoctor:
			response.Forbidden(w, err.Error())
		case usecase.ErrPrescriptionExists, usecase.ErrAppointmentNotConfirmed:
			response.Conflict(w, err.Error())
		case usecase.ErrUnauthenticated:
			response.Unauthorized(w, "")
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *PrescriptionHandler) GetPrescription(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Prescription not found")
		return
	}

	prescription, err := h.prescriptionUsecase.GetPrescription(r.Context(), identity, id)
	if err != nil {
		h.writeLookupError(w, err, "Failed to get prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

// GetDocument streams the prescription as a PDF attachment
func (h *PrescriptionHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.NotFound(w, "Prescription not found")
		return
	}

	document, err := h.prescriptionUsecase.GetPrescriptionDocument(r.Context(), identity, id)
	if err != nil {
		h.writeLookupError(w, err, "Failed to render prescription document")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="prescription-`+id.String()+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

func (h *PrescriptionHandler) writeLookupError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrPrescriptionNotFound:
		response.NotFound(w, "Prescription not found")
	case usecase.ErrPrescriptionNotOwned:
		response.Forbidden(w, err.Error())
	case usecase.ErrUnauthenticated:
		response.Unauthorized(w, "")
	default:
		response.InternalServerError(w, fallback)
	}
}
