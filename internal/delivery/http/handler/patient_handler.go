package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"hospital-api/internal/converter"
	"hospital-api/internal/delivery/dto"
	"hospital-api/internal/usecase"
	"hospital-api/pkg/response"
	"hospital-api/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func writePatientError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrSectionNotFound):
		response.BadRequest(w, "Sections doesn't exist.")
	case errors.Is(err, usecase.ErrInvalidBirthDate):
		response.BadRequest(w, "Invalid birth date format, use YYYY-MM-DD")
	case errors.Is(err, usecase.ErrIDMismatch):
		response.BadRequest(w, "Patient ID in path does not match request body")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *PatientHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	query, ok := decodeListQuery(w, r, h.validator)
	if !ok {
		return
	}

	patients, total, err := h.patientUsecase.GetPatients(r.Context(), converter.ListQueryToEntity(query))
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", patients,
		response.NewMeta(query.Page, query.PageSize, total))
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "Invalid patient ID")
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		writePatientError(w, err, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		writePatientError(w, err, "Failed to create patient")
		return
	}

	response.Created(w, fmt.Sprintf("/api/v1/patients/%d", patient.ID), "Patient created successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "Invalid patient ID")
	if !ok {
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.patientUsecase.UpdatePatient(r.Context(), patientID, &req); err != nil {
		writePatientError(w, err, "Failed to update patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", nil)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "Invalid patient ID")
	if !ok {
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), patientID); err != nil {
		writePatientError(w, err, "Failed to delete patient")
		return
	}

	response.NoContent(w)
}
