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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// writeDoctorError maps usecase errors of the doctor editor to responses.
func writeDoctorError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrRoomNotFound):
		response.BadRequest(w, "Room doesn't exist.")
	case errors.Is(err, usecase.ErrSpecializationNotFound):
		response.BadRequest(w, "Specialization doesn't exist.")
	case errors.Is(err, usecase.ErrSectionNotFound):
		response.BadRequest(w, "Section doesn't exist.")
	case errors.Is(err, usecase.ErrIDMismatch):
		response.BadRequest(w, "Doctor ID in path does not match request body")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	query, ok := decodeListQuery(w, r, h.validator)
	if !ok {
		return
	}

	doctors, total, err := h.doctorUsecase.GetDoctors(r.Context(), converter.ListQueryToEntity(query))
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", doctors,
		response.NewMeta(query.Page, query.PageSize, total))
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "Invalid doctor ID")
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		writeDoctorError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		writeDoctorError(w, err, "Failed to create doctor")
		return
	}

	response.Created(w, fmt.Sprintf("/api/v1/doctors/%d", doctor.ID), "Doctor created successfully", doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "Invalid doctor ID")
	if !ok {
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req); err != nil {
		writeDoctorError(w, err, "Failed to update doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", nil)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "Invalid doctor ID")
	if !ok {
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), doctorID); err != nil {
		writeDoctorError(w, err, "Failed to delete doctor")
		return
	}

	response.NoContent(w)
}
