package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"hospital-api/internal/delivery/dto"
	"hospital-api/internal/usecase"
	"hospital-api/pkg/response"
	"hospital-api/pkg/validator"
)

// ReferenceHandler serves rooms, specializations and sections.
type ReferenceHandler struct {
	referenceUsecase usecase.ReferenceUsecase
	validator        *validator.CustomValidator
}

func NewReferenceHandler(referenceUsecase usecase.ReferenceUsecase, validator *validator.CustomValidator) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUsecase: referenceUsecase,
		validator:        validator,
	}
}

func (h *ReferenceHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

// Rooms

func (h *ReferenceHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.referenceUsecase.GetRooms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get rooms")
		return
	}

	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *ReferenceHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(w, r, "Invalid room ID")
	if !ok {
		return
	}

	room, err := h.referenceUsecase.GetRoom(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, usecase.ErrRoomNotFound) {
			response.NotFound(w, "Room not found")
			return
		}
		response.InternalServerError(w, "Failed to get room")
		return
	}

	response.Success(w, http.StatusOK, "Room retrieved successfully", room)
}

func (h *ReferenceHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomRequest
	if !h.decode(w, r, &req) {
		return
	}

	room, err := h.referenceUsecase.CreateRoom(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrRoomExists) {
			response.Conflict(w, "Room number already exists")
			return
		}
		response.InternalServerError(w, "Failed to create room")
		return
	}

	response.Created(w, fmt.Sprintf("/api/v1/rooms/%d", room.ID), "Room created successfully", room)
}

// Specializations

func (h *ReferenceHandler) GetSpecializations(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.referenceUsecase.GetSpecializations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}

func (h *ReferenceHandler) GetSpecialization(w http.ResponseWriter, r *http.Request) {
	specializationID, ok := pathID(w, r, "Invalid specialization ID")
	if !ok {
		return
	}

	specialization, err := h.referenceUsecase.GetSpecialization(r.Context(), specializationID)
	if err != nil {
		if errors.Is(err, usecase.ErrSpecializationNotFound) {
			response.NotFound(w, "Specialization not found")
			return
		}
		response.InternalServerError(w, "Failed to get specialization")
		return
	}

	response.Success(w, http.StatusOK, "Specialization retrieved successfully", specialization)
}

func (h *ReferenceHandler) CreateSpecialization(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSpecializationRequest
	if !h.decode(w, r, &req) {
		return
	}

	specialization, err := h.referenceUsecase.CreateSpecialization(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrSpecializationExists) {
			response.Conflict(w, "Specialization name already exists")
			return
		}
		response.InternalServerError(w, "Failed to create specialization")
		return
	}

	response.Created(w, fmt.Sprintf("/api/v1/specializations/%d", specialization.ID), "Specialization created successfully", specialization)
}

// Sections

func (h *ReferenceHandler) GetSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.referenceUsecase.GetSections(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get sections")
		return
	}

	response.Success(w, http.StatusOK, "Sections retrieved successfully", sections)
}

func (h *ReferenceHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := pathID(w, r, "Invalid section ID")
	if !ok {
		return
	}

	section, err := h.referenceUsecase.GetSection(r.Context(), sectionID)
	if err != nil {
		if errors.Is(err, usecase.ErrSectionNotFound) {
			response.NotFound(w, "Section not found")
			return
		}
		response.InternalServerError(w, "Failed to get section")
		return
	}

	response.Success(w, http.StatusOK, "Section retrieved successfully", section)
}

func (h *ReferenceHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSectionRequest
	if !h.decode(w, r, &req) {
		return
	}

	section, err := h.referenceUsecase.CreateSection(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrSectionExists) {
			response.Conflict(w, "Section number already exists")
			return
		}
		response.InternalServerError(w, "Failed to create section")
		return
	}

	response.Created(w, fmt.Sprintf("/api/v1/sections/%d", section.ID), "Section created successfully", section)
}
