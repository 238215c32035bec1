package converter

import (
	"hospital-api/internal/delivery/dto"
	"hospital-api/internal/domain/entity"
)

func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}
	return &dto.RoomResponse{ID: room.ID, Number: room.Number}
}

func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = dto.RoomResponse{ID: room.ID, Number: room.Number}
	}
	return responses
}

func SpecializationToResponse(specialization *entity.Specialization) *dto.SpecializationResponse {
	if specialization == nil {
		return nil
	}
	return &dto.SpecializationResponse{ID: specialization.ID, Name: specialization.Name}
}

func SpecializationsToResponses(specializations []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, len(specializations))
	for i, specialization := range specializations {
		responses[i] = dto.SpecializationResponse{ID: specialization.ID, Name: specialization.Name}
	}
	return responses
}

func SectionToResponse(section *entity.Section) *dto.SectionResponse {
	if section == nil {
		return nil
	}
	return &dto.SectionResponse{ID: section.ID, Number: section.Number}
}

func SectionsToResponses(sections []entity.Section) []dto.SectionResponse {
	responses := make([]dto.SectionResponse, len(sections))
	for i, section := range sections {
		responses[i] = dto.SectionResponse{ID: section.ID, Number: section.Number}
	}
	return responses
}
