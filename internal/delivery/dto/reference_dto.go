package dto

// Request DTOs

type CreateRoomRequest struct {
	Number int `json:"number" validate:"required,gte=1"`
}

type CreateSpecializationRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

type CreateSectionRequest struct {
	Number int `json:"number" validate:"required,gte=1"`
}

// Response DTOs

type RoomResponse struct {
	ID     int `json:"id"`
	Number int `json:"number"`
}

type SpecializationResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SectionResponse struct {
	ID     int `json:"id"`
	Number int `json:"number"`
}
