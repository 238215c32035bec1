package usecase

import (
	"context"

	"hospital-api/internal/converter"
	"hospital-api/internal/delivery/dto"
	"hospital-api/internal/domain/entity"
	"hospital-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReferenceUsecase manages the lookup tables doctors and patients point at.
type ReferenceUsecase interface {
	GetRooms(ctx context.Context) ([]dto.RoomResponse, error)
	GetRoom(ctx context.Context, id int) (*dto.RoomResponse, error)
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)

	GetSpecializations(ctx context.Context) ([]dto.SpecializationResponse, error)
	GetSpecialization(ctx context.Context, id int) (*dto.SpecializationResponse, error)
	CreateSpecialization(ctx context.Context, req *dto.CreateSpecializationRequest) (*dto.SpecializationResponse, error)

	GetSections(ctx context.Context) ([]dto.SectionResponse, error)
	GetSection(ctx context.Context, id int) (*dto.SectionResponse, error)
	CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*dto.SectionResponse, error)
}

type referenceUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	roomRepo           repository.RoomRepository
	specializationRepo repository.SpecializationRepository
	sectionRepo        repository.SectionRepository
}

func NewReferenceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	specializationRepo repository.SpecializationRepository,
	sectionRepo repository.SectionRepository,
) ReferenceUsecase {
	return &referenceUsecase{
		db:                 db,
		log:                log,
		roomRepo:           roomRepo,
		specializationRepo: specializationRepo,
		sectionRepo:        sectionRepo,
	}
}

func (u *referenceUsecase) GetRooms(ctx context.Context) ([]dto.RoomResponse, error) {
	rooms, err := u.roomRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all rooms: %+v", err)
		return nil, err
	}
	return converter.RoomsToResponses(rooms), nil
}

func (u *referenceUsecase) GetRoom(ctx context.Context, id int) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return converter.RoomToResponse(room), nil
}

func (u *referenceUsecase) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	room := &entity.Room{Number: req.Number}
	if err := u.roomRepo.Create(u.db.WithContext(ctx), room); err != nil {
		u.log.Warnf("Failed to create room: %+v", err)
		if isDuplicateKeyError(err, "rooms") {
			return nil, ErrRoomExists
		}
		return nil, err
	}
	return converter.RoomToResponse(room), nil
}

func (u *referenceUsecase) GetSpecializations(ctx context.Context) ([]dto.SpecializationResponse, error) {
	specializations, err := u.specializationRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all specializations: %+v", err)
		return nil, err
	}
	return converter.SpecializationsToResponses(specializations), nil
}

func (u *referenceUsecase) GetSpecialization(ctx context.Context, id int) (*dto.SpecializationResponse, error) {
	specialization, err := u.specializationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find specialization: %+v", err)
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *referenceUsecase) CreateSpecialization(ctx context.Context, req *dto.CreateSpecializationRequest) (*dto.SpecializationResponse, error) {
	specialization := &entity.Specialization{Name: req.Name}
	if err := u.specializationRepo.Create(u.db.WithContext(ctx), specialization); err != nil {
		u.log.Warnf("Failed to create specialization: %+v", err)
		if isDuplicateKeyError(err, "specializations") {
			return nil, ErrSpecializationExists
		}
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *referenceUsecase) GetSections(ctx context.Context) ([]dto.SectionResponse, error) {
	sections, err := u.sectionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all sections: %+v", err)
		return nil, err
	}
	return converter.SectionsToResponses(sections), nil
}

func (u *referenceUsecase) GetSection(ctx context.Context, id int) (*dto.SectionResponse, error) {
	section, err := u.sectionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find section: %+v", err)
		return nil, err
	}
	if section == nil {
		return nil, ErrSectionNotFound
	}
	return converter.SectionToResponse(section), nil
}

func (u *referenceUsecase) CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	section := &entity.Section{Number: req.Number}
	if err := u.sectionRepo.Create(u.db.WithContext(ctx), section); err != nil {
		u.log.Warnf("Failed to create section: %+v", err)
		if isDuplicateKeyError(err, "sections") {
			return nil, ErrSectionExists
		}
		return nil, err
	}
	return converter.SectionToResponse(section), nil
}
