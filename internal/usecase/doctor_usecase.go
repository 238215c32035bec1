package usecase

import (
	"context"
	"strconv"

	"hospital-api/internal/converter"
	"hospital-api/internal/delivery/dto"
	"hospital-api/internal/domain/entity"
	"hospital-api/internal/domain/repository"
	"hospital-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorUsecase interface {
	GetDoctors(ctx context.Context, query entity.ListQuery) ([]dto.DoctorListItem, int64, error)
	GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) error
	DeleteDoctor(ctx context.Context, id int) error
}

type doctorUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorRepo         repository.DoctorRepository
	roomRepo           repository.RoomRepository
	specializationRepo repository.SpecializationRepository
	sectionRepo        repository.SectionRepository
	auditService       service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	roomRepo repository.RoomRepository,
	specializationRepo repository.SpecializationRepository,
	sectionRepo repository.SectionRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:                 db,
		log:                log,
		doctorRepo:         doctorRepo,
		roomRepo:           roomRepo,
		specializationRepo: specializationRepo,
		sectionRepo:        sectionRepo,
		auditService:       auditService,
	}
}

// doctorReferences holds the records a doctor points at, once resolved.
type doctorReferences struct {
	room           *entity.Room
	specialization *entity.Specialization
	section        *entity.Section
}

// resolveReferences looks up room, specialization and section in that order
// and stops at the first one that does not exist. A nil sectionID is valid.
func (u *doctorUsecase) resolveReferences(tx *gorm.DB, roomID, specializationID int, sectionID *int) (*doctorReferences, error) {
	room, err := u.roomRepo.FindByID(tx, roomID)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	specialization, err := u.specializationRepo.FindByID(tx, specializationID)
	if err != nil {
		u.log.Warnf("Failed to find specialization: %+v", err)
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}

	refs := &doctorReferences{room: room, specialization: specialization}
	if sectionID == nil {
		return refs, nil
	}

	section, err := u.sectionRepo.FindByID(tx, *sectionID)
	if err != nil {
		u.log.Warnf("Failed to find section: %+v", err)
		return nil, err
	}
	if section == nil {
		return nil, ErrSectionNotFound
	}
	refs.section = section

	return refs, nil
}

// mapDoctorWriteError turns a foreign key violation raised by a concurrent
// delete of a reference into the matching reference error.
func mapDoctorWriteError(err error) error {
	switch {
	case isForeignKeyError(err, "room"):
		return ErrRoomNotFound
	case isForeignKeyError(err, "specialization"):
		return ErrSpecializationNotFound
	case isForeignKeyError(err, "section"):
		return ErrSectionNotFound
	default:
		return err
	}
}

func doctorRow(doctor *entity.Doctor, refs *doctorReferences) *entity.DoctorRow {
	row := &entity.DoctorRow{
		ID:                 doctor.ID,
		FullName:           doctor.FullName,
		RoomID:             doctor.RoomID,
		RoomNumber:         refs.room.Number,
		SpecializationID:   doctor.SpecializationID,
		SpecializationName: refs.specialization.Name,
		SectionID:          doctor.SectionID,
	}
	if refs.section != nil {
		row.SectionNumber = &refs.section.Number
	}
	return row
}

func (u *doctorUsecase) GetDoctors(ctx context.Context, query entity.ListQuery) ([]dto.DoctorListItem, int64, error) {
	rows, total, err := u.doctorRepo.FindPage(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to find doctors page: %+v", err)
		return nil, 0, err
	}

	return converter.DoctorRowsToListItems(rows), total, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	row, err := u.doctorRepo.FindRowByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorRowToResponse(row), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	refs, err := u.resolveReferences(tx, req.RoomID, req.SpecializationID, req.SectionID)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		FullName:         req.FullName,
		RoomID:           req.RoomID,
		SpecializationID: req.SpecializationID,
		SectionID:        req.SectionID,
	}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, mapDoctorWriteError(err)
	}

	// Audit failures are rolled back to their savepoint and do not fail the create.
	_ = u.auditService.LogCreate(ctx, tx, entity.AuditActionDoctorCreate, "doctor", strconv.Itoa(doctor.ID), converter.DoctorToAuditValue(doctor))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorRowToResponse(doctorRow(doctor, refs)), nil
}

// UpdateDoctor replaces every editable field of the doctor. The id check runs
// before any database access.
func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) error {
	if req.ID != id {
		return ErrIDMismatch
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.resolveReferences(tx, req.RoomID, req.SpecializationID, req.SectionID); err != nil {
		return err
	}

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	oldValue := converter.DoctorToAuditValue(doctor)

	doctor.FullName = req.FullName
	doctor.RoomID = req.RoomID
	doctor.SpecializationID = req.SpecializationID
	doctor.SectionID = req.SectionID

	affected, err := u.doctorRepo.Update(tx, doctor)
	if err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return mapDoctorWriteError(err)
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	_ = u.auditService.LogUpdate(ctx, tx, entity.AuditActionDoctorUpdate, "doctor", strconv.Itoa(id), oldValue, converter.DoctorToAuditValue(doctor))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	affected, err := u.doctorRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	_ = u.auditService.LogDelete(ctx, tx, entity.AuditActionDoctorDelete, "doctor", strconv.Itoa(id), converter.DoctorToAuditValue(doctor))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
