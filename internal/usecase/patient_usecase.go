package usecase

import (
	"context"
	"strconv"
	"time"

	"hospital-api/internal/converter"
	"hospital-api/internal/delivery/dto"
	"hospital-api/internal/domain/entity"
	"hospital-api/internal/domain/repository"
	"hospital-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	GetPatients(ctx context.Context, query entity.ListQuery) ([]dto.PatientListItem, int64, error)
	GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) error
	DeletePatient(ctx context.Context, id int) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	sectionRepo  repository.SectionRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	sectionRepo repository.SectionRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		sectionRepo:  sectionRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) resolveSection(tx *gorm.DB, sectionID int) (*entity.Section, error) {
	section, err := u.sectionRepo.FindByID(tx, sectionID)
	if err != nil {
		u.log.Warnf("Failed to find section: %+v", err)
		return nil, err
	}
	if section == nil {
		return nil, ErrSectionNotFound
	}
	return section, nil
}

func mapPatientWriteError(err error) error {
	if isForeignKeyError(err, "section") {
		return ErrSectionNotFound
	}
	return err
}

func (u *patientUsecase) GetPatients(ctx context.Context, query entity.ListQuery) ([]dto.PatientListItem, int64, error) {
	rows, total, err := u.patientRepo.FindPage(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to find patients page: %+v", err)
		return nil, 0, err
	}

	return converter.PatientRowsToListItems(rows), total, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	row, err := u.patientRepo.FindRowByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientRowToResponse(row), nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := time.Parse(converter.DateLayout, req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	section, err := u.resolveSection(tx, req.SectionID)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		Address:    req.Address,
		BirthDate:  birthDate,
		Gender:     req.Gender,
		SectionID:  req.SectionID,
	}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, mapPatientWriteError(err)
	}

	_ = u.auditService.LogCreate(ctx, tx, entity.AuditActionPatientCreate, "patient", strconv.Itoa(patient.ID), converter.PatientToAuditValue(patient))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.PatientResponse{
		ID:            patient.ID,
		LastName:      patient.LastName,
		FirstName:     patient.FirstName,
		MiddleName:    patient.MiddleName,
		Address:       patient.Address,
		BirthDate:     patient.BirthDate.Format(converter.DateLayout),
		Gender:        patient.Gender,
		SectionID:     patient.SectionID,
		SectionNumber: section.Number,
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) error {
	if req.ID != id {
		return ErrIDMismatch
	}

	birthDate, err := time.Parse(converter.DateLayout, req.BirthDate)
	if err != nil {
		return ErrInvalidBirthDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.resolveSection(tx, req.SectionID); err != nil {
		return err
	}

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	oldValue := converter.PatientToAuditValue(patient)

	patient.LastName = req.LastName
	patient.FirstName = req.FirstName
	patient.MiddleName = req.MiddleName
	patient.Address = req.Address
	patient.BirthDate = birthDate
	patient.Gender = req.Gender
	patient.SectionID = req.SectionID

	affected, err := u.patientRepo.Update(tx, patient)
	if err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return mapPatientWriteError(err)
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	_ = u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientUpdate, "patient", strconv.Itoa(id), oldValue, converter.PatientToAuditValue(patient))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	affected, err := u.patientRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	_ = u.auditService.LogDelete(ctx, tx, entity.AuditActionPatientDelete, "patient", strconv.Itoa(id), converter.PatientToAuditValue(patient))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
