package usecase

import (
	"context"
	"testing"

	"hospital-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, sqlMock
}

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

func intPtr(v int) *int {
	return &v
}

type mockRoomRepository struct {
	mock.Mock
}

func (m *mockRoomRepository) Create(db *gorm.DB, room *entity.Room) error {
	return m.Called(db, room).Error(0)
}

func (m *mockRoomRepository) FindByID(db *gorm.DB, id int) (*entity.Room, error) {
	args := m.Called(db, id)
	room, _ := args.Get(0).(*entity.Room)
	return room, args.Error(1)
}

func (m *mockRoomRepository) FindAll(db *gorm.DB) ([]entity.Room, error) {
	args := m.Called(db)
	rooms, _ := args.Get(0).([]entity.Room)
	return rooms, args.Error(1)
}

type mockSpecializationRepository struct {
	mock.Mock
}

func (m *mockSpecializationRepository) Create(db *gorm.DB, specialization *entity.Specialization) error {
	return m.Called(db, specialization).Error(0)
}

func (m *mockSpecializationRepository) FindByID(db *gorm.DB, id int) (*entity.Specialization, error) {
	args := m.Called(db, id)
	specialization, _ := args.Get(0).(*entity.Specialization)
	return specialization, args.Error(1)
}

func (m *mockSpecializationRepository) FindAll(db *gorm.DB) ([]entity.Specialization, error) {
	args := m.Called(db)
	specializations, _ := args.Get(0).([]entity.Specialization)
	return specializations, args.Error(1)
}

type mockSectionRepository struct {
	mock.Mock
}

func (m *mockSectionRepository) Create(db *gorm.DB, section *entity.Section) error {
	return m.Called(db, section).Error(0)
}

func (m *mockSectionRepository) FindByID(db *gorm.DB, id int) (*entity.Section, error) {
	args := m.Called(db, id)
	section, _ := args.Get(0).(*entity.Section)
	return section, args.Error(1)
}

func (m *mockSectionRepository) FindAll(db *gorm.DB) ([]entity.Section, error) {
	args := m.Called(db)
	sections, _ := args.Get(0).([]entity.Section)
	return sections, args.Error(1)
}

type mockDoctorRepository struct {
	mock.Mock
}

func (m *mockDoctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return m.Called(db, doctor).Error(0)
}

func (m *mockDoctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	args := m.Called(db, id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *mockDoctorRepository) FindRowByID(db *gorm.DB, id int) (*entity.DoctorRow, error) {
	args := m.Called(db, id)
	row, _ := args.Get(0).(*entity.DoctorRow)
	return row, args.Error(1)
}

func (m *mockDoctorRepository) FindPage(db *gorm.DB, query entity.ListQuery) ([]entity.DoctorRow, int64, error) {
	args := m.Called(db, query)
	rows, _ := args.Get(0).([]entity.DoctorRow)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *mockDoctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) (int64, error) {
	args := m.Called(db, doctor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDoctorRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return m.Called(db, patient).Error(0)
}

func (m *mockPatientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	args := m.Called(db, id)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientRepository) FindRowByID(db *gorm.DB, id int) (*entity.PatientRow, error) {
	args := m.Called(db, id)
	row, _ := args.Get(0).(*entity.PatientRow)
	return row, args.Error(1)
}

func (m *mockPatientRepository) FindPage(db *gorm.DB, query entity.ListQuery) ([]entity.PatientRow, int64, error) {
	args := m.Called(db, query)
	rows, _ := args.Get(0).([]entity.PatientRow)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *mockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) (int64, error) {
	args := m.Called(db, patient)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPatientRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return m.Called(db, log).Error(0)
}

func (m *mockAuditLogRepository) FindPage(db *gorm.DB, query entity.ListQuery) ([]entity.AuditLog, int64, error) {
	args := m.Called(db, query)
	logs, _ := args.Get(0).([]entity.AuditLog)
	return logs, args.Get(1).(int64), args.Error(2)
}

func (m *mockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(db, id)
	log, _ := args.Get(0).(*entity.AuditLog)
	return log, args.Error(1)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID string, newValue interface{}) error {
	return m.Called(ctx, tx, action, entityName, entityID, newValue).Error(0)
}

func (m *mockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return m.Called(ctx, tx, action, entityName, entityID, oldValue, newValue).Error(0)
}

func (m *mockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID string, oldValue interface{}) error {
	return m.Called(ctx, tx, action, entityName, entityID, oldValue).Error(0)
}
