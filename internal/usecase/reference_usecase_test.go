package usecase

import (
	"context"
	"testing"

	"hospital-api/internal/delivery/dto"
	"hospital-api/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReferenceFixture(t *testing.T) (ReferenceUsecase, *mockRoomRepository, *mockSpecializationRepository, *mockSectionRepository) {
	db, _ := newGormDB(t)
	rooms := new(mockRoomRepository)
	specializations := new(mockSpecializationRepository)
	sections := new(mockSectionRepository)
	return NewReferenceUsecase(db, newTestLogger(), rooms, specializations, sections), rooms, specializations, sections
}

func TestReferenceUsecase_CreateRoom(t *testing.T) {
	uc, rooms, _, _ := newReferenceFixture(t)
	rooms.On("Create", mock.Anything, &entity.Room{Number: 204}).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Room).ID = 6 }).
		Return(nil)

	resp, err := uc.CreateRoom(context.Background(), &dto.CreateRoomRequest{Number: 204})

	require.NoError(t, err)
	assert.Equal(t, &dto.RoomResponse{ID: 6, Number: 204}, resp)
	rooms.AssertExpectations(t)
}

func TestReferenceUsecase_CreateRoomDuplicate(t *testing.T) {
	uc, rooms, _, _ := newReferenceFixture(t)
	rooms.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "rooms_number_key"})

	_, err := uc.CreateRoom(context.Background(), &dto.CreateRoomRequest{Number: 204})

	assert.ErrorIs(t, err, ErrRoomExists)
}

func TestReferenceUsecase_CreateSpecializationDuplicate(t *testing.T) {
	uc, _, specializations, _ := newReferenceFixture(t)
	specializations.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "specializations_name_key"})

	_, err := uc.CreateSpecialization(context.Background(), &dto.CreateSpecializationRequest{Name: "Oncology"})

	assert.ErrorIs(t, err, ErrSpecializationExists)
}

func TestReferenceUsecase_GetSectionNotFound(t *testing.T) {
	uc, _, _, sections := newReferenceFixture(t)
	sections.On("FindByID", mock.Anything, 12).Return(nil, nil)

	resp, err := uc.GetSection(context.Background(), 12)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestReferenceUsecase_GetSpecializations(t *testing.T) {
	uc, _, specializations, _ := newReferenceFixture(t)
	specializations.On("FindAll", mock.Anything).Return([]entity.Specialization{
		{ID: 1, Name: "Cardiology"},
		{ID: 2, Name: "Neurology"},
	}, nil)

	resp, err := uc.GetSpecializations(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dto.SpecializationResponse{
		{ID: 1, Name: "Cardiology"},
		{ID: 2, Name: "Neurology"},
	}, resp)
}

func TestReferenceUsecase_GetRoomsEmpty(t *testing.T) {
	uc, rooms, _, _ := newReferenceFixture(t)
	rooms.On("FindAll", mock.Anything).Return([]entity.Room{}, nil)

	resp, err := uc.GetRooms(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}
