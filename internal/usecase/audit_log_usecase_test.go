package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditLogUsecase_GetAuditLogs(t *testing.T) {
	db, _ := newGormDB(t)
	repo := new(mockAuditLogRepository)
	uc := NewAuditLogUsecase(db, newTestLogger(), repo)

	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := entity.ListQuery{Page: 1, PageSize: 10}
	repo.On("FindPage", mock.Anything, query).Return([]entity.AuditLog{
		{ID: 4, Action: entity.AuditActionDoctorDelete, Metadata: entity.JSON{"entity_id": "8"}, CreatedAt: createdAt},
	}, int64(4), nil)

	logs, total, err := uc.GetAuditLogs(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionDoctorDelete, logs[0].Action)
	assert.Equal(t, "8", logs[0].Metadata["entity_id"])
	assert.Equal(t, createdAt, logs[0].CreatedAt)
}

func TestAuditLogUsecase_GetAuditLogNotFound(t *testing.T) {
	db, _ := newGormDB(t)
	repo := new(mockAuditLogRepository)
	uc := NewAuditLogUsecase(db, newTestLogger(), repo)

	repo.On("FindByID", mock.Anything, int64(40)).Return(nil, nil)

	_, err := uc.GetAuditLog(context.Background(), 40)

	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}
