package repository

import (
	"errors"

	"hospital-api/internal/domain/entity"
	domainRepo "hospital-api/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

// FindPage lists audit entries newest first. The sort token is ignored.
func (r *auditLogRepository) FindPage(db *gorm.DB, query entity.ListQuery) ([]entity.AuditLog, int64, error) {
	var total int64
	if err := db.Model(&entity.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if query.PastEnd(total) {
		return []entity.AuditLog{}, total, nil
	}

	var logs []entity.AuditLog
	err := db.Order("created_at DESC, id DESC").
		Limit(query.PageSize).
		Offset(query.Offset()).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
