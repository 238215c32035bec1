package converter

import (
	"hospital-api/internal/delivery/dto"
	"hospital-api/internal/domain/entity"
)

func ListQueryToEntity(req *dto.ListQueryRequest) entity.ListQuery {
	return entity.ListQuery{
		Page:     req.Page,
		PageSize: req.PageSize,
		SortBy:   req.SortBy,
	}
}
