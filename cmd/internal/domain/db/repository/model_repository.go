package repository

import (
	"context"

	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/paging"

	"gorm.io/gorm"
)

type DefaultModelRepository struct {
	gormStore[entity.Model]
}

func NewModelRepository(db *gorm.DB) *DefaultModelRepository {
	return &DefaultModelRepository{gormStore[entity.Model]{db: db}}
}

func (r *DefaultModelRepository) FindPageByCategory(ctx context.Context, category entity.ModelCategory, q paging.Query) ([]*entity.Model, int64, error) {
	return r.findPage(ctx, q, func(db *gorm.DB) *gorm.DB {
		return db.Where("category = ?", category)
	})
}
