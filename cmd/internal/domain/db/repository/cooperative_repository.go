package repository

import (
	"context"
	"strings"

	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/paging"

	"gorm.io/gorm"
)

func cooperativeScope(f entity.CooperativeFilter) scope {
	return func(db *gorm.DB) *gorm.DB {
		if f.Name != "" {
			db = nameContains("name", f.Name)(db)
		}

		if f.City != "" {
			db = db.Where("LOWER(city) = ?", strings.ToLower(f.City))
		}

		if f.State != "" {
			db = db.Where("LOWER(state) = ?", strings.ToLower(f.State))
		}

		if f.Active != nil {
			db = db.Where("active = ?", *f.Active)
		}
		return db
	}
}

type DefaultCooperativeRepository struct {
	gormStore[entity.Cooperative]
}

func NewCooperativeRepository(db *gorm.DB) *DefaultCooperativeRepository {
	return &DefaultCooperativeRepository{gormStore[entity.Cooperative]{db: db}}
}

func (r *DefaultCooperativeRepository) FindByTaxCode(ctx context.Context, taxCode string) (*entity.Cooperative, error) {
	return r.findOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("tax_code = ?", taxCode)
	})
}

func (r *DefaultCooperativeRepository) FindMatching(ctx context.Context, filter entity.CooperativeFilter) ([]*entity.Cooperative, error) {
	return r.findAll(ctx, cooperativeScope(filter))
}

func (r *DefaultCooperativeRepository) FindPageMatching(ctx context.Context, filter entity.CooperativeFilter, q paging.Query) ([]*entity.Cooperative, int64, error) {
	return r.findPage(ctx, q, cooperativeScope(filter))
}
