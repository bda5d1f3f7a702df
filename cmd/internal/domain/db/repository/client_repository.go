package repository

import (
	"context"

	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/paging"

	"gorm.io/gorm"
)

type DefaultClientRepository struct {
	gormStore[entity.Client]
}

func NewClientRepository(db *gorm.DB) *DefaultClientRepository {
	return &DefaultClientRepository{gormStore[entity.Client]{db: db}}
}

func (r *DefaultClientRepository) FindByTaxCode(ctx context.Context, taxCode string) (*entity.Client, error) {
	return r.findOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("tax_code = ?", taxCode)
	})
}

func (r *DefaultClientRepository) FindByUUID(ctx context.Context, uuid string) (*entity.Client, error) {
	return r.findOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("uuid = ?", uuid)
	})
}

func (r *DefaultClientRepository) FindPageByCooperative(ctx context.Context, cooperativeID int, q paging.Query) ([]*entity.Client, int64, error) {
	return r.findPage(ctx, q, func(db *gorm.DB) *gorm.DB {
		return db.Where("cooperative_id = ?", cooperativeID)
	})
}

func (r *DefaultClientRepository) ExistsByCooperative(ctx context.Context, cooperativeID int) (bool, error) {
	return r.exists(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("cooperative_id = ?", cooperativeID)
	})
}
