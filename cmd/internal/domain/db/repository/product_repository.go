package repository

import (
	"context"

	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/paging"

	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	gormStore[entity.Product]
}

func NewProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{gormStore[entity.Product]{db: db}}
}

func (r *DefaultProductRepository) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	return r.findAll(ctx, nameContains("name", name))
}

func (r *DefaultProductRepository) SearchPageByName(ctx context.Context, name string, q paging.Query) ([]*entity.Product, int64, error) {
	return r.findPage(ctx, q, nameContains("name", name))
}
