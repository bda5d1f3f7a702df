package repository

import (
	"context"

	"fleetdesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultEquipmentRepository struct {
	gormStore[entity.Equipment]
}

func NewEquipmentRepository(db *gorm.DB) *DefaultEquipmentRepository {
	return &DefaultEquipmentRepository{gormStore[entity.Equipment]{db: db}}
}

// ExistsByModel reports whether any equipment still points at the model.
func (r *DefaultEquipmentRepository) ExistsByModel(ctx context.Context, modelID int) (bool, error) {
	return r.exists(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("model_id = ?", modelID)
	})
}
