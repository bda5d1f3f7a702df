package repository

import (
	"context"
	"errors"

	"fleetdesk/cmd/internal/utils"
	"fleetdesk/cmd/internal/utils/paging"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type scope = func(*gorm.DB) *gorm.DB

// gormStore holds the storage operations shared by every record kind.
type gormStore[T any] struct {
	db *gorm.DB
}

func (s gormStore[T]) FindByID(ctx context.Context, id int) (*T, error) {
	var record T
	err := s.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s gormStore[T]) FindAll(ctx context.Context) ([]*T, error) {
	return s.findAll(ctx)
}

func (s gormStore[T]) FindAllInIDs(ctx context.Context, ids []int) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}

	return s.findAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN ?", ids)
	})
}

func (s gormStore[T]) FindPage(ctx context.Context, q paging.Query) ([]*T, int64, error) {
	return s.findPage(ctx, q)
}

func (s gormStore[T]) ExistsByID(ctx context.Context, id int) (bool, error) {
	return s.exists(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

func (s gormStore[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

// Save inserts records without an ID and updates the rest, as one statement.
func (s gormStore[T]) Save(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Save(record).Error
}

func (s gormStore[T]) DeleteByID(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Delete(new(T), id).Error
}

func (s gormStore[T]) findOne(ctx context.Context, where scope) (*T, error) {
	var record T
	err := s.db.WithContext(ctx).
		Scopes(where).
		First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s gormStore[T]) exists(ctx context.Context, where scope) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(new(T)).
		Scopes(where).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s gormStore[T]) findAll(ctx context.Context, scopes ...scope) ([]*T, error) {
	var records []*T
	err := s.db.WithContext(ctx).
		Scopes(scopes...).
		Order("id").
		Find(&records).Error

	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s gormStore[T]) findPage(ctx context.Context, q paging.Query, scopes ...scope) ([]*T, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(new(T)).
		Scopes(scopes...).
		Count(&total).Error

	if err != nil {
		return nil, 0, err
	}

	if q.Empty {
		return []*T{}, total, nil
	}

	tx := s.db.WithContext(ctx).
		Scopes(scopes...).
		Order(clause.OrderByColumn{Column: clause.Column{Name: q.Column}, Desc: q.Desc})

	// Ties on the sort column still come back in a stable order
	if q.Column != "id" {
		tx = tx.Order("id")
	}

	var records []*T
	err = tx.Offset(q.Offset).
		Limit(q.Limit).
		Find(&records).Error

	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func nameContains(column, name string) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", utils.ContainsPattern(name))
	}
}
