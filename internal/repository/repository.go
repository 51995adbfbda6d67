// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Repository is the generic CRUD accessor every entity gets.
type Repository[T any] interface {
	Save(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int64, error)
	WithTx(tx *gorm.DB) Repository[T]
}

type gormRepository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

func (r *gormRepository[T]) WithTx(tx *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: tx}
}

// Save inserts entities with a zero primary key and fully updates the others.
func (r *gormRepository[T]) Save(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("failed to save %T: %w", entity, err)
	}
	return nil
}

func (r *gormRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &entity, nil
}

func (r *gormRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %T: %w", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository[T]) List(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Order("id").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return entities, nil
}

func (r *gormRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	var entity T
	if err := r.db.WithContext(ctx).Model(&entity).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("database error: %w", err)
	}
	return count, nil
}
