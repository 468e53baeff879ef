package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/franchises/backend/internal/domain/franchise"
	"github.com/franchises/backend/internal/domain/shared"
)

// GormFranchiseRepository implements FranchiseRepository using GORM
type GormFranchiseRepository struct {
	db *gorm.DB
}

// NewGormFranchiseRepository creates a new GormFranchiseRepository
func NewGormFranchiseRepository(db *gorm.DB) *GormFranchiseRepository {
	return &GormFranchiseRepository{db: db}
}

// FindByID finds a franchise by its ID
func (r *GormFranchiseRepository) FindByID(ctx context.Context, id string) (*franchise.Franchise, error) {
	var f franchise.Franchise
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByName finds a franchise by its exact name
func (r *GormFranchiseRepository) FindByName(ctx context.Context, name string) (*franchise.Franchise, error) {
	var f franchise.Franchise
	if err := r.db.WithContext(ctx).First(&f, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ExistsByName reports whether a franchise with the exact name exists
func (r *GormFranchiseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&franchise.Franchise{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists a franchise, creating it on first save and applying an
// optimistic update afterwards
func (r *GormFranchiseRepository) Save(ctx context.Context, f *franchise.Franchise) error {
	return saveDocument(ctx, r.db, f, &f.BaseDocument)
}
