package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/franchises/backend/internal/domain/franchise"
	"github.com/franchises/backend/internal/domain/shared"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id string) (*franchise.Product, error) {
	var p franchise.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByNameIgnoreCase finds a product by case-folded name. Product identity
// is by name regardless of casing.
func (r *GormProductRepository) FindByNameIgnoreCase(ctx context.Context, name string) (*franchise.Product, error) {
	var p franchise.Product
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save persists a product, creating it on first save and applying an
// optimistic update afterwards
func (r *GormProductRepository) Save(ctx context.Context, p *franchise.Product) error {
	return saveDocument(ctx, r.db, p, &p.BaseDocument)
}
