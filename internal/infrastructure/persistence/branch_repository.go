package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/franchises/backend/internal/domain/franchise"
	"github.com/franchises/backend/internal/domain/shared"
)

// GormBranchRepository implements BranchRepository using GORM
type GormBranchRepository struct {
	db *gorm.DB
}

// NewGormBranchRepository creates a new GormBranchRepository
func NewGormBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

// FindByID finds a branch by its ID
func (r *GormBranchRepository) FindByID(ctx context.Context, id string) (*franchise.Branch, error) {
	var b franchise.Branch
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Save persists a branch, creating it on first save and applying an
// optimistic update afterwards
func (r *GormBranchRepository) Save(ctx context.Context, b *franchise.Branch) error {
	return saveDocument(ctx, r.db, b, &b.BaseDocument)
}
