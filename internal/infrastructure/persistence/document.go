package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franchises/backend/internal/domain/shared"
)

// saveDocument inserts new documents and applies optimistic updates to
// existing ones. An update only lands while the stored version still matches
// the loaded one; a stale save reports shared.ErrVersionConflict so callers
// can re-read and retry.
func saveDocument(ctx context.Context, db *gorm.DB, doc any, base *shared.BaseDocument) error {
	if base.ID == "" {
		base.ID = uuid.NewString()
		base.Version = 1
		if err := db.WithContext(ctx).Create(doc).Error; err != nil {
			base.ID = ""
			return translateError(err)
		}
		return nil
	}

	prev := base.Version
	base.Version = prev + 1
	result := db.WithContext(ctx).Model(doc).
		Where("version = ?", prev).
		Select("*").Omit("created_at").
		Updates(doc)
	if result.Error != nil {
		base.Version = prev
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		base.Version = prev
		var count int64
		if err := db.WithContext(ctx).Model(doc).Where("id = ?", base.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrVersionConflict
	}
	return nil
}

// translateError maps driver-level failures onto the store error set.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrDuplicateKey
	}
	return err
}
