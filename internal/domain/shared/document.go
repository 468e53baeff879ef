package shared

import "time"

// Document is the base interface for all stored documents.
type Document interface {
	GetID() string
	GetVersion() int
}

// BaseDocument provides common fields for documents stored in independent
// collections. The ID is an opaque string assigned by the store on first
// save; Version backs compare-and-swap writes for documents that carry
// denormalized id-lists.
type BaseDocument struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the document id, empty until the first save.
func (d *BaseDocument) GetID() string {
	return d.ID
}

// GetVersion returns the optimistic-lock version.
func (d *BaseDocument) GetVersion() int {
	return d.Version
}

// Touch updates the modification timestamp.
func (d *BaseDocument) Touch() {
	d.UpdatedAt = time.Now()
}
