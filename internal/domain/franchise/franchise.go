package franchise

import (
	"strings"

	"github.com/franchises/backend/internal/domain/shared"
)

// Franchise is the top-level document of the network hierarchy. It owns its
// branches only through the denormalized BranchIDs list; Branch documents
// carry no back-pointer, so membership checks always go through this list.
type Franchise struct {
	shared.BaseDocument
	Name      string   `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	BranchIDs []string `gorm:"serializer:json;type:text" json:"branchIds"`
}

// TableName returns the collection name for GORM
func (Franchise) TableName() string {
	return "franchises"
}

// NewFranchise creates a new franchise. The id is assigned by the store on
// first save.
func NewFranchise(name string) (*Franchise, error) {
	if err := validateName(name, "Franchise"); err != nil {
		return nil, err
	}
	return &Franchise{
		Name:      name,
		BranchIDs: []string{},
	}, nil
}

// Rename changes the franchise name. Global uniqueness is the caller's
// concern; the store unique index is the backstop.
func (f *Franchise) Rename(name string) error {
	if err := validateName(name, "Franchise"); err != nil {
		return err
	}
	f.Name = name
	f.Touch()
	return nil
}

// AddBranchID appends a branch id, preserving creation order.
func (f *Franchise) AddBranchID(id string) {
	f.BranchIDs = append(f.BranchIDs, id)
	f.Touch()
}

// HasBranch reports whether the given branch id is referenced.
func (f *Franchise) HasBranch(id string) bool {
	for _, b := range f.BranchIDs {
		if b == id {
			return true
		}
	}
	return false
}

// validateName rejects blank or oversized names for any document kind.
func validateName(name, kind string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError(shared.KindValidation, kind+" name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError(shared.KindValidation, kind+" name cannot exceed 200 characters")
	}
	return nil
}
