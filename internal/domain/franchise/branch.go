package franchise

import (
	"strings"

	"github.com/franchises/backend/internal/domain/shared"
)

// Branch is a location under a franchise. Products are referenced by id in
// ProductIDs; the Product documents themselves are shared across branches
// and live in their own collection.
type Branch struct {
	shared.BaseDocument
	Name       string   `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	ProductIDs []string `gorm:"serializer:json;type:text" json:"productsId"`
}

// TableName returns the collection name for GORM
func (Branch) TableName() string {
	return "branches"
}

// NewBranch creates a new branch with an empty product list.
func NewBranch(name string) (*Branch, error) {
	if err := validateName(name, "Branch"); err != nil {
		return nil, err
	}
	return &Branch{
		Name:       name,
		ProductIDs: []string{},
	}, nil
}

// Rename changes the branch name.
func (b *Branch) Rename(name string) error {
	if err := validateName(name, "Branch"); err != nil {
		return err
	}
	b.Name = name
	b.Touch()
	return nil
}

// NameEquals reports whether the branch name matches case-insensitively.
func (b *Branch) NameEquals(name string) bool {
	return strings.EqualFold(b.Name, name)
}

// HasProduct reports whether the product id is referenced by this branch.
func (b *Branch) HasProduct(id string) bool {
	for _, p := range b.ProductIDs {
		if p == id {
			return true
		}
	}
	return false
}

// AddProductID appends a product id. Callers must reject duplicates first;
// the list is set-like by convention, not by construction.
func (b *Branch) AddProductID(id string) {
	b.ProductIDs = append(b.ProductIDs, id)
	b.Touch()
}

// RemoveProductID removes a product id, reporting whether it was present.
func (b *Branch) RemoveProductID(id string) bool {
	for i, p := range b.ProductIDs {
		if p == id {
			b.ProductIDs = append(b.ProductIDs[:i], b.ProductIDs[i+1:]...)
			b.Touch()
			return true
		}
	}
	return false
}
