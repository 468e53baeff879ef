package franchise

import "context"

// FranchiseRepository stores Franchise documents. Name lookups are exact.
type FranchiseRepository interface {
	FindByID(ctx context.Context, id string) (*Franchise, error)
	FindByName(ctx context.Context, name string) (*Franchise, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, f *Franchise) error
}

// BranchRepository stores Branch documents.
type BranchRepository interface {
	FindByID(ctx context.Context, id string) (*Branch, error)
	Save(ctx context.Context, b *Branch) error
}

// ProductRepository stores Product documents. Name resolution is
// case-insensitive because products are identified by name on first
// reference.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	FindByNameIgnoreCase(ctx context.Context, name string) (*Product, error)
	Save(ctx context.Context, p *Product) error
}
