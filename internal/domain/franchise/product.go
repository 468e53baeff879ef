package franchise

import (
	"strings"

	"github.com/franchises/backend/internal/domain/shared"
)

// Product is a globally shared stock item. It is created lazily the first
// time a name is referenced and is weakly referenced by id from every branch
// that stocks it; no branch owns it.
type Product struct {
	shared.BaseDocument
	Name  string `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	Stock int    `gorm:"not null;default:0" json:"stock"`
}

// TableName returns the collection name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with an initial stock.
func NewProduct(name string, stock int) (*Product, error) {
	if err := validateName(name, "Product"); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, shared.NewDomainError(shared.KindValidation, "Product stock cannot be negative")
	}
	return &Product{
		Name:  name,
		Stock: stock,
	}, nil
}

// SetStock overwrites the stock with an absolute value.
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError(shared.KindValidation, "Product stock cannot be negative")
	}
	p.Stock = stock
	p.Touch()
	return nil
}

// Rename changes the product name. Same-name and taken-name checks are the
// service's concern.
func (p *Product) Rename(name string) error {
	if err := validateName(name, "Product"); err != nil {
		return err
	}
	p.Name = name
	p.Touch()
	return nil
}

// NameEquals reports whether the product name matches case-insensitively.
// Product identity is by name, folded: "Laptop" and "laptop" are the same
// product.
func (p *Product) NameEquals(name string) bool {
	return strings.EqualFold(p.Name, name)
}
