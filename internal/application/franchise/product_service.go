package franchise

import (
	"context"

	"github.com/franchises/backend/internal/domain/franchise"
	"github.com/franchises/backend/internal/domain/shared"
	"github.com/franchises/backend/internal/infrastructure/telemetry"
)

// NameCache is a fast-path lookup from a folded product name to a product
// id. It is an optimization only: misses, stale entries, and cache errors
// all fall through to the store, which stays the source of truth.
type NameCache interface {
	Get(ctx context.Context, name string) (string, bool)
	Set(ctx context.Context, name, id string)
	Invalidate(ctx context.Context, name string)
}

// NoopNameCache satisfies NameCache without caching anything.
type NoopNameCache struct{}

func (NoopNameCache) Get(context.Context, string) (string, bool) { return "", false }
func (NoopNameCache) Set(context.Context, string, string)        {}
func (NoopNameCache) Invalidate(context.Context, string)         {}

// ProductService resolves products by name and handles product renames.
type ProductService struct {
	productRepo franchise.ProductRepository
	names       NameCache
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo franchise.ProductRepository, names NameCache) *ProductService {
	if names == nil {
		names = NoopNameCache{}
	}
	return &ProductService{
		productRepo: productRepo,
		names:       names,
	}
}

// ResolveOrCreate finds a product by case-insensitive name, creating it with
// the given initial stock on first reference. When the product already
// exists the supplied stock is ignored; the stored stock is authoritative.
func (s *ProductService) ResolveOrCreate(ctx context.Context, name string, initialStock int) (*franchise.Product, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "product", "resolve_or_create")
	defer span.End()

	if id, ok := s.names.Get(ctx, name); ok {
		product, err := s.productRepo.FindByID(ctx, id)
		if err == nil {
			return product, nil
		}
		// stale cache entry, fall through to the store
		s.names.Invalidate(ctx, name)
	}

	product, err := s.productRepo.FindByNameIgnoreCase(ctx, name)
	if err == nil {
		s.names.Set(ctx, name, product.ID)
		return product, nil
	}
	if !shared.IsKind(err, shared.KindResourceNotFound) {
		telemetry.RecordError(span, err)
		return nil, err
	}

	created, err := franchise.NewProduct(name, initialStock)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, created); err != nil {
		if shared.IsKind(err, shared.KindDuplicateKey) {
			// lost the creation race, the winner's document is authoritative
			return s.productRepo.FindByNameIgnoreCase(ctx, name)
		}
		telemetry.RecordError(span, err)
		return nil, err
	}
	s.names.Set(ctx, name, created.ID)
	return created, nil
}

// Rename changes a product's name. Renaming to the current name
// (case-insensitive) is rejected as a no-op, and a name held by another
// product is a conflict.
func (s *ProductService) Rename(ctx context.Context, productID, newName string) (*franchise.Product, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "product", "rename")
	defer span.End()

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if shared.IsKind(err, shared.KindResourceNotFound) {
			return nil, shared.NewDomainErrorf(shared.KindProductNotFound, "Product not found with ID: %s", productID)
		}
		return nil, err
	}

	if product.NameEquals(newName) {
		return nil, shared.NewDomainErrorf(shared.KindProductNameAlreadyUpToDate, "Product %s name is already %s", productID, newName)
	}

	if _, err := s.productRepo.FindByNameIgnoreCase(ctx, newName); err == nil {
		return nil, shared.NewDomainErrorf(shared.KindProductAlreadyExists, "A product named %s already exists", newName)
	} else if !shared.IsKind(err, shared.KindResourceNotFound) {
		return nil, err
	}

	oldName := product.Name
	if err := product.Rename(newName); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	s.names.Invalidate(ctx, oldName)
	s.names.Set(ctx, newName, product.ID)
	return product, nil
}
