package franchise

import (
	"context"

	"go.uber.org/zap"

	"github.com/franchises/backend/internal/domain/franchise"
	"github.com/franchises/backend/internal/domain/shared"
	"github.com/franchises/backend/internal/infrastructure/telemetry"
)

// saveRetries bounds the optimistic-save loop on version conflicts.
const saveRetries = 3

// BranchService manages the product list of a branch.
type BranchService struct {
	branchRepo  franchise.BranchRepository
	productRepo franchise.ProductRepository
	products    *ProductService
	logger      *zap.Logger
}

// NewBranchService creates a new BranchService.
func NewBranchService(
	branchRepo franchise.BranchRepository,
	productRepo franchise.ProductRepository,
	products *ProductService,
	logger *zap.Logger,
) *BranchService {
	return &BranchService{
		branchRepo:  branchRepo,
		productRepo: productRepo,
		products:    products,
		logger:      logger,
	}
}

// AddProduct attaches a product to a branch, resolving the product by
// case-insensitive name and creating it on first reference. A branch never
// lists the same product twice.
func (s *BranchService) AddProduct(ctx context.Context, branchID, productName string, stock int) (*franchise.Branch, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "branch", "add_product",
		telemetry.WithAttribute("branch_id", branchID))
	defer span.End()

	// the branch must exist before the product is resolved, otherwise a
	// failed attach would leave a freshly created product behind
	if _, err := s.branchRepo.FindByID(ctx, branchID); err != nil {
		if shared.IsKind(err, shared.KindResourceNotFound) {
			return nil, shared.NewDomainErrorf(shared.KindBranchNotFound, "Branch not found with ID: %s", branchID)
		}
		return nil, err
	}

	product, err := s.products.ResolveOrCreate(ctx, productName, stock)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		branch, err := s.branchRepo.FindByID(ctx, branchID)
		if err != nil {
			if shared.IsKind(err, shared.KindResourceNotFound) {
				return nil, shared.NewDomainErrorf(shared.KindBranchNotFound, "Branch not found with ID: %s", branchID)
			}
			return nil, err
		}

		if branch.HasProduct(product.ID) {
			return nil, shared.NewDomainErrorf(shared.KindProductAlreadyExists, "Product %s already exists in branch %s", product.Name, branchID)
		}

		branch.AddProductID(product.ID)
		err = s.branchRepo.Save(ctx, branch)
		if err == nil {
			s.logger.Info("product added to branch",
				zap.String("branch_id", branchID),
				zap.String("product_id", product.ID),
				zap.String("product_name", product.Name))
			return branch, nil
		}
		if !shared.IsKind(err, shared.KindVersionConflict) || attempt >= saveRetries {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}
}

// RemoveProduct detaches a product from a branch. The product document
// itself is kept; only the membership is removed.
func (s *BranchService) RemoveProduct(ctx context.Context, branchID, productID string) (*franchise.Branch, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "branch", "remove_product",
		telemetry.WithAttribute("branch_id", branchID),
		telemetry.WithAttribute("product_id", productID))
	defer span.End()

	for attempt := 0; ; attempt++ {
		branch, err := s.branchRepo.FindByID(ctx, branchID)
		if err != nil {
			if shared.IsKind(err, shared.KindResourceNotFound) {
				return nil, shared.NewDomainErrorf(shared.KindBranchNotFound, "Branch not found with ID: %s", branchID)
			}
			return nil, err
		}

		if !branch.RemoveProductID(productID) {
			return nil, shared.NewDomainErrorf(shared.KindProductNotFound, "Product not found with ID: %s", productID)
		}

		err = s.branchRepo.Save(ctx, branch)
		if err == nil {
			s.logger.Info("product removed from branch",
				zap.String("branch_id", branchID),
				zap.String("product_id", productID))
			return branch, nil
		}
		if !shared.IsKind(err, shared.KindVersionConflict) || attempt >= saveRetries {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}
}

// UpdateStock sets the absolute stock of a product listed by a branch.
// The product must both exist as a document and be listed by the branch.
func (s *BranchService) UpdateStock(ctx context.Context, branchID, productID string, newStock int) (*franchise.Product, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "branch", "update_stock",
		telemetry.WithAttribute("branch_id", branchID),
		telemetry.WithAttribute("product_id", productID))
	defer span.End()

	branch, err := s.branchRepo.FindByID(ctx, branchID)
	if err != nil {
		if shared.IsKind(err, shared.KindResourceNotFound) {
			return nil, shared.NewDomainErrorf(shared.KindBranchNotFound, "Branch not found with ID: %s", branchID)
		}
		return nil, err
	}

	if !branch.HasProduct(productID) {
		return nil, shared.NewDomainErrorf(shared.KindProductNotFound, "Product not found with ID: %s", productID)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if shared.IsKind(err, shared.KindResourceNotFound) {
			return nil, shared.NewDomainErrorf(shared.KindProductNotFound, "Product not found with ID: %s", productID)
		}
		return nil, err
	}

	if err := product.SetStock(newStock); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("product stock updated",
		zap.String("branch_id", branchID),
		zap.String("product_id", productID),
		zap.Int("stock", newStock))
	return product, nil
}
