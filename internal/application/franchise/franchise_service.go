package franchise

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/franchises/backend/internal/domain/franchise"
	"github.com/franchises/backend/internal/domain/shared"
	"github.com/franchises/backend/internal/infrastructure/telemetry"
)

// maxStockConcurrency caps the parallel branch lookups in MaxStockPerBranch.
const maxStockConcurrency = 8

// CreateResult reports the outcome of a franchise creation. A taken name is
// an expected outcome here, not a failure.
type CreateResult struct {
	Franchise *franchise.Franchise
	NameTaken bool
}

// RenameResult reports the outcome of a franchise rename.
type RenameResult struct {
	Franchise *franchise.Franchise
	NameTaken bool
}

// ProductWithBranch pairs a product with the branch that lists it.
type ProductWithBranch struct {
	Product  *franchise.Product `json:"product"`
	BranchID string             `json:"branchId"`
}

// FranchiseService manages franchises and their branch lists.
type FranchiseService struct {
	franchiseRepo franchise.FranchiseRepository
	branchRepo    franchise.BranchRepository
	productRepo   franchise.ProductRepository
	logger        *zap.Logger
}

// NewFranchiseService creates a new FranchiseService.
func NewFranchiseService(
	franchiseRepo franchise.FranchiseRepository,
	branchRepo franchise.BranchRepository,
	productRepo franchise.ProductRepository,
	logger *zap.Logger,
) *FranchiseService {
	return &FranchiseService{
		franchiseRepo: franchiseRepo,
		branchRepo:    branchRepo,
		productRepo:   productRepo,
		logger:        logger,
	}
}

// Create registers a new franchise. If the name is already taken the result
// carries NameTaken instead of an error.
func (s *FranchiseService) Create(ctx context.Context, name string) (*CreateResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "franchise", "create")
	defer span.End()

	taken, err := s.franchiseRepo.ExistsByName(ctx, name)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if taken {
		return &CreateResult{NameTaken: true}, nil
	}

	f, err := franchise.NewFranchise(name)
	if err != nil {
		return nil, err
	}
	if err := s.franchiseRepo.Save(ctx, f); err != nil {
		if shared.IsKind(err, shared.KindDuplicateKey) {
			// raced with another creation of the same name
			return &CreateResult{NameTaken: true}, nil
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("franchise created", zap.String("franchise_id", f.ID), zap.String("name", name))
	return &CreateResult{Franchise: f}, nil
}

// Rename changes a franchise's name. The target name being taken is an
// expected outcome; a missing franchise is a failure.
func (s *FranchiseService) Rename(ctx context.Context, franchiseID, newName string) (*RenameResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "franchise", "rename",
		telemetry.WithAttribute("franchise_id", franchiseID))
	defer span.End()

	taken, err := s.franchiseRepo.ExistsByName(ctx, newName)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if taken {
		return &RenameResult{NameTaken: true}, nil
	}

	f, err := s.franchiseRepo.FindByID(ctx, franchiseID)
	if err != nil {
		if shared.IsKind(err, shared.KindResourceNotFound) {
			return nil, shared.NewDomainErrorf(shared.KindResourceNotFound, "Franchise not found with ID: %s", franchiseID)
		}
		return nil, err
	}

	if err := f.Rename(newName); err != nil {
		return nil, err
	}
	if err := s.franchiseRepo.Save(ctx, f); err != nil {
		if shared.IsKind(err, shared.KindDuplicateKey) {
			return &RenameResult{NameTaken: true}, nil
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("franchise renamed", zap.String("franchise_id", franchiseID), zap.String("name", newName))
	return &RenameResult{Franchise: f}, nil
}

// AddBranch creates a branch and registers it under the franchise, returning
// the updated franchise. The branch document is written first; the membership
// append retries on concurrent franchise updates so parallel additions both
// survive.
func (s *FranchiseService) AddBranch(ctx context.Context, franchiseID, branchName string) (*franchise.Franchise, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "franchise", "add_branch",
		telemetry.WithAttribute("franchise_id", franchiseID))
	defer span.End()

	if _, err := s.franchiseRepo.FindByID(ctx, franchiseID); err != nil {
		if shared.IsKind(err, shared.KindResourceNotFound) {
			return nil, shared.NewDomainErrorf(shared.KindResourceNotFound, "Franchise not found with ID: %s", franchiseID)
		}
		return nil, err
	}

	branch, err := franchise.NewBranch(branchName)
	if err != nil {
		return nil, err
	}
	if err := s.branchRepo.Save(ctx, branch); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		f, err := s.franchiseRepo.FindByID(ctx, franchiseID)
		if err != nil {
			return nil, err
		}
		f.AddBranchID(branch.ID)
		err = s.franchiseRepo.Save(ctx, f)
		if err == nil {
			s.logger.Info("branch added to franchise",
				zap.String("franchise_id", franchiseID),
				zap.String("branch_id", branch.ID),
				zap.String("name", branchName))
			return f, nil
		}
		if !shared.IsKind(err, shared.KindVersionConflict) || attempt >= saveRetries {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}
}

// RenameBranch changes the name of a branch belonging to the franchise.
// Renaming to the branch's current name (case-insensitive) is rejected as a
// no-op. Only the branch document is written; the franchise is returned
// unchanged.
func (s *FranchiseService) RenameBranch(ctx context.Context, franchiseID, branchID, newName string) (*franchise.Franchise, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "franchise", "rename_branch",
		telemetry.WithAttribute("franchise_id", franchiseID),
		telemetry.WithAttribute("branch_id", branchID))
	defer span.End()

	f, err := s.franchiseRepo.FindByID(ctx, franchiseID)
	if err != nil {
		if shared.IsKind(err, shared.KindResourceNotFound) {
			return nil, shared.NewDomainErrorf(shared.KindResourceNotFound, "Franchise not found with ID: %s", franchiseID)
		}
		return nil, err
	}
	if !f.HasBranch(branchID) {
		return nil, shared.NewDomainErrorf(shared.KindBranchNotFound, "Branch not found with ID: %s", branchID)
	}

	branch, err := s.branchRepo.FindByID(ctx, branchID)
	if err != nil {
		if shared.IsKind(err, shared.KindResourceNotFound) {
			return nil, shared.NewDomainErrorf(shared.KindBranchNotFound, "Branch not found with ID: %s", branchID)
		}
		return nil, err
	}

	if branch.NameEquals(newName) {
		return nil, shared.NewDomainErrorf(shared.KindBranchNameAlreadyUpToDate, "Branch %s name is already %s", branchID, newName)
	}

	if err := branch.Rename(newName); err != nil {
		return nil, err
	}
	if err := s.branchRepo.Save(ctx, branch); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("branch renamed", zap.String("branch_id", branchID), zap.String("name", newName))
	return f, nil
}

// MaxStockPerBranch returns, for every branch of the franchise, the listed
// product with the highest stock. Branches appear in the franchise's branch
// order; branches that resolve no products, including dangling branch ids,
// are skipped. Ties resolve to the product listed first.
func (s *FranchiseService) MaxStockPerBranch(ctx context.Context, franchiseID string) ([]ProductWithBranch, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "franchise", "max_stock_per_branch",
		telemetry.WithAttribute("franchise_id", franchiseID))
	defer span.End()

	f, err := s.franchiseRepo.FindByID(ctx, franchiseID)
	if err != nil {
		if shared.IsKind(err, shared.KindResourceNotFound) {
			return nil, shared.NewDomainErrorf(shared.KindResourceNotFound, "Franchise not found with ID: %s", franchiseID)
		}
		return nil, err
	}

	// index-slotted so the output keeps the franchise's branch order even
	// though branches are fetched in parallel
	results := make([]*ProductWithBranch, len(f.BranchIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxStockConcurrency)
	for i, branchID := range f.BranchIDs {
		g.Go(func() error {
			top, err := s.topProduct(gctx, branchID)
			if err != nil {
				return err
			}
			if top != nil {
				results[i] = &ProductWithBranch{Product: top, BranchID: branchID}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	out := make([]ProductWithBranch, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

// topProduct returns the highest-stock product of a branch, or nil when the
// branch resolves no products. Dangling references, whether the branch
// document itself or any of its products, are skipped rather than failing
// the aggregation.
func (s *FranchiseService) topProduct(ctx context.Context, branchID string) (*franchise.Product, error) {
	branch, err := s.branchRepo.FindByID(ctx, branchID)
	if err != nil {
		if shared.IsKind(err, shared.KindResourceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var top *franchise.Product
	for _, productID := range branch.ProductIDs {
		product, err := s.productRepo.FindByID(ctx, productID)
		if err != nil {
			if shared.IsKind(err, shared.KindResourceNotFound) {
				continue
			}
			return nil, err
		}
		if top == nil || product.Stock > top.Stock {
			top = product
		}
	}
	return top, nil
}
