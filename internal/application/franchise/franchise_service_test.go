package franchise

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/franchises/backend/internal/domain/franchise"
	"github.com/franchises/backend/internal/domain/shared"
)

func testFranchise(id, name string, branchIDs ...string) *franchise.Franchise {
	return &franchise.Franchise{
		BaseDocument: shared.BaseDocument{ID: id, Version: 1},
		Name:         name,
		BranchIDs:    branchIDs,
	}
}

func newFranchiseService(
	franchiseRepo *MockFranchiseRepository,
	branchRepo *MockBranchRepository,
	productRepo *MockProductRepository,
) *FranchiseService {
	return NewFranchiseService(franchiseRepo, branchRepo, productRepo, zap.NewNop())
}

func TestFranchiseService_Create_Success(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	service := newFranchiseService(mockFranchiseRepo, new(MockBranchRepository), new(MockProductRepository))

	ctx := context.Background()

	mockFranchiseRepo.On("ExistsByName", mock.Anything, "Acme").Return(false, nil)
	mockFranchiseRepo.On("Save", mock.Anything, mock.AnythingOfType("*franchise.Franchise")).Return(nil)

	result, err := service.Create(ctx, "Acme")

	assert.NoError(t, err)
	assert.False(t, result.NameTaken)
	assert.Equal(t, "Acme", result.Franchise.Name)
	assert.Empty(t, result.Franchise.BranchIDs)
	mockFranchiseRepo.AssertExpectations(t)
}

func TestFranchiseService_Create_NameTaken(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	service := newFranchiseService(mockFranchiseRepo, new(MockBranchRepository), new(MockProductRepository))

	mockFranchiseRepo.On("ExistsByName", mock.Anything, "Acme").Return(true, nil)

	result, err := service.Create(context.Background(), "Acme")

	assert.NoError(t, err, "a taken name is an outcome, not a failure")
	assert.True(t, result.NameTaken)
	assert.Nil(t, result.Franchise)
	mockFranchiseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFranchiseService_Create_RacedDuplicate(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	service := newFranchiseService(mockFranchiseRepo, new(MockBranchRepository), new(MockProductRepository))

	mockFranchiseRepo.On("ExistsByName", mock.Anything, "Acme").Return(false, nil)
	mockFranchiseRepo.On("Save", mock.Anything, mock.AnythingOfType("*franchise.Franchise")).
		Return(shared.NewDomainError(shared.KindDuplicateKey, "duplicate name"))

	result, err := service.Create(context.Background(), "Acme")

	assert.NoError(t, err)
	assert.True(t, result.NameTaken)
}

func TestFranchiseService_Create_InvalidName(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	service := newFranchiseService(mockFranchiseRepo, new(MockBranchRepository), new(MockProductRepository))

	mockFranchiseRepo.On("ExistsByName", mock.Anything, "").Return(false, nil)

	result, err := service.Create(context.Background(), "")

	assert.Nil(t, result)
	assert.True(t, shared.IsKind(err, shared.KindValidation))
}

func TestFranchiseService_Rename_Success(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	service := newFranchiseService(mockFranchiseRepo, new(MockBranchRepository), new(MockProductRepository))

	f := testFranchise("f1", "Acme")

	mockFranchiseRepo.On("ExistsByName", mock.Anything, "Acme Corp").Return(false, nil)
	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(f, nil)
	mockFranchiseRepo.On("Save", mock.Anything, f).Return(nil)

	result, err := service.Rename(context.Background(), "f1", "Acme Corp")

	assert.NoError(t, err)
	assert.False(t, result.NameTaken)
	assert.Equal(t, "Acme Corp", result.Franchise.Name)
	mockFranchiseRepo.AssertExpectations(t)
}

func TestFranchiseService_Rename_NameTaken(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	service := newFranchiseService(mockFranchiseRepo, new(MockBranchRepository), new(MockProductRepository))

	mockFranchiseRepo.On("ExistsByName", mock.Anything, "Acme Corp").Return(true, nil)

	result, err := service.Rename(context.Background(), "f1", "Acme Corp")

	assert.NoError(t, err)
	assert.True(t, result.NameTaken)
	mockFranchiseRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestFranchiseService_Rename_NotFound(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	service := newFranchiseService(mockFranchiseRepo, new(MockBranchRepository), new(MockProductRepository))

	mockFranchiseRepo.On("ExistsByName", mock.Anything, "Acme Corp").Return(false, nil)
	mockFranchiseRepo.On("FindByID", mock.Anything, "missing").Return(nil, notFoundErr("no such franchise"))

	result, err := service.Rename(context.Background(), "missing", "Acme Corp")

	assert.Nil(t, result)
	assert.True(t, shared.IsKind(err, shared.KindResourceNotFound))
}

func TestFranchiseService_AddBranch_Success(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	mockBranchRepo := new(MockBranchRepository)
	service := newFranchiseService(mockFranchiseRepo, mockBranchRepo, new(MockProductRepository))

	f := testFranchise("f1", "Acme")

	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(f, nil)
	mockBranchRepo.On("Save", mock.Anything, mock.AnythingOfType("*franchise.Branch")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*franchise.Branch).ID = "b1"
		}).Return(nil)
	mockFranchiseRepo.On("Save", mock.Anything, f).Return(nil)

	result, err := service.AddBranch(context.Background(), "f1", "Centro")

	assert.NoError(t, err)
	assert.Equal(t, "f1", result.ID, "the updated franchise comes back")
	assert.Equal(t, []string{"b1"}, result.BranchIDs)
	mockBranchRepo.AssertExpectations(t)
	mockFranchiseRepo.AssertExpectations(t)
}

func TestFranchiseService_AddBranch_FranchiseNotFound(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	mockBranchRepo := new(MockBranchRepository)
	service := newFranchiseService(mockFranchiseRepo, mockBranchRepo, new(MockProductRepository))

	mockFranchiseRepo.On("FindByID", mock.Anything, "missing").Return(nil, notFoundErr("no such franchise"))

	result, err := service.AddBranch(context.Background(), "missing", "Centro")

	assert.Nil(t, result)
	assert.True(t, shared.IsKind(err, shared.KindResourceNotFound))
	mockBranchRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFranchiseService_AddBranch_RetriesOnVersionConflict(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	mockBranchRepo := new(MockBranchRepository)
	service := newFranchiseService(mockFranchiseRepo, mockBranchRepo, new(MockProductRepository))

	stale := testFranchise("f1", "Acme")
	fresh := testFranchise("f1", "Acme", "other")

	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(stale, nil).Twice()
	mockBranchRepo.On("Save", mock.Anything, mock.AnythingOfType("*franchise.Branch")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*franchise.Branch).ID = "b1"
		}).Return(nil)
	mockFranchiseRepo.On("Save", mock.Anything, stale).
		Return(shared.NewDomainError(shared.KindVersionConflict, "stale document")).Once()
	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(fresh, nil).Once()
	mockFranchiseRepo.On("Save", mock.Anything, fresh).Return(nil).Once()

	result, err := service.AddBranch(context.Background(), "f1", "Centro")

	assert.NoError(t, err)
	assert.Equal(t, []string{"other", "b1"}, result.BranchIDs, "a concurrent addition survives the retry")
	mockFranchiseRepo.AssertExpectations(t)
}

func TestFranchiseService_RenameBranch_Success(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	mockBranchRepo := new(MockBranchRepository)
	service := newFranchiseService(mockFranchiseRepo, mockBranchRepo, new(MockProductRepository))

	f := testFranchise("f1", "Acme", "b1")
	branch := testBranch("b1", "Centro")

	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(f, nil)
	mockBranchRepo.On("FindByID", mock.Anything, "b1").Return(branch, nil)
	mockBranchRepo.On("Save", mock.Anything, branch).Return(nil)

	result, err := service.RenameBranch(context.Background(), "f1", "b1", "Norte")

	assert.NoError(t, err)
	assert.Equal(t, "f1", result.ID, "the owning franchise comes back unchanged")
	assert.Equal(t, "Norte", branch.Name)
	mockBranchRepo.AssertExpectations(t)
}

func TestFranchiseService_RenameBranch_NotMember(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	mockBranchRepo := new(MockBranchRepository)
	service := newFranchiseService(mockFranchiseRepo, mockBranchRepo, new(MockProductRepository))

	f := testFranchise("f1", "Acme", "other")

	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(f, nil)

	result, err := service.RenameBranch(context.Background(), "f1", "b1", "Norte")

	assert.Nil(t, result)
	assert.True(t, shared.IsKind(err, shared.KindBranchNotFound))
	mockBranchRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestFranchiseService_RenameBranch_AlreadyUpToDate(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	mockBranchRepo := new(MockBranchRepository)
	service := newFranchiseService(mockFranchiseRepo, mockBranchRepo, new(MockProductRepository))

	f := testFranchise("f1", "Acme", "b1")
	branch := testBranch("b1", "Centro")

	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(f, nil)
	mockBranchRepo.On("FindByID", mock.Anything, "b1").Return(branch, nil)

	// the no-op check is case-insensitive
	result, err := service.RenameBranch(context.Background(), "f1", "b1", "CENTRO")

	assert.Nil(t, result)
	assert.True(t, shared.IsKind(err, shared.KindBranchNameAlreadyUpToDate))
	mockBranchRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFranchiseService_MaxStockPerBranch(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	mockBranchRepo := new(MockBranchRepository)
	mockProductRepo := new(MockProductRepository)
	service := newFranchiseService(mockFranchiseRepo, mockBranchRepo, mockProductRepo)

	f := testFranchise("f1", "Acme", "b1", "b2", "b3")
	b1 := testBranch("b1", "Centro", "p1", "p2")
	b2 := testBranch("b2", "Norte")
	b3 := testBranch("b3", "Sur", "p3", "p4")

	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(f, nil)
	mockBranchRepo.On("FindByID", mock.Anything, "b1").Return(b1, nil)
	mockBranchRepo.On("FindByID", mock.Anything, "b2").Return(b2, nil)
	mockBranchRepo.On("FindByID", mock.Anything, "b3").Return(b3, nil)
	mockProductRepo.On("FindByID", mock.Anything, "p1").Return(testProduct("p1", "Laptop", 3), nil)
	mockProductRepo.On("FindByID", mock.Anything, "p2").Return(testProduct("p2", "Mouse", 8), nil)
	mockProductRepo.On("FindByID", mock.Anything, "p3").Return(testProduct("p3", "Desk", 5), nil)
	mockProductRepo.On("FindByID", mock.Anything, "p4").Return(testProduct("p4", "Chair", 5), nil)

	result, err := service.MaxStockPerBranch(context.Background(), "f1")

	assert.NoError(t, err)
	// b2 has no products and is skipped; output keeps branch order
	assert.Len(t, result, 2)
	assert.Equal(t, "b1", result[0].BranchID)
	assert.Equal(t, "p2", result[0].Product.ID)
	assert.Equal(t, "b3", result[1].BranchID)
	assert.Equal(t, "p3", result[1].Product.ID, "ties resolve to the product listed first")
}

func TestFranchiseService_MaxStockPerBranch_EmptyFranchise(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	service := newFranchiseService(mockFranchiseRepo, new(MockBranchRepository), new(MockProductRepository))

	f := testFranchise("f1", "Acme")
	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(f, nil)

	result, err := service.MaxStockPerBranch(context.Background(), "f1")

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestFranchiseService_MaxStockPerBranch_SkipsMissingProducts(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	mockBranchRepo := new(MockBranchRepository)
	mockProductRepo := new(MockProductRepository)
	service := newFranchiseService(mockFranchiseRepo, mockBranchRepo, mockProductRepo)

	f := testFranchise("f1", "Acme", "b1", "b2")
	b1 := testBranch("b1", "Centro", "gone", "p1")
	b2 := testBranch("b2", "Norte", "gone")

	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(f, nil)
	mockBranchRepo.On("FindByID", mock.Anything, "b1").Return(b1, nil)
	mockBranchRepo.On("FindByID", mock.Anything, "b2").Return(b2, nil)
	mockProductRepo.On("FindByID", mock.Anything, "gone").Return(nil, notFoundErr("no such product"))
	mockProductRepo.On("FindByID", mock.Anything, "p1").Return(testProduct("p1", "Laptop", 3), nil)

	result, err := service.MaxStockPerBranch(context.Background(), "f1")

	assert.NoError(t, err)
	// the dangling reference in b1 is skipped; b2 resolves nothing and
	// contributes no entry
	assert.Len(t, result, 1)
	assert.Equal(t, "b1", result[0].BranchID)
	assert.Equal(t, "p1", result[0].Product.ID)
}

func TestFranchiseService_MaxStockPerBranch_DanglingBranch(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	mockBranchRepo := new(MockBranchRepository)
	mockProductRepo := new(MockProductRepository)
	service := newFranchiseService(mockFranchiseRepo, mockBranchRepo, mockProductRepo)

	f := testFranchise("f1", "Acme", "gone", "b1")
	b1 := testBranch("b1", "Centro", "p1")
	mockFranchiseRepo.On("FindByID", mock.Anything, "f1").Return(f, nil)
	mockBranchRepo.On("FindByID", mock.Anything, "gone").Return(nil, notFoundErr("no such branch"))
	mockBranchRepo.On("FindByID", mock.Anything, "b1").Return(b1, nil)
	mockProductRepo.On("FindByID", mock.Anything, "p1").Return(testProduct("p1", "Laptop", 3), nil)

	result, err := service.MaxStockPerBranch(context.Background(), "f1")

	// the dangling branch id contributes no entry; the rest still resolves
	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "b1", result[0].BranchID)
}

func TestFranchiseService_MaxStockPerBranch_NotFound(t *testing.T) {
	mockFranchiseRepo := new(MockFranchiseRepository)
	service := newFranchiseService(mockFranchiseRepo, new(MockBranchRepository), new(MockProductRepository))

	mockFranchiseRepo.On("FindByID", mock.Anything, "missing").Return(nil, notFoundErr("no such franchise"))

	result, err := service.MaxStockPerBranch(context.Background(), "missing")

	assert.Nil(t, result)
	assert.True(t, shared.IsKind(err, shared.KindResourceNotFound))
}
