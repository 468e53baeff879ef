package franchise

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/franchises/backend/internal/domain/franchise"
)

// MockFranchiseRepository is a mock implementation of FranchiseRepository
type MockFranchiseRepository struct {
	mock.Mock
}

func (m *MockFranchiseRepository) FindByID(ctx context.Context, id string) (*franchise.Franchise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*franchise.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) FindByName(ctx context.Context, name string) (*franchise.Franchise, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*franchise.Franchise), args.Error(1)
}

func (m *MockFranchiseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockFranchiseRepository) Save(ctx context.Context, f *franchise.Franchise) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

// MockBranchRepository is a mock implementation of BranchRepository
type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) FindByID(ctx context.Context, id string) (*franchise.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*franchise.Branch), args.Error(1)
}

func (m *MockBranchRepository) Save(ctx context.Context, b *franchise.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*franchise.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*franchise.Product), args.Error(1)
}

func (m *MockProductRepository) FindByNameIgnoreCase(ctx context.Context, name string) (*franchise.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*franchise.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *franchise.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockNameCache is a mock implementation of NameCache
type MockNameCache struct {
	mock.Mock
}

func (m *MockNameCache) Get(ctx context.Context, name string) (string, bool) {
	args := m.Called(ctx, name)
	return args.String(0), args.Bool(1)
}

func (m *MockNameCache) Set(ctx context.Context, name, id string) {
	m.Called(ctx, name, id)
}

func (m *MockNameCache) Invalidate(ctx context.Context, name string) {
	m.Called(ctx, name)
}
