package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	"github.com/jhoicas/reposicion-api/internal/domain/repository"
)

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Create(ctx context.Context, s *entity.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Update(ctx context.Context, s *entity.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSupplierRepository) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*entity.Supplier), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*entity.Product), args.Error(1)
}

type MockLinkRepository struct{ mock.Mock }

func (m *MockLinkRepository) Create(ctx context.Context, l *entity.ProductSupplierLink) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLinkRepository) GetByID(ctx context.Context, id string) (*entity.ProductSupplierLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProductSupplierLink), args.Error(1)
}

func (m *MockLinkRepository) Update(ctx context.Context, l *entity.ProductSupplierLink) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLinkRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLinkRepository) ListWithProductBySupplier(ctx context.Context, supplierID string) ([]repository.LinkWithProduct, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]repository.LinkWithProduct), args.Error(1)
}

func (m *MockLinkRepository) ListWithSupplierByProduct(ctx context.Context, productID string) ([]repository.LinkWithSupplier, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]repository.LinkWithSupplier), args.Error(1)
}
