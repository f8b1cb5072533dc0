package pricing

import (
	"context"

	"github.com/raidforge/itemcore/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCatalog implements repository.Catalog for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) TemplateByID(ctx context.Context, id string) (*domain.ItemTemplate, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.ItemTemplate), args.Bool(1)
}

func (m *MockCatalog) AllTemplates(ctx context.Context) []domain.ItemTemplate {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ItemTemplate)
}

// MockPriceBook implements repository.PriceBook for testing
type MockPriceBook struct {
	mock.Mock
}

func (m *MockPriceBook) StaticPriceByID(ctx context.Context, id string) (float64, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Bool(1)
}

// MockMarket implements repository.Market for testing
type MockMarket struct {
	mock.Mock
}

func (m *MockMarket) DynamicPriceByID(ctx context.Context, id string) (float64, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Bool(1)
}
