package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/monthly_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock LineItemRepository ---
type MockLineItemRepository struct {
	mock.Mock
}

var _ portsrepo.LineItemRepositoryFacade = (*MockLineItemRepository)(nil)

func (m *MockLineItemRepository) FindLineItemByID(ctx context.Context, owner domain.OwnerContext, itemID string) (*domain.LineItem, error) {
	args := m.Called(ctx, owner, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) ListRootLineItems(ctx context.Context, owner domain.OwnerContext, period domain.Period) ([]domain.LineItem, error) {
	args := m.Called(ctx, owner, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) ListChildLineItems(ctx context.Context, owner domain.OwnerContext, parentIDs []string) ([]domain.LineItem, error) {
	args := m.Called(ctx, owner, parentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) CountChildren(ctx context.Context, owner domain.OwnerContext, parentID string) (int, error) {
	args := m.Called(ctx, owner, parentID)
	return args.Int(0), args.Error(1)
}

func (m *MockLineItemRepository) ListSeriesLineItems(ctx context.Context, owner domain.OwnerContext, seriesID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, owner, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) CountSeriesChildren(ctx context.Context, owner domain.OwnerContext, seriesID string, filter domain.SeriesFilter) (int, error) {
	args := m.Called(ctx, owner, seriesID, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockLineItemRepository) SaveLineItem(ctx context.Context, item domain.LineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLineItemRepository) SaveLineItems(ctx context.Context, items []domain.LineItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockLineItemRepository) UpdateLineItem(ctx context.Context, owner domain.OwnerContext, itemID string, patch domain.LineItemPatch, updatedAt time.Time) error {
	args := m.Called(ctx, owner, itemID, patch, updatedAt)
	return args.Error(0)
}

func (m *MockLineItemRepository) UpdateSeriesLineItems(ctx context.Context, owner domain.OwnerContext, seriesID string, filter domain.SeriesFilter, patch domain.LineItemPatch, updatedAt time.Time) ([]domain.Period, error) {
	args := m.Called(ctx, owner, seriesID, filter, patch, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockLineItemRepository) DeleteLineItem(ctx context.Context, owner domain.OwnerContext, itemID string) error {
	args := m.Called(ctx, owner, itemID)
	return args.Error(0)
}

func (m *MockLineItemRepository) DeleteSeriesLineItems(ctx context.Context, owner domain.OwnerContext, seriesID string, filter domain.SeriesFilter) ([]domain.Period, error) {
	args := m.Called(ctx, owner, seriesID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, owner domain.OwnerContext, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, owner, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, owner domain.OwnerContext, kind *domain.LineItemKind) ([]domain.Category, error) {
	args := m.Called(ctx, owner, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, owner domain.OwnerContext, categoryID string) error {
	args := m.Called(ctx, owner, categoryID)
	return args.Error(0)
}

// --- Mock WorkplaceRepository ---
type MockWorkplaceRepository struct {
	mock.Mock
}

var _ portsrepo.WorkplaceRepositoryFacade = (*MockWorkplaceRepository)(nil)

func (m *MockWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace, creator domain.WorkplaceMember) error {
	args := m.Called(ctx, workplace, creator)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) AddMember(ctx context.Context, membership domain.WorkplaceMember) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) FindMember(ctx context.Context, userID, workplaceID string) (*domain.WorkplaceMember, error) {
	args := m.Called(ctx, userID, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkplaceMember), args.Error(1)
}

// --- Mock WorkplaceAuthorizer ---
type MockWorkplaceAuthorizer struct {
	mock.Mock
}

var _ portssvc.WorkplaceAuthorizerSvc = (*MockWorkplaceAuthorizer)(nil)

func (m *MockWorkplaceAuthorizer) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.WorkplaceRole) error {
	args := m.Called(ctx, userID, workplaceID, requiredRole)
	return args.Error(0)
}

// --- Mock CategoryResolver ---
type MockCategoryResolver struct {
	mock.Mock
}

var _ portssvc.CategoryResolverSvc = (*MockCategoryResolver)(nil)

func (m *MockCategoryResolver) ResolveCategory(ctx context.Context, owner domain.OwnerContext, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, owner, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
