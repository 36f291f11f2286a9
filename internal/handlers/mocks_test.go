package handlers_test

import (
	"context"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock LineItemService ---
type MockLineItemService struct {
	mock.Mock
}

func snapshotResult(args mock.Arguments) (*domain.MonthSnapshot, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthSnapshot), args.Error(1)
}

func (m *MockLineItemService) ListMonth(ctx context.Context, owner domain.OwnerContext, period domain.Period) (*domain.MonthSnapshot, error) {
	return snapshotResult(m.Called(ctx, owner, period))
}
func (m *MockLineItemService) Create(ctx context.Context, owner domain.OwnerContext, draft domain.LineItemDraft) (*domain.MonthSnapshot, error) {
	return snapshotResult(m.Called(ctx, owner, draft))
}
func (m *MockLineItemService) Update(ctx context.Context, owner domain.OwnerContext, itemID string, patch domain.LineItemPatch) (*domain.MonthSnapshot, error) {
	return snapshotResult(m.Called(ctx, owner, itemID, patch))
}
func (m *MockLineItemService) ToggleCompleted(ctx context.Context, owner domain.OwnerContext, itemID string) (*domain.MonthSnapshot, error) {
	return snapshotResult(m.Called(ctx, owner, itemID))
}
func (m *MockLineItemService) Delete(ctx context.Context, owner domain.OwnerContext, itemID string, force bool) (*domain.MonthSnapshot, error) {
	return snapshotResult(m.Called(ctx, owner, itemID, force))
}
func (m *MockLineItemService) CreateChild(ctx context.Context, owner domain.OwnerContext, groupID string, draft domain.LineItemDraft) (*domain.MonthSnapshot, error) {
	return snapshotResult(m.Called(ctx, owner, groupID, draft))
}
func (m *MockLineItemService) MoveChild(ctx context.Context, owner domain.OwnerContext, childID, groupID string) (*domain.MonthSnapshot, error) {
	return snapshotResult(m.Called(ctx, owner, childID, groupID))
}
func (m *MockLineItemService) CreateRecurringSeries(ctx context.Context, owner domain.OwnerContext, spec domain.SeriesSpec) (*domain.SeriesCreationResult, error) {
	args := m.Called(ctx, owner, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeriesCreationResult), args.Error(1)
}
func (m *MockLineItemService) GetSeriesInfo(ctx context.Context, owner domain.OwnerContext, itemID string) (*domain.SeriesInfo, error) {
	args := m.Called(ctx, owner, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeriesInfo), args.Error(1)
}
func (m *MockLineItemService) UpdateSeries(ctx context.Context, owner domain.OwnerContext, itemID string, scope domain.SeriesScope, patch domain.LineItemPatch) (*domain.SeriesMutationResult, error) {
	args := m.Called(ctx, owner, itemID, scope, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeriesMutationResult), args.Error(1)
}
func (m *MockLineItemService) DeleteSeries(ctx context.Context, owner domain.OwnerContext, itemID string, scope domain.SeriesScope) (*domain.SeriesMutationResult, error) {
	args := m.Called(ctx, owner, itemID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeriesMutationResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LineItemSvcFacade = (*MockLineItemService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ResolveCategory(ctx context.Context, owner domain.OwnerContext, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, owner, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context, owner domain.OwnerContext, kind *domain.LineItemKind) ([]domain.Category, error) {
	args := m.Called(ctx, owner, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) CreateCategory(ctx context.Context, owner domain.OwnerContext, draft domain.CategoryDraft) (*domain.Category, error) {
	args := m.Called(ctx, owner, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, owner domain.OwnerContext, categoryID string) error {
	return m.Called(ctx, owner, categoryID).Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock WorkplaceService ---
type MockWorkplaceService struct {
	mock.Mock
}

func (m *MockWorkplaceService) ListUserWorkplaces(ctx context.Context, userID string) ([]domain.Workplace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) CreateWorkplace(ctx context.Context, draft domain.WorkplaceDraft, creatorUserID string) (*domain.Workplace, error) {
	args := m.Called(ctx, draft, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}
func (m *MockWorkplaceService) AddMember(ctx context.Context, addingUserID, targetUserID, workplaceID string, role domain.WorkplaceRole) (*domain.WorkplaceMember, error) {
	args := m.Called(ctx, addingUserID, targetUserID, workplaceID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkplaceMember), args.Error(1)
}
func (m *MockWorkplaceService) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.WorkplaceRole) error {
	return m.Called(ctx, userID, workplaceID, requiredRole).Error(0)
}

var _ portssvc.WorkplaceSvcFacade = (*MockWorkplaceService)(nil)
