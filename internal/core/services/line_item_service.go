package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/monthly_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

// lineItemService implements the LineItemSvcFacade interface
type lineItemService struct {
	BaseService
	lineItemRepo     portsrepo.LineItemRepositoryFacade
	categoryResolver portssvc.CategoryResolverSvc
	newID            func() string
	now              func() time.Time
	maxSeriesCount   int
}

// LineItemServiceOption is a functional option for configuring the line item service
type LineItemServiceOption func(*lineItemService)

// WithCategoryResolver makes the service reject unknown category ids.
func WithCategoryResolver(resolver portssvc.CategoryResolverSvc) LineItemServiceOption {
	return func(s *lineItemService) {
		s.categoryResolver = resolver
	}
}

// WithLineItemWorkplaceAuthorizer adds workplace authorizer dependency
func WithLineItemWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) LineItemServiceOption {
	return func(s *lineItemService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(newID func() string) LineItemServiceOption {
	return func(s *lineItemService) {
		s.newID = newID
	}
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) LineItemServiceOption {
	return func(s *lineItemService) {
		s.now = now
	}
}

// WithMaxSeriesCount lowers the number of occurrences a single series may have.
// Values outside [1, domain.MaxSeriesCount] are ignored.
func WithMaxSeriesCount(n int) LineItemServiceOption {
	return func(s *lineItemService) {
		if n >= 1 && n <= domain.MaxSeriesCount {
			s.maxSeriesCount = n
		}
	}
}

// NewLineItemService creates a new line item service with the provided options
func NewLineItemService(repo portsrepo.LineItemRepositoryFacade, options ...LineItemServiceOption) portssvc.LineItemSvcFacade {
	svc := &lineItemService{
		lineItemRepo:   repo,
		newID:          uuid.NewString,
		now:            func() time.Time { return time.Now().UTC() },
		maxSeriesCount: domain.MaxSeriesCount,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure lineItemService implements the LineItemSvcFacade interface
var _ portssvc.LineItemSvcFacade = (*lineItemService)(nil)

func (s *lineItemService) ListMonth(ctx context.Context, owner domain.OwnerContext, period domain.Period) (*domain.MonthSnapshot, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if period.IsZero() {
		return nil, apperrors.Validationf("period is required")
	}
	return s.snapshot(ctx, owner, period)
}

// snapshot reads the roots of a period, attaches the children of its groups and
// resolves totals.
func (s *lineItemService) snapshot(ctx context.Context, owner domain.OwnerContext, period domain.Period) (*domain.MonthSnapshot, error) {
	roots, err := s.lineItemRepo.ListRootLineItems(ctx, owner, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list root line items",
			slog.String("owner", owner.String()),
			slog.String("period", period.String()))
		return nil, err
	}

	var children []domain.LineItem
	if groupIDs := domain.GroupIDs(roots); len(groupIDs) > 0 {
		children, err = s.lineItemRepo.ListChildLineItems(ctx, owner, groupIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to list child line items",
				slog.String("owner", owner.String()),
				slog.Int("group_count", len(groupIDs)))
			return nil, err
		}
	}

	snapshot := domain.BuildMonthSnapshot(period, roots, children)
	s.LogDebug(ctx, "Month snapshot built",
		slog.String("period", period.String()),
		slog.Int("income_count", len(snapshot.Income)),
		slog.Int("expense_count", len(snapshot.Expense)))
	return &snapshot, nil
}

func (s *lineItemService) Create(ctx context.Context, owner domain.OwnerContext, draft domain.LineItemDraft) (*domain.MonthSnapshot, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := s.resolveCategory(ctx, owner, draft.CategoryID); err != nil {
		return nil, err
	}

	item := draft.NewLineItem(s.newID(), owner, s.now())
	if err := s.lineItemRepo.SaveLineItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save line item",
			slog.String("owner", owner.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Line item created",
		slog.String("line_item_id", item.ID),
		slog.String("period", item.Period.String()),
		slog.Bool("is_group", item.IsGroup))
	return s.snapshot(ctx, owner, item.Period)
}

func (s *lineItemService) Update(ctx context.Context, owner domain.OwnerContext, itemID string, patch domain.LineItemPatch) (*domain.MonthSnapshot, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return nil, err
	}
	patch, err := s.preparePatch(ctx, owner, patch)
	if err != nil {
		return nil, err
	}

	current, err := s.findLineItem(ctx, owner, itemID)
	if err != nil {
		return nil, err
	}
	period, err := s.updateOne(ctx, owner, current, patch)
	if err != nil {
		return nil, err
	}
	return s.snapshot(ctx, owner, period)
}

// preparePatch normalizes and validates a client patch and checks its category.
func (s *lineItemService) preparePatch(ctx context.Context, owner domain.OwnerContext, patch domain.LineItemPatch) (domain.LineItemPatch, error) {
	patch = patch.Normalized()
	if err := patch.Validate(); err != nil {
		return patch, err
	}
	if patch.ParentID != nil {
		return patch, apperrors.Validationf("parent cannot be changed by an update; move the item instead")
	}
	if patch.IsEmpty() {
		return patch, apperrors.Validationf("update contains no changes")
	}
	if err := s.resolveCategory(ctx, owner, patch.CategoryID); err != nil {
		return patch, err
	}
	return patch, nil
}

// updateOne enforces the structural rules for a single item and applies the
// patch. It returns the period the item ends up in.
func (s *lineItemService) updateOne(ctx context.Context, owner domain.OwnerContext, current *domain.LineItem, patch domain.LineItemPatch) (domain.Period, error) {
	if patch.IsGroup != nil {
		switch {
		case !*patch.IsGroup && current.IsGroup:
			count, err := s.lineItemRepo.CountChildren(ctx, owner, current.ID)
			if err != nil {
				s.LogError(ctx, err, "Failed to count children",
					slog.String("line_item_id", current.ID))
				return domain.Period{}, err
			}
			if count > 0 {
				return domain.Period{}, apperrors.NewChildrenError("cannot ungroup an item that still has children", count)
			}
		case *patch.IsGroup && current.IsChild():
			return domain.Period{}, apperrors.NewOperationError("a child item cannot become a group")
		}
	}
	if current.IsChild() {
		if patch.Completed != nil {
			return domain.Period{}, apperrors.NewOperationError("only root items can be marked as completed")
		}
		if patch.Period != nil && *patch.Period != current.Period {
			return domain.Period{}, apperrors.NewOperationError("a child item always follows its group's period")
		}
	}

	if err := s.lineItemRepo.UpdateLineItem(ctx, owner, current.ID, patch, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to update line item",
			slog.String("line_item_id", current.ID))
		return domain.Period{}, err
	}

	s.LogInfo(ctx, "Line item updated", slog.String("line_item_id", current.ID))
	if patch.Period != nil {
		return *patch.Period, nil
	}
	return current.Period, nil
}

func (s *lineItemService) ToggleCompleted(ctx context.Context, owner domain.OwnerContext, itemID string) (*domain.MonthSnapshot, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return nil, err
	}
	current, err := s.findLineItem(ctx, owner, itemID)
	if err != nil {
		return nil, err
	}
	if current.IsChild() {
		return nil, apperrors.NewOperationError("only root items can be marked as completed")
	}

	completed := !current.Completed
	if err := s.lineItemRepo.UpdateLineItem(ctx, owner, current.ID, domain.LineItemPatch{Completed: &completed}, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to toggle line item",
			slog.String("line_item_id", current.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Line item completion toggled",
		slog.String("line_item_id", current.ID),
		slog.Bool("completed", completed))
	return s.snapshot(ctx, owner, current.Period)
}

func (s *lineItemService) Delete(ctx context.Context, owner domain.OwnerContext, itemID string, force bool) (*domain.MonthSnapshot, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return nil, err
	}
	current, err := s.findLineItem(ctx, owner, itemID)
	if err != nil {
		return nil, err
	}

	if current.IsGroup {
		count, err := s.lineItemRepo.CountChildren(ctx, owner, current.ID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count children",
				slog.String("line_item_id", current.ID))
			return nil, err
		}
		if count > 0 && !force {
			return nil, apperrors.NewChildrenError("group still has children; delete with force to remove them too", count)
		}
	}

	if err := s.lineItemRepo.DeleteLineItem(ctx, owner, current.ID); err != nil {
		s.LogError(ctx, err, "Failed to delete line item",
			slog.String("line_item_id", current.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Line item deleted",
		slog.String("line_item_id", current.ID),
		slog.Bool("force", force))
	return s.snapshot(ctx, owner, current.Period)
}

func (s *lineItemService) CreateChild(ctx context.Context, owner domain.OwnerContext, groupID string, draft domain.LineItemDraft) (*domain.MonthSnapshot, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return nil, err
	}
	group, err := s.findLineItem(ctx, owner, groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsGroup {
		return nil, apperrors.NewOperationError("target item is not a group")
	}
	if draft.IsGroup {
		return nil, apperrors.NewOperationError("a child item cannot be a group")
	}

	draft.Kind = group.Kind
	draft.Period = group.Period
	draft.Completed = false
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := s.resolveCategory(ctx, owner, draft.CategoryID); err != nil {
		return nil, err
	}

	child := draft.NewLineItem(s.newID(), owner, s.now())
	parentID := group.ID
	child.ParentID = &parentID
	if err := s.lineItemRepo.SaveLineItem(ctx, child); err != nil {
		s.LogError(ctx, err, "Failed to save child line item",
			slog.String("group_id", group.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Child line item created",
		slog.String("line_item_id", child.ID),
		slog.String("group_id", group.ID))
	return s.snapshot(ctx, owner, group.Period)
}

func (s *lineItemService) MoveChild(ctx context.Context, owner domain.OwnerContext, childID, groupID string) (*domain.MonthSnapshot, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return nil, err
	}
	if childID == groupID {
		return nil, apperrors.NewOperationError("an item cannot be moved into itself")
	}
	child, err := s.findLineItem(ctx, owner, childID)
	if err != nil {
		return nil, err
	}
	group, err := s.findLineItem(ctx, owner, groupID)
	if err != nil {
		return nil, err
	}

	switch {
	case !child.IsChild():
		return nil, apperrors.NewOperationError("only child items can be moved between groups")
	case !group.IsGroup:
		return nil, apperrors.NewOperationError("target item is not a group")
	case group.Kind != child.Kind:
		return nil, apperrors.NewOperationError("target group has a different kind")
	case group.Period != child.Period:
		return nil, apperrors.NewOperationError("target group belongs to a different period")
	}

	if *child.ParentID != group.ID {
		parentID := group.ID
		if err := s.lineItemRepo.UpdateLineItem(ctx, owner, child.ID, domain.LineItemPatch{ParentID: &parentID}, s.now()); err != nil {
			s.LogError(ctx, err, "Failed to move child line item",
				slog.String("line_item_id", child.ID),
				slog.String("group_id", group.ID))
			return nil, err
		}
		s.LogInfo(ctx, "Child line item moved",
			slog.String("line_item_id", child.ID),
			slog.String("from_group_id", *child.ParentID),
			slog.String("to_group_id", group.ID))
	}
	return s.snapshot(ctx, owner, child.Period)
}

func (s *lineItemService) CreateRecurringSeries(ctx context.Context, owner domain.OwnerContext, spec domain.SeriesSpec) (*domain.SeriesCreationResult, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return nil, err
	}
	if spec.Recurrence.Count > s.maxSeriesCount {
		return nil, apperrors.Validationf("a series can have at most %d occurrences", s.maxSeriesCount)
	}
	if err := s.resolveCategory(ctx, owner, spec.Base.CategoryID); err != nil {
		return nil, err
	}

	batch, err := domain.GenerateSeries(spec, owner, s.newID, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.lineItemRepo.SaveLineItems(ctx, batch.Items); err != nil {
		s.LogError(ctx, err, "Failed to save series",
			slog.String("series_id", batch.SeriesID),
			slog.Int("count", len(batch.Items)))
		return nil, err
	}

	s.LogInfo(ctx, "Recurring series created",
		slog.String("series_id", batch.SeriesID),
		slog.String("mode", string(spec.Recurrence.Mode)),
		slog.Int("count", len(batch.Items)))
	return &domain.SeriesCreationResult{Created: len(batch.Items), SeriesID: batch.SeriesID}, nil
}

func (s *lineItemService) GetSeriesInfo(ctx context.Context, owner domain.OwnerContext, itemID string) (*domain.SeriesInfo, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	anchor, err := s.findLineItem(ctx, owner, itemID)
	if err != nil {
		return nil, err
	}
	if !anchor.InSeries() {
		info := domain.SingleItemInfo(*anchor)
		return &info, nil
	}

	items, err := s.lineItemRepo.ListSeriesLineItems(ctx, owner, *anchor.SeriesID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list series line items",
			slog.String("series_id", *anchor.SeriesID))
		return nil, err
	}
	info := domain.SummarizeSeries(*anchor, items)
	return &info, nil
}

func (s *lineItemService) UpdateSeries(ctx context.Context, owner domain.OwnerContext, itemID string, scope domain.SeriesScope, patch domain.LineItemPatch) (*domain.SeriesMutationResult, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return nil, err
	}
	patch, err := s.preparePatch(ctx, owner, patch)
	if err != nil {
		return nil, err
	}
	anchor, err := s.findLineItem(ctx, owner, itemID)
	if err != nil {
		return nil, err
	}

	if !anchor.InSeries() || scope == domain.ScopeThisOnly {
		period, err := s.updateOne(ctx, owner, anchor, patch)
		if err != nil {
			return nil, err
		}
		result := domain.NewSeriesMutationResult([]domain.Period{period})
		return &result, nil
	}

	if patch.Period != nil {
		return nil, apperrors.Validationf("period cannot be changed for several occurrences at once")
	}
	seriesID := *anchor.SeriesID
	filter := domain.FilterForScope(scope, anchor.Period)
	if patch.IsGroup != nil && !*patch.IsGroup {
		count, err := s.lineItemRepo.CountSeriesChildren(ctx, owner, seriesID, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to count series children",
				slog.String("series_id", seriesID))
			return nil, err
		}
		if count > 0 {
			return nil, apperrors.NewChildrenError("cannot ungroup occurrences that still have children", count)
		}
	}

	periods, err := s.lineItemRepo.UpdateSeriesLineItems(ctx, owner, seriesID, filter, patch, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to update series",
			slog.String("series_id", seriesID),
			slog.String("scope", string(scope)))
		return nil, err
	}

	result := domain.NewSeriesMutationResult(periods)
	s.LogInfo(ctx, "Series updated",
		slog.String("series_id", seriesID),
		slog.String("scope", string(scope)),
		slog.Int("affected", result.AffectedCount))
	return &result, nil
}

// DeleteSeries removes the selected occurrences. Groups lose their children
// along with them; GetSeriesInfo is the confirmation step for that.
func (s *lineItemService) DeleteSeries(ctx context.Context, owner domain.OwnerContext, itemID string, scope domain.SeriesScope) (*domain.SeriesMutationResult, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return nil, err
	}
	anchor, err := s.findLineItem(ctx, owner, itemID)
	if err != nil {
		return nil, err
	}

	if !anchor.InSeries() || scope == domain.ScopeThisOnly {
		if err := s.lineItemRepo.DeleteLineItem(ctx, owner, anchor.ID); err != nil {
			s.LogError(ctx, err, "Failed to delete line item",
				slog.String("line_item_id", anchor.ID))
			return nil, err
		}
		s.LogInfo(ctx, "Line item deleted", slog.String("line_item_id", anchor.ID))
		result := domain.NewSeriesMutationResult([]domain.Period{anchor.Period})
		return &result, nil
	}

	seriesID := *anchor.SeriesID
	periods, err := s.lineItemRepo.DeleteSeriesLineItems(ctx, owner, seriesID, domain.FilterForScope(scope, anchor.Period))
	if err != nil {
		s.LogError(ctx, err, "Failed to delete series",
			slog.String("series_id", seriesID),
			slog.String("scope", string(scope)))
		return nil, err
	}

	result := domain.NewSeriesMutationResult(periods)
	s.LogInfo(ctx, "Series deleted",
		slog.String("series_id", seriesID),
		slog.String("scope", string(scope)),
		slog.Int("affected", result.AffectedCount))
	return &result, nil
}

func (s *lineItemService) findLineItem(ctx context.Context, owner domain.OwnerContext, itemID string) (*domain.LineItem, error) {
	item, err := s.lineItemRepo.FindLineItemByID(ctx, owner, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find line item",
				slog.String("line_item_id", itemID))
			return nil, err
		}
		return nil, fmt.Errorf("line item %s: %w", itemID, err)
	}
	return item, nil
}

func (s *lineItemService) resolveCategory(ctx context.Context, owner domain.OwnerContext, categoryID *string) error {
	if categoryID == nil || s.categoryResolver == nil {
		return nil
	}
	_, err := s.categoryResolver.ResolveCategory(ctx, owner, *categoryID)
	return err
}
