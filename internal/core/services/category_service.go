package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/monthly_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, authorizer portssvc.WorkplaceAuthorizerSvc) portssvc.CategorySvcFacade {
	return &categoryService{
		BaseService:  BaseService{WorkplaceAuthorizer: authorizer},
		categoryRepo: repo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ResolveCategory(ctx context.Context, owner domain.OwnerContext, categoryID string) (*domain.Category, error) {
	if c, ok := domain.FindDefaultCategory(categoryID); ok {
		return &c, nil
	}
	if domain.IsDefaultCategoryID(categoryID) {
		return nil, apperrors.Validationf("unknown category %q", categoryID)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, owner, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Validationf("unknown category %q", categoryID)
		}
		s.LogError(ctx, err, "Failed to resolve category",
			slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, owner domain.OwnerContext, kind *domain.LineItemKind) ([]domain.Category, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if kind != nil && !kind.IsValid() {
		return nil, apperrors.Validationf("unknown kind %q", *kind)
	}

	custom, err := s.categoryRepo.ListCategories(ctx, owner, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories",
			slog.String("owner", owner.String()))
		return nil, err
	}

	categories := domain.DefaultCategories(kind)
	return append(categories, custom...), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, owner domain.OwnerContext, draft domain.CategoryDraft) (*domain.Category, error) {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := nowUTC()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Owner:       owner,
		Name:        strings.TrimSpace(draft.Name),
		Kind:        draft.Kind,
		Color:       draft.Color,
		AuditFields: domain.NewAuditFields(owner.UserID, now),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category",
			slog.String("owner", owner.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Category created",
		slog.String("category_id", category.CategoryID),
		slog.String("kind", string(category.Kind)))
	return &category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, owner domain.OwnerContext, categoryID string) error {
	if err := s.AuthorizeOwner(ctx, owner, domain.RoleMember); err != nil {
		return err
	}
	if domain.IsDefaultCategoryID(categoryID) {
		return apperrors.NewOperationError("built-in categories cannot be deleted")
	}

	if err := s.categoryRepo.DeleteCategory(ctx, owner, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete category",
				slog.String("category_id", categoryID))
		}
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
