package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/monthly_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

// workplaceService implements the WorkplaceSvcFacade interface
type workplaceService struct {
	BaseService
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
}

// NewWorkplaceService creates a new workplace service with the provided dependencies
func NewWorkplaceService(workplaceRepo portsrepo.WorkplaceRepositoryFacade) portssvc.WorkplaceSvcFacade {
	return &workplaceService{
		workplaceRepo: workplaceRepo,
	}
}

// Ensure workplaceService implements the WorkplaceSvcFacade interface
var _ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// ListUserWorkplaces retrieves all workplaces a user belongs to
func (s *workplaceService) ListUserWorkplaces(ctx context.Context, userID string) ([]domain.Workplace, error) {
	workplaces, err := s.workplaceRepo.ListWorkplacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if workplaces == nil {
		return []domain.Workplace{}, nil
	}

	s.LogDebug(ctx, "Workplaces listed successfully",
		slog.Int("count", len(workplaces)),
		slog.String("user_id", userID))
	return workplaces, nil
}

// CreateWorkplace creates a new workplace with its creator as admin
func (s *workplaceService) CreateWorkplace(ctx context.Context, draft domain.WorkplaceDraft, creatorUserID string) (*domain.Workplace, error) {
	if creatorUserID == "" {
		return nil, apperrors.Validationf("creator is required")
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := nowUTC()
	workplace := domain.Workplace{
		WorkplaceID: uuid.NewString(),
		Name:        strings.TrimSpace(draft.Name),
		Description: draft.Description,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	creator := domain.WorkplaceMember{
		UserID:      creatorUserID,
		WorkplaceID: workplace.WorkplaceID,
		Role:        domain.RoleAdmin,
		JoinedAt:    now,
	}

	if err := s.workplaceRepo.SaveWorkplace(ctx, workplace, creator); err != nil {
		s.LogError(ctx, err, "Failed to save workplace",
			slog.String("workplace_id", workplace.WorkplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Workplace created successfully",
		slog.String("workplace_id", workplace.WorkplaceID),
		slog.String("creator_id", creatorUserID))
	return &workplace, nil
}

// AddMember adds a user to a workplace with a specific role
func (s *workplaceService) AddMember(ctx context.Context, addingUserID, targetUserID, workplaceID string, role domain.WorkplaceRole) (*domain.WorkplaceMember, error) {
	if !role.IsValid() {
		return nil, apperrors.Validationf("unknown role %q", role)
	}
	if targetUserID == "" {
		return nil, apperrors.Validationf("target user is required")
	}
	if err := s.AuthorizeUserAction(ctx, addingUserID, workplaceID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to add members to workplace",
			slog.String("adding_user_id", addingUserID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	membership := domain.WorkplaceMember{
		UserID:      targetUserID,
		WorkplaceID: workplaceID,
		Role:        role,
		JoinedAt:    nowUTC(),
	}
	if err := s.workplaceRepo.AddMember(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to workplace",
			slog.String("target_user_id", targetUserID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "User added to workplace successfully",
		slog.String("target_user_id", targetUserID),
		slog.String("workplace_id", workplaceID),
		slog.String("role", string(role)))
	return &membership, nil
}

// AuthorizeUserAction checks if a user has required permissions for a workplace
func (s *workplaceService) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.WorkplaceRole) error {
	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workplace",
				slog.String("workplace_id", workplaceID))
		}
		return err
	}
	if !workplace.IsActive {
		return apperrors.ErrForbidden
	}

	membership, err := s.workplaceRepo.FindMember(ctx, userID, workplaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of workplace",
				slog.String("user_id", userID),
				slog.String("workplace_id", workplaceID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user workplace role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return err
	}

	if !membership.Role.Satisfies(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}
