package services

import (
	"context"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
)

// WorkplaceReaderSvc defines read operations for workplace data
type WorkplaceReaderSvc interface {
	// ListUserWorkplaces retrieves the active workplaces a user belongs to.
	ListUserWorkplaces(ctx context.Context, userID string) ([]domain.Workplace, error)
}

// WorkplaceWriterSvc defines write operations for workplace data
type WorkplaceWriterSvc interface {
	// CreateWorkplace persists a new workplace and makes the creator its admin.
	CreateWorkplace(ctx context.Context, draft domain.WorkplaceDraft, creatorUserID string) (*domain.Workplace, error)
}

// WorkplaceMembershipSvc defines operations for managing workplace membership
type WorkplaceMembershipSvc interface {
	// AddMember adds a user to a workplace. Only workplace admins can add members.
	AddMember(ctx context.Context, addingUserID, targetUserID, workplaceID string, role domain.WorkplaceRole) (*domain.WorkplaceMember, error)
}

// WorkplaceAuthorizerSvc defines operations for workplace authorization
type WorkplaceAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a workplace.
	AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.WorkplaceRole) error
}

// WorkplaceSvcFacade combines all workplace-related service interfaces
type WorkplaceSvcFacade interface {
	WorkplaceReaderSvc
	WorkplaceWriterSvc
	WorkplaceMembershipSvc
	WorkplaceAuthorizerSvc
}
