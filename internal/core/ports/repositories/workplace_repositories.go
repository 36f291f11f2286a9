package repositories

import (
	"context"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
)

// WorkplaceReader defines read operations for workplace data
type WorkplaceReader interface {
	// FindWorkplaceByID retrieves a specific workplace by its ID.
	FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)

	// ListWorkplacesByUserID retrieves all workplaces a user belongs to.
	ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error)
}

// WorkplaceWriter defines write operations for workplace data
type WorkplaceWriter interface {
	// SaveWorkplace persists a new workplace together with its creator's admin membership.
	SaveWorkplace(ctx context.Context, workplace domain.Workplace, creator domain.WorkplaceMember) error
}

// WorkplaceMembershipManager defines operations for managing workplace memberships
type WorkplaceMembershipManager interface {
	// AddMember adds a user to a workplace, or changes the role of an existing member.
	AddMember(ctx context.Context, membership domain.WorkplaceMember) error

	// FindMember retrieves the membership of a user in a workplace.
	FindMember(ctx context.Context, userID, workplaceID string) (*domain.WorkplaceMember, error)
}

// WorkplaceRepositoryFacade combines all workplace-related repository interfaces
type WorkplaceRepositoryFacade interface {
	WorkplaceReader
	WorkplaceWriter
	WorkplaceMembershipManager
}
