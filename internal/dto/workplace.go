package dto

import (
	"time"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
)

// --- Workplace DTOs ---

// CreateWorkplaceRequest defines data for creating a new workplace.
type CreateWorkplaceRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// ToDraft converts the request into a domain draft.
func (r CreateWorkplaceRequest) ToDraft() domain.WorkplaceDraft {
	return domain.WorkplaceDraft{Name: r.Name, Description: r.Description}
}

// WorkplaceResponse defines data returned for a workplace.
type WorkplaceResponse struct {
	WorkplaceID   string    `json:"workplaceID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID
}

// ToWorkplaceResponse converts domain.Workplace to DTO.
func ToWorkplaceResponse(w *domain.Workplace) WorkplaceResponse {
	return WorkplaceResponse{
		WorkplaceID:   w.WorkplaceID,
		Name:          w.Name,
		Description:   w.Description,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt,
		CreatedBy:     w.CreatedBy,
		LastUpdatedAt: w.LastUpdatedAt,
		LastUpdatedBy: w.LastUpdatedBy,
	}
}

// ListWorkplacesResponse wraps a list of workplaces.
type ListWorkplacesResponse struct {
	Workplaces []WorkplaceResponse `json:"workplaces"`
}

// ToListWorkplacesResponse converts a slice of domain.Workplace to DTO.
func ToListWorkplacesResponse(ws []domain.Workplace) ListWorkplacesResponse {
	list := make([]WorkplaceResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkplaceResponse(&ws[i])
	}
	return ListWorkplacesResponse{Workplaces: list}
}

// --- Workplace Membership DTOs ---

// AddMemberRequest defines data for adding a user to a workplace.
type AddMemberRequest struct {
	UserID string `json:"userID" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// WorkplaceMemberResponse defines data returned about a user's membership.
type WorkplaceMemberResponse struct {
	UserID      string    `json:"userID"`
	WorkplaceID string    `json:"workplaceID"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// ToWorkplaceMemberResponse converts domain.WorkplaceMember to DTO.
func ToWorkplaceMemberResponse(m *domain.WorkplaceMember) WorkplaceMemberResponse {
	return WorkplaceMemberResponse{
		UserID:      m.UserID,
		WorkplaceID: m.WorkplaceID,
		Role:        string(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}
