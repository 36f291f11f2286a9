package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/SscSPs/monthly_ledger/internal/dto"
	"github.com/SscSPs/monthly_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workplaceHandler handles HTTP requests related to workplaces.
type workplaceHandler struct {
	workplaceService portssvc.WorkplaceSvcFacade
}

// newWorkplaceHandler creates a new workplaceHandler.
func newWorkplaceHandler(ws portssvc.WorkplaceSvcFacade) *workplaceHandler {
	return &workplaceHandler{
		workplaceService: ws,
	}
}

// RegisterWorkplaceRoutes registers routes for managing workplaces and their members.
// Owner-scoped data routes under /workplaces/:workplace_id are registered separately.
func RegisterWorkplaceRoutes(rg *gin.RouterGroup, ws portssvc.WorkplaceSvcFacade) {
	h := newWorkplaceHandler(ws)

	workplaces := rg.Group("/workplaces")
	{
		workplaces.POST("", h.createWorkplace)
		workplaces.GET("", h.listUserWorkplaces)
		workplaces.POST("/:"+middleware.WorkplaceIDParam+"/members", h.addMember)
	}
}

// createWorkplace godoc
// @Summary Create a new workplace
// @Description Creates a new workplace and assigns the creator as admin.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace body dto.CreateWorkplaceRequest true "Workplace details"
// @Success 201 {object} dto.WorkplaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create workplace"
// @Security BearerAuth
// @Router /workplaces [post]
func (h *workplaceHandler) createWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkplaceRequest
	if !bindJSON(c, &req) {
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	newWorkplace, err := h.workplaceService.CreateWorkplace(c.Request.Context(), req.ToDraft(), creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create workplace")
		return
	}

	logger.Info("Workplace created successfully", slog.String("workplace_id", newWorkplace.WorkplaceID))
	c.JSON(http.StatusCreated, dto.ToWorkplaceResponse(newWorkplace))
}

// listUserWorkplaces godoc
// @Summary List workplaces for current user
// @Description Retrieves the active workplaces the authenticated user belongs to.
// @Tags workplaces
// @Produce  json
// @Success 200 {object} dto.ListWorkplacesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list workplaces"
// @Security BearerAuth
// @Router /workplaces [get]
func (h *workplaceHandler) listUserWorkplaces(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workplaces, err := h.workplaceService.ListUserWorkplaces(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list workplaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkplacesResponse(workplaces))
}

// addMember godoc
// @Summary Add a user to a workplace
// @Description Adds a user to a workplace with a given role, or changes their role. Admins only.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   member body dto.AddMemberRequest true "User ID and Role"
// @Success 201 {object} dto.WorkplaceMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Workplace not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/members [post]
func (h *workplaceHandler) addMember(c *gin.Context) {
	var req dto.AddMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	addingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.workplaceService.AddMember(c.Request.Context(), addingUserID, req.UserID,
		c.Param(middleware.WorkplaceIDParam), domain.WorkplaceRole(req.Role))
	if err != nil {
		respondWithError(c, err, "Failed to add member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkplaceMemberResponse(member))
}
