package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/SscSPs/monthly_ledger/internal/dto"
	"github.com/SscSPs/monthly_ledger/internal/middleware"
	"github.com/SscSPs/monthly_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// lineItemHandler handles HTTP requests for line items, groups and series.
type lineItemHandler struct {
	lineItemService portssvc.LineItemSvcFacade
	posthogClient   *utils.PosthogClientWrapper
}

func newLineItemHandler(svc portssvc.LineItemSvcFacade, posthogClient *utils.PosthogClientWrapper) *lineItemHandler {
	return &lineItemHandler{lineItemService: svc, posthogClient: posthogClient}
}

// RegisterLineItemRoutes registers the line item routes on an owner-scoped group.
func RegisterLineItemRoutes(rg *gin.RouterGroup, svc portssvc.LineItemSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newLineItemHandler(svc, posthogClient)

	rg.GET("/months/:period", h.listMonth)
	rg.POST("/series", h.createRecurringSeries)

	items := rg.Group("/line-items")
	{
		items.POST("", h.createLineItem)
		items.PATCH("/:id", h.updateLineItem)
		items.DELETE("/:id", h.deleteLineItem)
		items.POST("/:id/toggle", h.toggleCompleted)
		items.POST("/:id/children", h.createChild)
		items.POST("/:id/move", h.moveChild)
		items.GET("/:id/series", h.getSeriesInfo)
		items.PATCH("/:id/series", h.updateSeries)
		items.DELETE("/:id/series", h.deleteSeries)
	}
}

// listMonth godoc
// @Summary Get a month
// @Description Returns the items of a period with group values resolved and the month totals.
// @Tags line-items
// @Produce json
// @Param period path string true "Period (YYYY-MM)"
// @Success 200 {object} domain.MonthSnapshot
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /me/months/{period} [get]
func (h *lineItemHandler) listMonth(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	period, err := domain.ParsePeriod(c.Param("period"))
	if err != nil {
		respondWithError(c, err, "Failed to list month")
		return
	}

	snapshot, err := h.lineItemService.ListMonth(c.Request.Context(), owner, period)
	if err != nil {
		respondWithError(c, err, "Failed to list month")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// createLineItem godoc
// @Summary Create a line item
// @Tags line-items
// @Accept json
// @Produce json
// @Param item body dto.CreateLineItemRequest true "Line item"
// @Success 201 {object} domain.MonthSnapshot
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /me/line-items [post]
func (h *lineItemHandler) createLineItem(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var req dto.CreateLineItemRequest
	if !bindJSON(c, &req) {
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		respondWithError(c, err, "Failed to create line item")
		return
	}

	snapshot, err := h.lineItemService.Create(c.Request.Context(), owner, draft)
	if err != nil {
		respondWithError(c, err, "Failed to create line item")
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// updateLineItem godoc
// @Summary Update a line item
// @Description Applies a partial update. Ungrouping a group that still has children is rejected with 409.
// @Tags line-items
// @Accept json
// @Produce json
// @Param id path string true "Line item ID"
// @Param patch body dto.UpdateLineItemRequest true "Fields to change"
// @Success 200 {object} domain.MonthSnapshot
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]any "Rejected"
// @Security BearerAuth
// @Router /me/line-items/{id} [patch]
func (h *lineItemHandler) updateLineItem(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var req dto.UpdateLineItemRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		respondWithError(c, err, "Failed to update line item")
		return
	}

	snapshot, err := h.lineItemService.Update(c.Request.Context(), owner, c.Param("id"), patch)
	if err != nil {
		respondWithError(c, err, "Failed to update line item")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// toggleCompleted godoc
// @Summary Toggle the completed flag
// @Tags line-items
// @Produce json
// @Param id path string true "Line item ID"
// @Success 200 {object} domain.MonthSnapshot
// @Failure 409 {object} map[string]string "Children cannot be toggled"
// @Security BearerAuth
// @Router /me/line-items/{id}/toggle [post]
func (h *lineItemHandler) toggleCompleted(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	snapshot, err := h.lineItemService.ToggleCompleted(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to toggle line item")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// deleteLineItem godoc
// @Summary Delete a line item
// @Description A group with children is only deleted with force=true; otherwise 409 reports the child count.
// @Tags line-items
// @Produce json
// @Param id path string true "Line item ID"
// @Param force query bool false "Delete the group's children too"
// @Success 200 {object} domain.MonthSnapshot
// @Failure 409 {object} map[string]any "Group has children"
// @Security BearerAuth
// @Router /me/line-items/{id} [delete]
func (h *lineItemHandler) deleteLineItem(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	force := false
	if raw := c.Query("force"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "force must be a boolean"})
			return
		}
		force = parsed
	}

	snapshot, err := h.lineItemService.Delete(c.Request.Context(), owner, c.Param("id"), force)
	if err != nil {
		respondWithError(c, err, "Failed to delete line item")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// createChild godoc
// @Summary Add a child to a group
// @Tags line-items
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param child body dto.CreateChildRequest true "Child item"
// @Success 201 {object} domain.MonthSnapshot
// @Failure 409 {object} map[string]string "Target is not a group"
// @Security BearerAuth
// @Router /me/line-items/{id}/children [post]
func (h *lineItemHandler) createChild(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var req dto.CreateChildRequest
	if !bindJSON(c, &req) {
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		respondWithError(c, err, "Failed to create child")
		return
	}

	snapshot, err := h.lineItemService.CreateChild(c.Request.Context(), owner, c.Param("id"), draft)
	if err != nil {
		respondWithError(c, err, "Failed to create child")
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// moveChild godoc
// @Summary Move a child to another group
// @Tags line-items
// @Accept json
// @Produce json
// @Param id path string true "Child ID"
// @Param target body dto.MoveChildRequest true "Target group"
// @Success 200 {object} domain.MonthSnapshot
// @Failure 409 {object} map[string]string "Incompatible group"
// @Security BearerAuth
// @Router /me/line-items/{id}/move [post]
func (h *lineItemHandler) moveChild(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var req dto.MoveChildRequest
	if !bindJSON(c, &req) {
		return
	}

	snapshot, err := h.lineItemService.MoveChild(c.Request.Context(), owner, c.Param("id"), req.GroupID)
	if err != nil {
		respondWithError(c, err, "Failed to move child")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// createRecurringSeries godoc
// @Summary Create a recurring series
// @Description Generates one item per month, either repeating (monthly) or numbered (installments).
// @Tags series
// @Accept json
// @Produce json
// @Param series body dto.CreateSeriesRequest true "First occurrence and recurrence"
// @Success 201 {object} domain.SeriesCreationResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /me/series [post]
func (h *lineItemHandler) createRecurringSeries(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var req dto.CreateSeriesRequest
	if !bindJSON(c, &req) {
		return
	}
	spec, err := req.ToSpec()
	if err != nil {
		respondWithError(c, err, "Failed to create series")
		return
	}

	result, err := h.lineItemService.CreateRecurringSeries(c.Request.Context(), owner, spec)
	if err != nil {
		respondWithError(c, err, "Failed to create series")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Series created",
		slog.String("series_id", result.SeriesID), slog.Int("created", result.Created))
	middleware.PosthogEvent(c, h.posthogClient, "series_created", map[string]any{
		"mode":  req.Mode,
		"count": result.Created,
	})
	c.JSON(http.StatusCreated, result)
}

// getSeriesInfo godoc
// @Summary Describe the series of an item
// @Description Reports counts per scope so clients can confirm batch operations.
// @Tags series
// @Produce json
// @Param id path string true "Line item ID"
// @Success 200 {object} domain.SeriesInfo
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /me/line-items/{id}/series [get]
func (h *lineItemHandler) getSeriesInfo(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	info, err := h.lineItemService.GetSeriesInfo(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to get series info")
		return
	}
	c.JSON(http.StatusOK, info)
}

// updateSeries godoc
// @Summary Update part of a series
// @Tags series
// @Accept json
// @Produce json
// @Param id path string true "Anchor line item ID"
// @Param scope query string false "apenas_este | este_e_proximos | todos"
// @Param patch body dto.UpdateLineItemRequest true "Fields to change"
// @Success 200 {object} domain.SeriesMutationResult
// @Failure 400 {object} map[string]string "Invalid scope or patch"
// @Security BearerAuth
// @Router /me/line-items/{id}/series [patch]
func (h *lineItemHandler) updateSeries(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	scope, err := domain.ParseSeriesScope(c.Query("scope"))
	if err != nil {
		respondWithError(c, err, "Failed to update series")
		return
	}
	var req dto.UpdateLineItemRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		respondWithError(c, err, "Failed to update series")
		return
	}

	result, err := h.lineItemService.UpdateSeries(c.Request.Context(), owner, c.Param("id"), scope, patch)
	if err != nil {
		respondWithError(c, err, "Failed to update series")
		return
	}
	c.JSON(http.StatusOK, result)
}

// deleteSeries godoc
// @Summary Delete part of a series
// @Tags series
// @Produce json
// @Param id path string true "Anchor line item ID"
// @Param scope query string false "apenas_este | este_e_proximos | todos"
// @Success 200 {object} domain.SeriesMutationResult
// @Failure 400 {object} map[string]string "Invalid scope"
// @Security BearerAuth
// @Router /me/line-items/{id}/series [delete]
func (h *lineItemHandler) deleteSeries(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	scope, err := domain.ParseSeriesScope(c.Query("scope"))
	if err != nil {
		respondWithError(c, err, "Failed to delete series")
		return
	}

	result, err := h.lineItemService.DeleteSeries(c.Request.Context(), owner, c.Param("id"), scope)
	if err != nil {
		respondWithError(c, err, "Failed to delete series")
		return
	}
	c.JSON(http.StatusOK, result)
}
