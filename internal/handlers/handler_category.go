package handlers

import (
	"net/http"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/SscSPs/monthly_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// RegisterCategoryRoutes registers the category routes on an owner-scoped group.
func RegisterCategoryRoutes(rg *gin.RouterGroup, svc portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: svc}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Description Lists the built-in categories followed by the owner's own.
// @Tags categories
// @Produce json
// @Param kind query string false "income | expense"
// @Success 200 {object} dto.ListCategoriesResponse
// @Security BearerAuth
// @Router /me/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var kind *domain.LineItemKind
	if raw := c.Query("kind"); raw != "" {
		k := domain.LineItemKind(raw)
		if !k.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be income or expense"})
			return
		}
		kind = &k
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), owner, kind)
	if err != nil {
		respondWithError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} map[string]string "Name already used"
// @Security BearerAuth
// @Router /me/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), owner, req.ToDraft())
	if err != nil {
		respondWithError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(*category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Items using the category lose it. Built-in categories cannot be deleted.
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Built-in category"
// @Security BearerAuth
// @Router /me/categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), owner, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}
