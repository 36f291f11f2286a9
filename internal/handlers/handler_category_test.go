package handlers_test

import (
	"net/http"
	"testing"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerTestSuite struct {
	handlerTestSuite
}

func (suite *CategoryHandlerTestSuite) TestListCategories_InvalidKind() {
	w := suite.do(http.MethodGet, "/api/v1/me/categories?kind=transfer", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory() {
	suite.mockCategoryService.On("CreateCategory", mock.Anything, domain.WorkplaceOwner("wp-1", suite.userID),
		domain.CategoryDraft{Name: "Pets", Kind: domain.Expense, Color: "#AABBCC"},
	).Return(&domain.Category{CategoryID: "cat-1", Name: "Pets", Kind: domain.Expense, Color: "#AABBCC"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/workplaces/wp-1/categories", map[string]any{
		"name": "Pets", "kind": "expense", "color": "#AABBCC",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("cat-1", suite.decode(w)["id"])
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_BuiltIn() {
	suite.mockCategoryService.On("DeleteCategory", mock.Anything, domain.UserOwner(suite.userID), "default-food").
		Return(apperrors.NewOperationError("built-in categories cannot be deleted")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/me/categories/default-food", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestListCategories_FilterByKind() {
	income := domain.Income
	suite.mockCategoryService.On("ListCategories", mock.Anything, domain.UserOwner(suite.userID), &income).
		Return(domain.DefaultCategories(&income), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/me/categories?kind=income", nil)

	suite.Equal(http.StatusOK, w.Code)
	categories, ok := suite.decode(w)["categories"].([]any)
	suite.Require().True(ok)
	suite.Len(categories, len(domain.DefaultCategories(&income)))
}

func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
