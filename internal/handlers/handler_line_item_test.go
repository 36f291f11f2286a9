package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LineItemHandlerTestSuite struct {
	handlerTestSuite
}

func marchSnapshot() *domain.MonthSnapshot {
	return &domain.MonthSnapshot{
		Period:  domain.NewPeriod(2025, time.March),
		Income:  []domain.EnrichedLineItem{},
		Expense: []domain.EnrichedLineItem{},
		Groups:  []domain.EnrichedLineItem{},
		Totals: domain.Totals{
			TotalIncome: decimal.NewFromInt(5000),
			Balance:     decimal.NewFromInt(5000),
		},
	}
}

// --- Test Cases ---

func (suite *LineItemHandlerTestSuite) TestListMonth_UserOwner() {
	suite.mockLineItemService.On("ListMonth", mock.Anything,
		domain.UserOwner(suite.userID), domain.NewPeriod(2025, time.March),
	).Return(marchSnapshot(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/me/months/2025-03", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal("2025-03", body["period"])
	totals := body["totals"].(map[string]any)
	suite.Equal("5000", totals["totalIncome"])
}

func (suite *LineItemHandlerTestSuite) TestListMonth_WorkplaceOwnerForbidden() {
	suite.mockLineItemService.On("ListMonth", mock.Anything,
		domain.WorkplaceOwner("wp-1", suite.userID), domain.NewPeriod(2025, time.March),
	).Return(nil, fmt.Errorf("authorize: %w", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodGet, "/api/v1/workplaces/wp-1/months/2025-03", nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *LineItemHandlerTestSuite) TestListMonth_InvalidPeriod() {
	w := suite.do(http.MethodGet, "/api/v1/me/months/2025-13", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLineItemService.AssertNotCalled(suite.T(), "ListMonth")
}

func (suite *LineItemHandlerTestSuite) TestCreateLineItem() {
	suite.mockLineItemService.On("Create", mock.Anything, domain.UserOwner(suite.userID),
		mock.MatchedBy(func(d domain.LineItemDraft) bool {
			return d.Kind == domain.Expense && d.Name == "Rent" &&
				d.Amount.Equal(decimal.NewFromInt(1200)) &&
				d.Period == domain.NewPeriod(2025, time.March) &&
				d.DueDate != nil && d.DueDate.Day() == 5
		}),
	).Return(marchSnapshot(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/me/line-items", map[string]any{
		"kind":    "expense",
		"name":    "Rent",
		"amount":  "1200",
		"period":  "2025-03",
		"dueDate": "2025-03-05",
	})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *LineItemHandlerTestSuite) TestCreateLineItem_BindingError() {
	w := suite.do(http.MethodPost, "/api/v1/me/line-items", map[string]any{
		"kind":   "transfer",
		"period": "2025-03",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLineItemService.AssertNotCalled(suite.T(), "Create")
}

func (suite *LineItemHandlerTestSuite) TestUpdateLineItem_NotFound() {
	suite.mockLineItemService.On("Update", mock.Anything, domain.UserOwner(suite.userID), "missing",
		mock.AnythingOfType("domain.LineItemPatch"),
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPatch, "/api/v1/me/line-items/missing", map[string]any{"name": "New"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LineItemHandlerTestSuite) TestUpdateLineItem_UngroupWithChildren() {
	suite.mockLineItemService.On("Update", mock.Anything, domain.UserOwner(suite.userID), "group-1",
		mock.MatchedBy(func(p domain.LineItemPatch) bool { return p.IsGroup != nil && !*p.IsGroup }),
	).Return(nil, apperrors.NewChildrenError("group still has children", 2)).Once()

	w := suite.do(http.MethodPatch, "/api/v1/me/line-items/group-1", map[string]any{"isGroup": false})

	suite.Equal(http.StatusConflict, w.Code)
	suite.EqualValues(2, suite.decode(w)["childCount"])
}

func (suite *LineItemHandlerTestSuite) TestDeleteLineItem_RequiresForceForChildren() {
	suite.mockLineItemService.On("Delete", mock.Anything, domain.UserOwner(suite.userID), "group-1", false).
		Return(nil, apperrors.NewChildrenError("group has children", 3)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/me/line-items/group-1", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.EqualValues(3, suite.decode(w)["childCount"])
}

func (suite *LineItemHandlerTestSuite) TestDeleteLineItem_Force() {
	suite.mockLineItemService.On("Delete", mock.Anything, domain.UserOwner(suite.userID), "group-1", true).
		Return(marchSnapshot(), nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/me/line-items/group-1?force=true", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *LineItemHandlerTestSuite) TestDeleteLineItem_InvalidForce() {
	w := suite.do(http.MethodDelete, "/api/v1/me/line-items/group-1?force=maybe", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LineItemHandlerTestSuite) TestMoveChild() {
	suite.mockLineItemService.On("MoveChild", mock.Anything, domain.UserOwner(suite.userID), "child-1", "group-2").
		Return(marchSnapshot(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/me/line-items/child-1/move", map[string]any{"groupId": "group-2"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *LineItemHandlerTestSuite) TestToggleCompleted_ChildRejected() {
	suite.mockLineItemService.On("ToggleCompleted", mock.Anything, domain.UserOwner(suite.userID), "child-1").
		Return(nil, apperrors.NewOperationError("children cannot be completed")).Once()

	w := suite.do(http.MethodPost, "/api/v1/me/line-items/child-1/toggle", nil)

	suite.Equal(http.StatusConflict, w.Code)
	_, hasCount := suite.decode(w)["childCount"]
	suite.False(hasCount)
}

func (suite *LineItemHandlerTestSuite) TestCreateRecurringSeries() {
	suite.mockLineItemService.On("CreateRecurringSeries", mock.Anything, domain.UserOwner(suite.userID),
		mock.MatchedBy(func(s domain.SeriesSpec) bool {
			return s.Recurrence.Mode == domain.RecurrenceInstallments && s.Recurrence.Count == 12 &&
				s.Base.Name == "Laptop" && s.Base.Period == domain.NewPeriod(2025, time.January)
		}),
	).Return(&domain.SeriesCreationResult{Created: 12, SeriesID: "series-1"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/me/series", map[string]any{
		"kind":   "expense",
		"name":   "Laptop",
		"amount": 250,
		"period": "2025-01",
		"mode":   "installments",
		"count":  12,
	})

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.EqualValues(12, body["created"])
	suite.Equal("series-1", body["seriesId"])
}

func (suite *LineItemHandlerTestSuite) TestGetSeriesInfo() {
	seriesID := "series-1"
	suite.mockLineItemService.On("GetSeriesInfo", mock.Anything, domain.UserOwner(suite.userID), "item-3").
		Return(&domain.SeriesInfo{
			ItemID:     "item-3",
			SeriesID:   &seriesID,
			IsSeries:   true,
			TotalCount: 6,
			Position:   3,
			Scopes:     domain.ScopeCounts{ThisOnly: 1, ThisAndNext: 4, All: 6},
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/me/line-items/item-3/series", nil)

	suite.Equal(http.StatusOK, w.Code)
	scopes := suite.decode(w)["scopes"].(map[string]any)
	suite.EqualValues(4, scopes["este_e_proximos"])
}

func (suite *LineItemHandlerTestSuite) TestUpdateSeries_ScopeAll() {
	suite.mockLineItemService.On("UpdateSeries", mock.Anything, domain.UserOwner(suite.userID), "item-3", domain.ScopeAll,
		mock.MatchedBy(func(p domain.LineItemPatch) bool {
			return p.Amount != nil && p.Amount.Equal(decimal.NewFromInt(150))
		}),
	).Return(&domain.SeriesMutationResult{AffectedCount: 6}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/me/line-items/item-3/series?scope=todos", map[string]any{"amount": "150"})

	suite.Equal(http.StatusOK, w.Code)
	suite.EqualValues(6, suite.decode(w)["affectedCount"])
}

func (suite *LineItemHandlerTestSuite) TestUpdateSeries_UnknownScope() {
	w := suite.do(http.MethodPatch, "/api/v1/me/line-items/item-3/series?scope=some", map[string]any{"amount": "150"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LineItemHandlerTestSuite) TestDeleteSeries_DefaultsToThisOnly() {
	suite.mockLineItemService.On("DeleteSeries", mock.Anything, domain.UserOwner(suite.userID), "item-3", domain.ScopeThisOnly).
		Return(&domain.SeriesMutationResult{AffectedCount: 1}, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/me/line-items/item-3/series", nil)

	suite.Equal(http.StatusOK, w.Code)
}

// --- Run Test Suite ---
func TestLineItemHandler(t *testing.T) {
	suite.Run(t, new(LineItemHandlerTestSuite))
}
