package handlers_test

import (
	"net/http"
	"testing"

	"github.com/SscSPs/monthly_ledger/internal/apperrors"
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WorkplaceHandlerTestSuite struct {
	handlerTestSuite
}

func (suite *WorkplaceHandlerTestSuite) TestCreateWorkplace() {
	suite.mockWorkplaceService.On("CreateWorkplace", mock.Anything,
		domain.WorkplaceDraft{Name: "Home", Description: "Shared budget"}, suite.userID,
	).Return(&domain.Workplace{WorkplaceID: "wp-1", Name: "Home", IsActive: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/workplaces", map[string]any{"name": "Home", "description": "Shared budget"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("wp-1", suite.decode(w)["workplaceID"])
}

func (suite *WorkplaceHandlerTestSuite) TestAddMember_Forbidden() {
	suite.mockWorkplaceService.On("AddMember", mock.Anything, suite.userID, "user-2", "wp-1", domain.RoleMember).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodPost, "/api/v1/workplaces/wp-1/members", map[string]any{"userID": "user-2", "role": "MEMBER"})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *WorkplaceHandlerTestSuite) TestListUserWorkplaces() {
	suite.mockWorkplaceService.On("ListUserWorkplaces", mock.Anything, suite.userID).
		Return([]domain.Workplace{{WorkplaceID: "wp-1", Name: "Home", IsActive: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/workplaces", nil)

	suite.Equal(http.StatusOK, w.Code)
	workplaces, ok := suite.decode(w)["workplaces"].([]any)
	suite.Require().True(ok)
	suite.Len(workplaces, 1)
}

func TestWorkplaceHandler(t *testing.T) {
	suite.Run(t, new(WorkplaceHandlerTestSuite))
}
