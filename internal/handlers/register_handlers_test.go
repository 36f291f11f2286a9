package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/SscSPs/monthly_ledger/internal/handlers"
	"github.com/SscSPs/monthly_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// handlerTestSuite wires the real router against mocked services.
// Each handler suite embeds it.
type handlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockLineItemService  *MockLineItemService
	mockCategoryService  *MockCategoryService
	mockWorkplaceService *MockWorkplaceService
	jwtSecret            string
	userID               string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *handlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *handlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockLineItemService = new(MockLineItemService)
	suite.mockCategoryService = new(MockCategoryService)
	suite.mockWorkplaceService = new(MockWorkplaceService)

	handlers.RegisterRoutes(suite.router, handlers.RouterDeps{
		Config: &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true},
		Services: &portssvc.ServiceContainer{
			LineItem:  suite.mockLineItemService,
			Category:  suite.mockCategoryService,
			Workplace: suite.mockWorkplaceService,
		},
	})
}

func (suite *handlerTestSuite) TearDownTest() {
	suite.mockLineItemService.AssertExpectations(suite.T())
	suite.mockCategoryService.AssertExpectations(suite.T())
	suite.mockWorkplaceService.AssertExpectations(suite.T())
}

func (suite *handlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *handlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

type RouterTestSuite struct {
	handlerTestSuite
}

func (suite *RouterTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/me/months/2025-03", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
