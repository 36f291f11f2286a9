package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/monthly_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware tracks successful mutations (anything but GET/HEAD/OPTIONS) with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || !isMutation(c.Request.Method) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// e.g. "/api/v1/me/line-items/:id/series" -> "api_v1_me_line-items_:id_series"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if owner, ok := GetOwnerFromContext(c); ok && owner.IsWorkplace() {
			props["workplace_id"] = owner.WorkplaceID
		}
		if scope := c.Query("scope"); scope != "" {
			props["scope"] = scope
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a custom event for the authenticated user.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	posthogClient.Enqueue(userID, eventName, properties)
}

func isMutation(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}
