package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// WorkplaceIDParam is the route parameter naming a workplace.
const WorkplaceIDParam = "workplace_id"

// ResolveUserOwner scopes the request to the authenticated user's own data.
// Must run after AuthMiddleware.
func ResolveUserOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		setOwner(c, domain.UserOwner(userID))
	}
}

// ResolveWorkplaceOwner scopes the request to the workplace named in the path.
// Membership is checked by the services, not here.
func ResolveWorkplaceOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		workplaceID := strings.TrimSpace(c.Param(WorkplaceIDParam))
		if workplaceID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Workplace ID is required"})
			return
		}
		setOwner(c, domain.WorkplaceOwner(workplaceID, userID))
	}
}

func setOwner(c *gin.Context, owner domain.OwnerContext) {
	c.Set(string(ownerKey), owner)
	if owner.IsWorkplace() {
		logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("workplace_id", owner.WorkplaceID))
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), logger))
	}
	c.Next()
}
