package middleware

import (
	"github.com/SscSPs/monthly_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// ownerKey is the key used to store the resolved OwnerContext in the Gin context.
const ownerKey = contextKey("owner")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID, true
	}
	return "", false
}

// GetOwnerFromContext retrieves the owner resolved by ResolveUserOwner or ResolveWorkplaceOwner.
func GetOwnerFromContext(c *gin.Context) (domain.OwnerContext, bool) {
	val, exists := c.Get(string(ownerKey))
	if !exists {
		return domain.OwnerContext{}, false
	}
	owner, ok := val.(domain.OwnerContext)
	return owner, ok
}
