package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/errors"
)

// ParseUintParam parses a positive integer ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "user_id").
// entityName is used in error messages (e.g., "ticket", "user").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// CurrentUserID returns the authenticated user's ID set by the auth middleware.
func CurrentUserID(c *gin.Context) (uint, error) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, errors.NewUnauthorizedError("missing authentication context")
	}

	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("invalid authentication context")
	}

	return userID, nil
}
