package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

// ErrorResponse writes a JSON error body with the given status code.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"error": message,
	})
}

// ErrorResponseWithError maps an application error onto an HTTP response.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, gin.H{
			"error":   appErr.Message,
			"type":    string(appErr.Type),
			"details": appErr.Details,
		})
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}

// GetTokenFromCookie reads a token cookie, returning "" when absent.
func GetTokenFromCookie(c *gin.Context, name string) string {
	token, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return token
}

// GetUserIDFromContext returns the authenticated user ID set by the auth
// middleware. The second return is false when no user is authenticated.
func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}
