package respond

import (
	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/shared/telemetry"
)

// ErrorResponse is the failure envelope every handler returns. Clients key
// off the `success` flag and show `message`; `code` is a stable machine tag.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Error sends a standardized failure envelope and aborts the request.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Code:    code,
		Message: message,
		Errors:  details,
	})
}
