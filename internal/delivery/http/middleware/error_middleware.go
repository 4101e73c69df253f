package middleware

import (
	"errors"
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// Outside production the underlying cause is included as "stack".
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		code := http.StatusInternalServerError
		message := "Internal Server Error"

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			code = appErr.Code
			message = appErr.Message
		}
		if code >= http.StatusInternalServerError {
			logger.Log.Error("Request failed",
				"error", err,
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"),
			)
		}

		if production {
			response.Error(c, code, message, nil)
			return
		}
		stack := err.Error()
		if appErr != nil && appErr.Err != nil {
			stack = appErr.Err.Error()
		}
		response.ErrorWithStack(c, code, message, stack)
	}
}
