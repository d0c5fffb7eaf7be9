package middleware

import (
	"errors"
	"net/http"

	"go-internship-gateway/internal/delivery/http/response"
	"go-internship-gateway/internal/usecase"
	"go-internship-gateway/pkg/apperror"
	"go-internship-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			var invalid *usecase.InvalidRecordError
			if errors.As(err, &invalid) {
				response.Error(c, http.StatusBadRequest, "Application failed validation", invalid.Verdict.Fields)
				return
			}

			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed", "path", c.FullPath(), "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}

			// Never expose internal error details to clients; log server-side
			// and send a generic message.
			logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
