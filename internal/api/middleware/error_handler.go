package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"lecturescribe/internal/api/errors"
	"lecturescribe/internal/app/pipeline"
)

// ErrorHandler converts panics into structured error responses.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString("request_id")

		var apiErr *errors.APIError
		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("unhandled error",
				"error", err.Error(),
				"request_id", requestID,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			apiErr = errors.NewInternalError("internal server error")
		default:
			logger.Error("panic recovered", "recovered", recovered, "request_id", requestID)
			apiErr = errors.NewInternalError("internal server error")
		}

		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes the structured response for a handler error. Pipeline
// failures are translated to their API shape first.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr, ok := err.(*errors.APIError)
	if !ok {
		if pipeline.KindOf(err) != "" {
			apiErr = errors.FromPipeline(err)
		} else {
			panic(err)
		}
	}

	apiErr.RequestID = c.GetString("request_id")
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
