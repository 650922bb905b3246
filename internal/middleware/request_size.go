package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"supply-chain-viz/internal/logger"
	"supply-chain-viz/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps JSON payloads when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// BodyLimitMiddleware rejects declared oversized bodies up front and caps
// streamed ones, whose overflow surfaces as *http.MaxBytesError on read.
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			RespondBodyTooLarge(c, maxBytes)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// IsBodyTooLarge reports whether err came from reading past the body limit.
func IsBodyTooLarge(err error) (int64, bool) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return maxErr.Limit, true
	}
	return 0, false
}

// RespondBodyTooLarge aborts with 413 and records the rejected request.
func RespondBodyTooLarge(c *gin.Context, limit int64) {
	logger.WithRequestID(GetRequestID(c)).Warn("Request body too large",
		zap.String("path", c.Request.URL.Path),
		zap.Int64("content_length", c.Request.ContentLength),
		zap.Int64("limit", limit),
	)
	utils.ErrorResponse(c, http.StatusRequestEntityTooLarge,
		"Request body exceeds "+strconv.FormatInt(limit, 10)+" bytes")
	c.Abort()
}
