package api

import (
	"poi-viewer/internal/platform/obs"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags each request with an id, attaches a request-scoped logger
// to its context and logs duration and response size once the handler returns.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(requestIDHeader, reqID)

		reqLogger := logger.With().Str("req_id", reqID).Logger()
		ctx := obs.WithRequestID(c.Request.Context(), reqID)
		ctx = reqLogger.WithContext(ctx)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		reqLogger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.RequestURI()).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Int64("dur_ms", time.Since(start).Milliseconds()).
			Msg("request")
	}
}
