package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

var ErrPanic = errors.New("recovered from panic")

func (s *Server) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now().UTC()

		c.Next()

		var traceID string

		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.IsValid() {
			traceID = sc.TraceID().String()
		}

		if spanTraceID := uuid.UUID(trace.SpanContextFromContext(c.Request.Context()).TraceID()); spanTraceID != uuid.Nil {
			traceID = spanTraceID.String()
		}

		s.l.LogInfo(
			"type: access, method: %s, url: %s, status: %d, userAgent: %s, traceID: %s, latency: %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.Request.Header.Get("User-Agent"),
			traceID,
			time.Since(start),
		)
	}
}

func (s *Server) recoverMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if re := recover(); re != nil {
				err, ok := re.(error)
				if !ok {
					err = fmt.Errorf("%v: %w", re, ErrPanic)
				}

				s.l.LogErrorf("type: panic, error: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   http.StatusText(http.StatusInternalServerError),
				})
			}
		}()

		c.Next()
	}
}
