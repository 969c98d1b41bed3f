package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/recommendation-service/pkg/logger"
)

// MiddlewareConfig holds middleware configuration
type MiddlewareConfig struct {
	EnableLogging bool
	EnableTracing bool
}

// DefaultMiddlewareConfig returns default middleware configuration
func DefaultMiddlewareConfig() MiddlewareConfig {
	return MiddlewareConfig{
		EnableLogging: true,
		EnableTracing: true,
	}
}

// RegisterMiddlewares registers all middlewares to the router
func RegisterMiddlewares(router *mux.Router, config MiddlewareConfig) {
	// Logging middleware (first in chain)
	if config.EnableLogging {
		router.Use(LoggingMiddleware)
	}

	// Tracing middleware (second in chain)
	if config.EnableTracing {
		router.Use(func(next http.Handler) http.Handler {
			return TracingMiddleware("http-request", next)
		})
	}
}

// TracingMiddleware wraps HTTP handlers with OpenTelemetry tracing
func TracingMiddleware(operationName string, next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, operationName)
}

// LoggingMiddleware logs HTTP requests with structured logging
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		ctx := r.Context()
		span := trace.SpanFromContext(ctx)
		traceID := "no-trace"
		if span.SpanContext().IsValid() {
			traceID = span.SpanContext().TraceID().String()
		}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		logEvent := logger.WithContext(ctx).Info()
		if ww.statusCode >= 400 {
			logEvent = logger.WithContext(ctx).Error()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.statusCode).
			Dur("duration", duration).
			Int64("duration_ms", duration.Milliseconds()).
			Str("trace_id", traceID).
			Msg("HTTP request completed")
	})
}
