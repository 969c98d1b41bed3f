package http

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/tair/recommendation-service/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	DefaultTTL      time.Duration // Default cache TTL
	CacheableStatus []int         // HTTP status codes to cache
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:      30 * time.Second,
		CacheableStatus: []int{http.StatusOK},
	}
}

// CacheMiddleware caches GET responses in Redis. A nil client disables
// caching entirely, so the service runs fine without Redis.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if redisClient == nil || r.Method != http.MethodGet || !strings.HasPrefix(r.URL.Path, "/api/") {
				next.ServeHTTP(w, r)
				return
			}

			cacheKey := generateCacheKey(r)
			ctx := r.Context()

			cached, err := redisClient.Get(ctx, cacheKey).Bytes()
			if err == nil && len(cached) > 0 {
				logger.Debug(ctx).
					Str("path", r.URL.Path).
					Str("cache_key", cacheKey).
					Msg("Cache hit")

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.Write(cached)
				return
			}

			rec := &cachingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			rec.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(rec, r)

			if !isStatusCacheable(rec.statusCode, config.CacheableStatus) {
				return
			}

			if err := redisClient.Set(ctx, cacheKey, rec.body.Bytes(), config.DefaultTTL).Err(); err != nil {
				logger.Warn(ctx).
					Err(err).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
				return
			}

			logger.Debug(ctx).
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Dur("ttl", config.DefaultTTL).
				Int("size", rec.body.Len()).
				Msg("Response cached")
		})
	}
}

// cachingResponseWriter tees the response body so it can be stored.
type cachingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (cw *cachingResponseWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cachingResponseWriter) Write(p []byte) (int, error) {
	cw.body.Write(p)
	return cw.ResponseWriter.Write(p)
}

// generateCacheKey generates a unique cache key for the request
func generateCacheKey(r *http.Request) string {
	keyComponents := fmt.Sprintf("%s:%s:%s",
		r.Method,
		r.URL.Path,
		r.URL.RawQuery,
	)

	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

// isStatusCacheable checks if HTTP status code is cacheable
func isStatusCacheable(status int, cacheableStatus []int) bool {
	for _, s := range cacheableStatus {
		if s == status {
			return true
		}
	}
	return false
}
