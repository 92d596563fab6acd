// File path: internal/api/middleware.go
package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dkoushik/prepwell/internal/common"
)

// requestLogger tags every request with an id and logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	logger := common.Logger()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
		logger.Debug("request",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"dur", time.Since(start),
			"remote", r.RemoteAddr)
	})
}
