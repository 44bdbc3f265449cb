package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/Shivarajkushals/Dashboard/pkg/apiErrors"
)

// RateLimit limita as requisições por IP por minuto. Zero ou negativo desabilita o limite.
func RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "too many requests")
		}),
	)
}
