package middleware

import (
	"net"
	"net/http"
	"strings"

	"clinic-api/pkg/ratelimit"
	"clinic-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware applies a sliding-window limit per client address
// to every route it wraps.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	log     *logrus.Logger
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, log *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		log:     log,
	}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, err := m.limiter.Allow(r.Context(), clientIP(r))
		if err != nil {
			// A broken limiter backend must not take the API down.
			m.log.Warnf("Rate limiter failed, allowing request: %+v", err)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			response.TooManyRequests(w, "Too many requests from this IP, please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the client address, preferring the first entry of
// X-Forwarded-For when the API sits behind a proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
