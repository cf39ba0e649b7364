package middleware

import (
	"net/http"
	"runtime/debug"

	"clinic-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware converts an escaped panic into a generic 500.
// A failed request never crashes the server and never leaks internals.
type RecoveryMiddleware struct {
	log *logrus.Logger
}

func NewRecoveryMiddleware(log *logrus.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log}
}

func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.log.Errorf("Panic handling %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				response.InternalServerError(w, "Something went wrong!")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
