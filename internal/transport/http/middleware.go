package http

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

// RequestLogger logs basic request details and latency.
func RequestLogger(next http.Handler, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Printf(
			"request method=%s path=%s status=%d duration=%s",
			r.Method,
			r.URL.Path,
			rec.status,
			time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// TokenVerifier validates a bearer token and returns the authenticated
// user's id and role.
type TokenVerifier interface {
	VerifyAccessToken(token string) (string, domain.Role, error)
}

type ctxKey int

const (
	ctxKeyUserID ctxKey = iota
	ctxKeyRole
)

// RequireAuth rejects requests without a valid bearer token and stores
// the caller's identity in the request context.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
				return
			}

			userID, role, err := verifier.VerifyAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
			ctx = context.WithValue(ctx, ctxKeyRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireManager gates an already-authenticated route to managers.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if roleFromContext(r.Context()) != domain.RoleManager {
			writeError(w, http.StatusForbidden, codeForbidden, "manager role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyUserID).(string)
	return id
}

func roleFromContext(ctx context.Context) domain.Role {
	role, _ := ctx.Value(ctxKeyRole).(domain.Role)
	return role
}
