package auth

import (
	"context"
	"net/http"
	"strings"

	"vetgate/internal/web"
)

type contextKey string

const subjectContextKey contextKey = "vetgate_subject"

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey, subject)
}

func SubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectContextKey).(string)
	return s, ok
}

// Middleware rejects requests without a valid bearer token and stores the
// token's subject in the request context.
func Middleware(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				web.Detail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			subject, err := svc.Authorize(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				web.Detail(w, http.StatusUnauthorized, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
		})
	}
}
