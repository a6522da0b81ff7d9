package middleware

import (
	"context"
	"net/http"

	"github.com/Kingcxp/auth-service/internal/service"
)

type sessionCtxKey struct{}

// SessionLoader resolves the client's session (issuing a cookie on first
// contact) and stashes the handle in the request context.
func SessionLoader(sessions *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessions.Ensure(w, r)
			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFromContext(ctx context.Context) (*service.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(*service.Session)
	return sess, ok
}
