package httpx

import (
	"context"
	"net/http"
	"strings"
)

// AuthCodeHeader is the header participants use to identify themselves.
// The value is the opaque per-user authentication code issued at
// enrollment; there is no session mechanism.
const AuthCodeHeader = "X-Auth-Code"

// AuthCodeMiddleware extracts the caller's authentication code from the
// X-Auth-Code header (or an "Authorization: Bearer" header as a fallback)
// and attaches it to the request context. Resolution of the code to a
// user is left to the handlers so that unknown codes surface through the
// normal validation taxonomy rather than a transport-level rejection.
func AuthCodeMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := strings.TrimSpace(r.Header.Get(AuthCodeHeader))
			if code == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
					code = strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
				}
			}

			if code != "" {
				ctx := context.WithValue(r.Context(), CtxKeyAuthCode, code)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}
