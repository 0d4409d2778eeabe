package httpx

import "context"

type ctxKey string

// CtxKeyAuthCode carries the opaque authentication code presented by the
// caller, as extracted by AuthCodeMiddleware.
const CtxKeyAuthCode ctxKey = "auth_code"

// AuthCodeFromContext returns the caller's authentication code, or an
// empty string if the request carried none.
func AuthCodeFromContext(ctx context.Context) string {
	if code, ok := ctx.Value(CtxKeyAuthCode).(string); ok {
		return code
	}
	return ""
}
