package httpx

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/aussiebroadwan/mgu/pkg/noncex"
	"github.com/aussiebroadwan/mgu/pkg/slogx"
	"github.com/tidwall/gjson"
)

// NonceHeader carries the relay nonce on browser requests.
const NonceHeader = "X-Relay-Nonce"

// InvalidNonceMessage is returned to the browser for any nonce failure.
const InvalidNonceMessage = "Invalid security token"

// NonceVerifier checks a nonce for an action.
type NonceVerifier interface {
	Verify(value, action string) (*noncex.Claims, error)
}

type ctxKey string

const ctxKeyNonceID ctxKey = "nonce_id"

// NonceIDFromContext returns the jti of the nonce that admitted the request.
func NonceIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyNonceID).(string); ok {
		return v
	}
	return ""
}

// RequireNonce rejects requests without a valid nonce for action. The
// nonce is read from NonceHeader, or from a top-level "nonce" field of a
// JSON body. The body is buffered and restored for the next handler.
func RequireNonce(v NonceVerifier, action string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			value := r.Header.Get(NonceHeader)
			if value == "" && r.Body != nil {
				body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
				_ = r.Body.Close()
				if err != nil {
					WriteFailure(w, http.StatusBadRequest, "Unable to read request body")
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
				value = gjson.GetBytes(body, "nonce").String()
			}

			claims, err := v.Verify(value, action)
			if err != nil {
				log.Warn("nonce rejected", "error", err)
				WriteFailure(w, http.StatusForbidden, InvalidNonceMessage)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyNonceID, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
