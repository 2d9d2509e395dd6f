package http

import (
	"net/http"

	"github.com/aussiebroadwan/mgu/pkg/httpx"
	"github.com/aussiebroadwan/mgu/pkg/noncex"
	"github.com/aussiebroadwan/mgu/pkg/slogx"
)

// NonceHandler issues a nonce for action. Browsers fetch one on page load
// and send it with every action request.
//
//	@Summary		Issue Nonce
//	@Description	Issues a short-lived security token bound to the relay's actions.
//	@Description	Send it in the X-Relay-Nonce header or as the nonce body field.
//	@Tags			Security
//	@Produce		json
//	@Success		200	{object}	noncex.Nonce	"nonce, expires_at"
//	@Failure		429	{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		500	{object}	httpx.Envelope	"Unable to issue security token"
//	@Router			/v1/nonce [get].
func NonceHandler(nonces *noncex.Manager, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := nonces.Issue(action)
		if err != nil {
			slogx.FromContext(r.Context()).Error("failed to issue nonce", "error", err)
			httpx.WriteFailure(w, http.StatusInternalServerError, "Unable to issue security token")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, n)
	}
}
