package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/mgu/pkg/httpx"
	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
	"github.com/aussiebroadwan/mgu/pkg/slogx"
)

// providerStatus picks the relay status for a failed provider call.
// Provider 4xx answers pass through so the browser can react to them;
// a missing configuration is 503; everything else is a bad gateway.
func providerStatus(err error) int {
	var sdkErr *mgusdk.Error
	if !errors.As(err, &sdkErr) {
		return http.StatusBadGateway
	}

	switch sdkErr.Kind {
	case mgusdk.KindConfig:
		return http.StatusServiceUnavailable
	case mgusdk.KindAPI:
		if sdkErr.StatusCode >= 400 && sdkErr.StatusCode < 500 {
			return sdkErr.StatusCode
		}
	}
	return http.StatusBadGateway
}

// providerMessage returns the message safe to show the browser.
func providerMessage(err error) string {
	var sdkErr *mgusdk.Error
	if errors.As(err, &sdkErr) && sdkErr.Message != "" {
		return sdkErr.Message
	}
	return mgusdk.UnknownErrorMessage
}

// respond writes the provider result, or its failure, as an envelope.
func respond(w http.ResponseWriter, r *http.Request, op string, data any, err error) {
	log := slogx.FromContext(r.Context())

	if err != nil {
		status := providerStatus(err)
		log.Error("provider call failed",
			"op", op,
			"kind", mgusdk.KindOf(err),
			"status", status,
			"nonce_id", httpx.NonceIDFromContext(r.Context()),
			"error", err,
		)
		httpx.WriteFailure(w, status, providerMessage(err))
		return
	}

	log.Debug("provider call succeeded", "op", op)
	httpx.WriteSuccess(w, data)
}
