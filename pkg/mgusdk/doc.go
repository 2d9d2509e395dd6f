/*
Package mgusdk is a client for the MGU gadget insurance API.

# Overview

A Client authenticates with the OAuth2 client-credentials grant, caches the
bearer token in a TokenManager, and exposes the provider's operations as
methods:

	client := mgusdk.NewClient(mgusdk.Credentials{
		BaseURL:      "https://sandbox.api.mygadgetumbrella.com",
		ClientID:     "APITEST001",
		ClientSecret: secret,
	}, mgusdk.WithLogger(logger), mgusdk.WithTimeout(15*time.Second))

	manufacturers, err := client.GetManufacturers(ctx, mgusdk.GadgetMobilePhone)

# Token Management

The token is fetched lazily on the first call and reused until it is within
RefreshSkew (five minutes) of its provider-declared expiry. Concurrent callers
that find the token stale share a single refresh request.

When the provider answers 401, the token is invalidated and the request is
repeated once with a fresh token and the original payload. A second 401 is
returned to the caller.

# Results

Every operation returns the JSON-decoded response body as an any
(map[string]any, []any, string, float64, bool or nil) or an *Error:

	quote, err := client.GetQuote(ctx, device)
	switch {
	case errors.Is(err, mgusdk.ErrConfig):
		// credentials missing, nothing was sent
	case errors.Is(err, mgusdk.ErrAPI):
		var apiErr *mgusdk.Error
		errors.As(err, &apiErr)
		fmt.Println(apiErr.StatusCode, apiErr.Message)
	}

# Thread Safety

Client and TokenManager are safe for concurrent use.
*/
package mgusdk
