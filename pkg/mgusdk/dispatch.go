package mgusdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/aussiebroadwan/mgu/pkg/slogx"
	"github.com/tidwall/gjson"
)

// maxAuthRetries is the number of times a dispatch is repeated after the
// provider rejects the bearer token with 401.
const maxAuthRetries = 1

// Dispatch sends an authenticated request to the provider and returns the
// JSON-decoded response body.
//
// For GET requests a non-empty data map is encoded as query parameters. For
// every other method non-empty data is sent as a JSON body. Errors are always
// of type *Error.
func (c *Client) Dispatch(ctx context.Context, method, path string, data any) (any, error) {
	if c.creds.BaseURL == "" || c.creds.ClientID == "" {
		c.logger.Error("provider configuration missing",
			"base_url", c.creds.BaseURL,
			"client_id", c.creds.ClientID,
		)
		return nil, newError(KindConfig, "API endpoint or client id not configured", nil)
	}

	target, body, err := buildRequest(c.creds.BaseURL, method, path, data)
	if err != nil {
		return nil, err
	}

	log := c.logger.With("method", method, "url", target)

	for attempt := 0; ; attempt++ {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			if errors.Is(err, ErrConfig) {
				return nil, err
			}
			log.Warn("failed to obtain access token", "error", err)
			return nil, newError(KindAuth, "failed to obtain valid access token", err)
		}

		status, respBody, err := c.send(ctx, method, target, body, token)
		if err != nil {
			log.Warn("provider request failed", "attempt", attempt, "error", err)
			return nil, newError(KindTransport, err.Error(), err)
		}

		log.Debug("provider response",
			"attempt", attempt,
			"status", status,
			"token", slogx.Truncate(token, 8),
		)

		if status == http.StatusUnauthorized && attempt < maxAuthRetries {
			log.Info("provider rejected access token, refreshing and retrying")
			c.tokens.Invalidate(token)
			continue
		}

		return decodeResponse(status, respBody)
	}
}

// send performs a single HTTP round trip and returns the status and body.
func (c *Client) send(ctx context.Context, method, target string, body []byte, token string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// decodeResponse maps a provider status and body onto a payload or *Error.
func decodeResponse(status int, body []byte) (any, error) {
	if status >= http.StatusBadRequest {
		apiErr := &Error{
			Kind:       KindAPI,
			Message:    UnknownErrorMessage,
			StatusCode: status,
		}

		if parsed, err := decodeJSON(body); err == nil {
			apiErr.Body = parsed
		} else if len(body) > 0 {
			apiErr.Body = string(body)
		}

		if msg := gjson.GetBytes(body, "message"); msg.Exists() && msg.Type != gjson.Null {
			apiErr.Message = msg.String()
		}

		return nil, apiErr
	}

	payload, err := decodeJSON(body)
	if err != nil {
		return nil, newError(KindDecode, "failed to decode response", err)
	}

	return payload, nil
}

// decodeJSON decodes a whole body into generic JSON values. An empty body
// decodes to nil.
func decodeJSON(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// buildRequest resolves the target URL and the JSON body for a dispatch.
func buildRequest(baseURL, method, path string, data any) (string, []byte, error) {
	target := joinURL(baseURL, path)

	if isEmpty(data) {
		return target, nil, nil
	}

	if method == http.MethodGet {
		params, err := queryParams(data)
		if err != nil {
			return "", nil, err
		}
		return appendQuery(target, params), nil, nil
	}

	body, err := json.Marshal(data)
	if err != nil {
		return "", nil, newError(KindDecode, "failed to encode request body", err)
	}
	return target, body, nil
}

// joinURL joins base and path with exactly one slash between them.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// appendQuery merges params into any query string target already carries.
func appendQuery(target string, params url.Values) string {
	base, rawQuery, _ := strings.Cut(target, "?")

	existing, err := url.ParseQuery(rawQuery)
	if err != nil {
		existing = url.Values{}
	}
	for key, values := range params {
		for _, v := range values {
			existing.Add(key, v)
		}
	}

	return base + "?" + existing.Encode()
}

// queryParams stringifies GET data into query parameters.
func queryParams(data any) (url.Values, error) {
	params := url.Values{}

	switch d := data.(type) {
	case url.Values:
		for key, values := range d {
			params[key] = append([]string(nil), values...)
		}
	case map[string]string:
		for key, value := range d {
			params.Set(key, value)
		}
	case map[string]any:
		for key, value := range d {
			params.Set(key, stringify(value))
		}
	default:
		return nil, newError(KindDecode, fmt.Sprintf("unsupported query data type %T", data), nil)
	}

	return params, nil
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// isEmpty reports whether data carries nothing to send.
func isEmpty(data any) bool {
	if data == nil {
		return true
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
