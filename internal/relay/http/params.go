package http

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/mgu/pkg/httpx"
)

const invalidBodyMessage = "Invalid JSON in request body"

// ID is a positive provider identifier. Browsers post ids both as JSON
// numbers and as strings; anything that is not a whole number in int64
// range decodes to zero, which handlers treat as missing.
type ID int64

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}

	*id = 0
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*id = ID(n)
		return nil
	}

	// Exponent forms such as 1e3 are still whole numbers.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil
	}
	*id = ID(int64(f))
	return nil
}

// Valid reports whether id names a real record.
func (id ID) Valid() bool { return id > 0 }

// Text is a trimmed scalar field. Numbers and booleans are accepted and
// kept in their JSON spelling.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(strings.TrimSpace(v))
	case float64, bool:
		*t = Text(strings.TrimSpace(string(b)))
	default:
		return errors.New("expected a scalar value")
	}
	return nil
}

func (t Text) String() string { return string(t) }

// decodeBody reads the request JSON into dst, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		httpx.WriteFailure(w, http.StatusBadRequest, invalidBodyMessage)
		return false
	}
	return true
}

// blank reports whether v counts as not provided: nil, empty or "0"
// strings, false, zero numbers and empty collections.
func blank(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(v)
		return s == "" || s == "0"
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}

// truthy coerces a loosely typed checkbox value to a bool. "1", "true",
// "on" and "yes" are true in any case; everything else is false.
func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes":
			return true
		}
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 1
	case float64:
		return v == 1
	}
	return false
}
