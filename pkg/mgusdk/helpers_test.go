package mgusdk

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recordedRequest is what the fake provider saw for one API call.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// fakeProvider serves the token endpoint and records every other request.
type fakeProvider struct {
	server *httptest.Server

	tokenCalls atomic.Int32
	apiCalls   atomic.Int32

	mu       sync.Mutex
	requests []recordedRequest
	forms    []url.Values

	// tokenHandler answers POST /sbauth/oauth/token. Defaults to issuing
	// "tok-<n>" valid for an hour.
	tokenHandler http.HandlerFunc

	// apiHandler answers everything else. Defaults to 200 {"ok":true}.
	apiHandler http.HandlerFunc
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()

	p := &fakeProvider{}
	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == TokenPath {
			n := p.tokenCalls.Add(1)
			_ = r.ParseForm()
			p.mu.Lock()
			p.forms = append(p.forms, r.PostForm)
			p.mu.Unlock()

			if p.tokenHandler != nil {
				p.tokenHandler(w, r)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": "tok-" + itoa(int(n)),
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
			return
		}

		p.apiCalls.Add(1)
		body, _ := io.ReadAll(r.Body)
		p.mu.Lock()
		p.requests = append(p.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		p.mu.Unlock()

		if p.apiHandler != nil {
			p.apiHandler(w, r)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}))
	t.Cleanup(p.server.Close)

	return p
}

func (p *fakeProvider) credentials() Credentials {
	return Credentials{
		BaseURL:      p.server.URL,
		ClientID:     "APITEST001",
		ClientSecret: "super-secret-value",
	}
}

func (p *fakeProvider) lastRequest() recordedRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[len(p.requests)-1]
}

func (p *fakeProvider) allRequests() []recordedRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]recordedRequest(nil), p.requests...)
}

func (p *fakeProvider) lastForm() url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.forms[len(p.forms)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

// decodeBody decodes a recorded JSON body into generic values.
func decodeBody(t *testing.T, body []byte) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("body is not JSON: %v (%q)", err, body)
	}
	return v
}
