package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/mgu/pkg/httpx"
	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
	"github.com/aussiebroadwan/mgu/pkg/noncex"
	"github.com/stretchr/testify/require"
)

// call is one recorded Provider invocation.
type call struct {
	Op   string
	Args []any
}

// stubProvider records calls and answers with result or err.
type stubProvider struct {
	mu     sync.Mutex
	calls  []call
	result any
	err    error
}

func (s *stubProvider) record(op string, args ...any) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call{Op: op, Args: args})
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return map[string]any{"ok": true}, nil
}

func (s *stubProvider) last(t *testing.T) call {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.calls, "provider was not called")
	return s.calls[len(s.calls)-1]
}

func (s *stubProvider) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubProvider) GetManufacturers(_ context.Context, gadgetType string) (any, error) {
	return s.record("GetManufacturers", gadgetType)
}

func (s *stubProvider) GetModels(_ context.Context, manufacturerID, gadgetType string) (any, error) {
	return s.record("GetModels", manufacturerID, gadgetType)
}

func (s *stubProvider) GetQuote(_ context.Context, device mgusdk.DeviceData) (any, error) {
	return s.record("GetQuote", device)
}

func (s *stubProvider) GetGadgetPremiums(_ context.Context, manufacturerID, gadgetType, model string) (any, error) {
	return s.record("GetGadgetPremiums", manufacturerID, gadgetType, model)
}

func (s *stubProvider) GetGadgetPremium(_ context.Context, premiumID int64) (any, error) {
	return s.record("GetGadgetPremium", premiumID)
}

func (s *stubProvider) CreateCustomer(_ context.Context, customer map[string]any) (any, error) {
	return s.record("CreateCustomer", customer)
}

func (s *stubProvider) FindCustomer(_ context.Context, customerID int64) (any, error) {
	return s.record("FindCustomer", customerID)
}

func (s *stubProvider) FindCustomerByExternalID(_ context.Context, externalID string) (any, error) {
	return s.record("FindCustomerByExternalID", externalID)
}

func (s *stubProvider) OpenBasket(_ context.Context, customerID int64, period mgusdk.PremiumPeriod, lossCover mgusdk.LossCover) (any, error) {
	return s.record("OpenBasket", customerID, period, lossCover)
}

func (s *stubProvider) GetBasket(_ context.Context, basketID int64) (any, error) {
	return s.record("GetBasket", basketID)
}

func (s *stubProvider) AddGadgets(_ context.Context, basketID int64, gadgets []map[string]any) (any, error) {
	return s.record("AddGadgets", basketID, gadgets)
}

func (s *stubProvider) ConfirmBasket(_ context.Context, basketID int64) (any, error) {
	return s.record("ConfirmBasket", basketID)
}

func (s *stubProvider) PayByDirectDebit(_ context.Context, basketID int64, directDebit map[string]any) (any, error) {
	return s.record("PayByDirectDebit", basketID, directDebit)
}

func (s *stubProvider) CreatePolicy(_ context.Context, policy map[string]any) (any, error) {
	return s.record("CreatePolicy", policy)
}

func (s *stubProvider) TestConnection(_ context.Context) (any, error) {
	return s.record("TestConnection")
}

// relay is a router under test with a valid nonce ready to use.
type relay struct {
	router *Router
	nonce  string
}

func newRelay(t *testing.T, provider Provider) *relay {
	t.Helper()

	nonces, err := noncex.New([]byte("relay-test-secret"), time.Hour)
	require.NoError(t, err)
	n, err := nonces.Issue(NonceAction)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(provider, nonces, "test", "", logger)
	router.ApplyRoutes()

	return &relay{router: router, nonce: n.Value}
}

// post sends body to path with the relay nonce header and a fresh client IP
// so tests never trip the per-IP action limit.
func (r *relay) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return r.postWithNonce(t, path, body, r.nonce)
}

var ipCounter struct {
	mu sync.Mutex
	n  int
}

func nextIP() string {
	ipCounter.mu.Lock()
	defer ipCounter.mu.Unlock()
	ipCounter.n++
	return "10.1." + itoa(ipCounter.n/250) + "." + itoa(ipCounter.n%250+1) + ":5000"
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func (r *relay) postWithNonce(t *testing.T, path string, body any, nonce string) *httptest.ResponseRecorder {
	t.Helper()
	return r.postFrom(t, path, body, nonce, nextIP())
}

// postFrom sends body from the given client address.
func (r *relay) postFrom(t *testing.T, path string, body any, nonce, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr
	if nonce != "" {
		req.Header.Set(httpx.NonceHeader, nonce)
	}

	rec := httptest.NewRecorder()
	r.router.ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) httpx.Envelope {
	t.Helper()
	var env httpx.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}
