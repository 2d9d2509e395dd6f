package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/aussiebroadwan/mgu/pkg/httpx"
	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
	"golang.org/x/sync/singleflight"
)

const (
	// readinessTimeout bounds the provider check behind /readyz.
	readinessTimeout = 10 * time.Second

	// readinessTTL is how long a provider check result is reused.
	readinessTTL = 15 * time.Second
)

// HealthResponse is the body of /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of the relay's dependencies.
type HealthChecks struct {
	Provider string `json:"provider"`
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness endpoint returning basic relay status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the process is running and never calls the provider
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ProviderCheck runs TestConnection at most once per readinessTTL, sharing
// one in-flight check between concurrent callers.
type ProviderCheck struct {
	provider Provider
	ttl      time.Duration
	now      func() time.Time

	group singleflight.Group

	mu        sync.Mutex
	checkedAt time.Time
	err       error
}

func NewProviderCheck(provider Provider, ttl time.Duration) *ProviderCheck {
	return &ProviderCheck{provider: provider, ttl: ttl, now: time.Now}
}

// Check returns the last result while it is younger than ttl and
// calls the provider otherwise.
func (c *ProviderCheck) Check(ctx context.Context) error {
	c.mu.Lock()
	if !c.checkedAt.IsZero() && c.now().Sub(c.checkedAt) < c.ttl {
		err := c.err
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	ch := c.group.DoChan("provider", func() (any, error) {
		checkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), readinessTimeout)
		defer cancel()

		_, err := c.provider.TestConnection(checkCtx)

		c.mu.Lock()
		c.checkedAt, c.err = c.now(), err
		c.mu.Unlock()
		return nil, err
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness endpoint returning relay status and the result of an authenticated provider call
//	@Description	The provider result is cached for 15 seconds so readiness checks never translate one-to-one into upstream calls
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version, checks"
//	@Failure		429	{object}	httpx.Envelope	"success=false, error"
//	@Failure		503	{object}	HealthResponse	"status, uptime, version, checks - provider unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, provider *ProviderCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &HealthChecks{Provider: "ok"}
		status, code := "ok", http.StatusOK

		if err := provider.Check(r.Context()); err != nil {
			kind := string(mgusdk.KindOf(err))
			if kind == "" {
				kind = "unavailable"
			}
			checks.Provider = "error: " + kind
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
