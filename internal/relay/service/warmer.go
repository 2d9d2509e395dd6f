package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
)

// DefaultWarmInterval is how often the warmer touches the token cache.
// It is well inside the five minute refresh window, so a healthy cache is
// refreshed before any request has to wait on the token endpoint.
const DefaultWarmInterval = time.Minute

// warmTimeout bounds a single warm-up attempt.
const warmTimeout = 30 * time.Second

// TokenSource hands out a currently valid provider access token.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenWarmer periodically asks the token cache for a token so refreshes
// happen in the background rather than on a browser request.
type TokenWarmer struct {
	Tokens   TokenSource
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewTokenWarmer creates a warmer. A non-positive interval selects
// DefaultWarmInterval.
func NewTokenWarmer(tokens TokenSource, logger *slog.Logger, interval time.Duration) *TokenWarmer {
	if interval <= 0 {
		interval = DefaultWarmInterval
	}

	return &TokenWarmer{
		Tokens:   tokens,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to end it.
func (s *TokenWarmer) Start() {
	go s.run()
	s.Logger.Info("token warmer started", "interval", s.Interval)
}

// Stop ends the worker and waits for an in-flight warm-up to finish.
func (s *TokenWarmer) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("token warmer stopped")
}

func (s *TokenWarmer) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.warm()

	for {
		select {
		case <-ticker.C:
			s.warm()
		case <-s.stopCh:
			return
		}
	}
}

// warm fetches a token, logging failures. Request paths retry on their own.
func (s *TokenWarmer) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	if _, err := s.Tokens.Token(ctx); err != nil {
		s.Logger.Warn("token warm-up failed", "kind", mgusdk.KindOf(err), "error", err)
		return
	}
	s.Logger.Debug("token warm-up ok")
}
