package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/mgu/internal/relay/service"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls atomic.Int32
	err   error
}

func (c *countingSource) Token(context.Context) (string, error) {
	c.calls.Add(1)
	return "tok", c.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTokenWarmer(t *testing.T) {
	t.Run("warms immediately and on every tick", func(t *testing.T) {
		src := &countingSource{}
		w := service.NewTokenWarmer(src, discard(), 10*time.Millisecond)

		w.Start()
		require.Eventually(t, func() bool { return src.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
		w.Stop()

		stopped := src.calls.Load()
		time.Sleep(30 * time.Millisecond)
		require.Equal(t, stopped, src.calls.Load())
	})

	t.Run("keeps running after failures", func(t *testing.T) {
		src := &countingSource{err: errors.New("token endpoint down")}
		w := service.NewTokenWarmer(src, discard(), 10*time.Millisecond)

		w.Start()
		require.Eventually(t, func() bool { return src.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
		w.Stop()
	})

	t.Run("defaults the interval", func(t *testing.T) {
		w := service.NewTokenWarmer(&countingSource{}, discard(), 0)
		require.Equal(t, service.DefaultWarmInterval, w.Interval)
	})
}
