package mgusdk

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCredentials_NeverPrintSecret(t *testing.T) {
	t.Parallel()

	creds := Credentials{BaseURL: "https://x", ClientID: "APITEST001", ClientSecret: "s3cr3t-value-1234"}

	require.NotContains(t, creds.String(), "s3cr3t-value")
	require.NotContains(t, fmt.Sprintf("%v", creds), "s3cr3t-value")

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("configured", "credentials", creds)
	require.NotContains(t, buf.String(), "s3cr3t-value")
	require.Contains(t, buf.String(), "APITEST001")
}

func TestClient_LogsNeverContainSecrets(t *testing.T) {
	t.Parallel()

	p := newFakeProvider(t)
	p.tokenHandler = nil

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	client := NewClient(p.credentials(), WithLogger(logger))
	_, err := client.GetManufacturers(context.Background(), GadgetMobilePhone)
	require.NoError(t, err)

	require.NotEmpty(t, buf.String())
	require.NotContains(t, buf.String(), "super-secret-value")
	require.NotContains(t, buf.String(), `"tok-1"`)
}

func TestClient_SharedTokenManager(t *testing.T) {
	t.Parallel()

	p := newFakeProvider(t)
	tm := NewTokenManager(p.credentials(), nil, nil, nil)

	a := NewClient(p.credentials(), WithTokenManager(tm))
	b := NewClient(p.credentials(), WithTokenManager(tm))

	_, err := a.GetBasket(context.Background(), 1)
	require.NoError(t, err)
	_, err = b.GetBasket(context.Background(), 2)
	require.NoError(t, err)

	require.Same(t, tm, a.Tokens())
	require.Equal(t, int32(1), p.tokenCalls.Load())
}
