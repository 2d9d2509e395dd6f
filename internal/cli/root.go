// Package cli implements mguctl, an operator tool that calls the provider
// API directly with the relay's credentials.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/mgu/internal/relay/app"
	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
	"github.com/aussiebroadwan/mgu/pkg/slogx"
	"github.com/spf13/cobra"
)

// Exit codes, so scripts can tell a misconfiguration from an outage.
const (
	ExitCodeSuccess  = 0
	ExitCodeError    = 1
	ExitCodeConfig   = 2
	ExitCodeAuth     = 3
	ExitCodeProvider = 4
)

// options are the global flags shared by every subcommand.
type options struct {
	endpoint     string
	clientID     string
	clientSecret string
	timeout      time.Duration
	output       string
	verbose      bool
}

func (o *options) client(errOut io.Writer) *mgusdk.Client {
	logger := slogx.Discard()
	if o.verbose {
		logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return mgusdk.NewClient(mgusdk.Credentials{
		BaseURL:      o.endpoint,
		ClientID:     o.clientID,
		ClientSecret: o.clientSecret,
	}, mgusdk.WithTimeout(o.timeout), mgusdk.WithLogger(logger))
}

// NewRootCmd builds the mguctl command tree. Flag defaults come from the
// same environment variables the relay reads.
func NewRootCmd() *cobra.Command {
	cfg := app.LoadConfig()
	opts := &options{}

	root := &cobra.Command{
		Use:   "mguctl",
		Short: "Call the MGU gadget insurance API from the command line",
		Long: `mguctl talks to the MGU provider API with OAuth2 client credentials.
Use it to check connectivity and inspect catalogue, customer and basket
data without going through the browser relay.`,
		Version:       app.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validOutput(opts.output)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.endpoint, "endpoint", cfg.Endpoint, "provider base URL (MGU_API_ENDPOINT)")
	pf.StringVar(&opts.clientID, "client-id", cfg.ClientID, "OAuth2 client id (MGU_API_CLIENT_ID)")
	pf.StringVar(&opts.clientSecret, "client-secret", cfg.ClientSecret, "OAuth2 client secret (MGU_API_CLIENT_SECRET)")
	pf.DurationVar(&opts.timeout, "timeout", cfg.HTTPTimeout, "per-request timeout")
	pf.StringVarP(&opts.output, "output", "o", OutputJSON, "output format: json, yaml or table")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(newTestConnectionCmd(opts), newTokenCmd(opts))
	root.AddCommand(newCatalogueCmds(opts)...)
	root.AddCommand(newCustomerCmd(opts), newBasketCmd(opts))

	return root
}

// Execute runs mguctl and exits with a code matching the failure kind.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, mgusdk.ErrConfig):
		return ExitCodeConfig
	case errors.Is(err, mgusdk.ErrAuth):
		return ExitCodeAuth
	case errors.Is(err, mgusdk.ErrAPI), errors.Is(err, mgusdk.ErrTransport), errors.Is(err, mgusdk.ErrDecode):
		return ExitCodeProvider
	}
	return ExitCodeError
}

func (o *options) print(cmd *cobra.Command, v any) error {
	return render(cmd.OutOrStdout(), o.output, v)
}

// run calls fn with a client and prints its result.
func run(cmd *cobra.Command, opts *options, fn func(context.Context, *mgusdk.Client) (any, error)) error {
	data, err := fn(cmd.Context(), opts.client(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	return opts.print(cmd, data)
}
