package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
	"github.com/aussiebroadwan/mgu/pkg/slogx"
	"github.com/spf13/cobra"
)

func newTestConnectionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "test-connection",
		Short: "Authenticate and fetch the manufacturer list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.client(cmd.ErrOrStderr()).TestConnection(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Connection successful")
			return nil
		},
	}
}

func newTokenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Fetch an access token and show its expiry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := opts.client(cmd.ErrOrStderr()).Tokens()
			token, err := tokens.Token(cmd.Context())
			if err != nil {
				return err
			}
			return opts.print(cmd, map[string]any{
				"token":      slogx.Truncate(token, 8),
				"expires_at": tokens.ExpiresAt().UTC().Format(time.RFC3339),
			})
		},
	}
}

func newCatalogueCmds(opts *options) []*cobra.Command {
	var gadgetType, manufacturerID, model string

	manufacturers := &cobra.Command{
		Use:   "manufacturers",
		Short: "List manufacturers for a gadget type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *mgusdk.Client) (any, error) {
				return c.GetManufacturers(ctx, gadgetType)
			})
		},
	}
	manufacturers.Flags().StringVar(&gadgetType, "type", mgusdk.GadgetMobilePhone, "gadget type")

	models := &cobra.Command{
		Use:   "models",
		Short: "List models for a manufacturer and gadget type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *mgusdk.Client) (any, error) {
				return c.GetModels(ctx, manufacturerID, gadgetType)
			})
		},
	}
	models.Flags().StringVar(&manufacturerID, "manufacturer", "", "manufacturer id")
	models.Flags().StringVar(&gadgetType, "type", mgusdk.GadgetMobilePhone, "gadget type")
	_ = models.MarkFlagRequired("manufacturer")

	quote := &cobra.Command{
		Use:   "quote",
		Short: "Quote premiums for a device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *mgusdk.Client) (any, error) {
				return c.GetQuote(ctx, mgusdk.DeviceData{
					ManufacturerID: manufacturerID,
					GadgetType:     gadgetType,
					Model:          model,
				})
			})
		},
	}
	quote.Flags().StringVar(&manufacturerID, "manufacturer", "", "manufacturer id")
	quote.Flags().StringVar(&gadgetType, "type", mgusdk.GadgetMobilePhone, "gadget type")
	quote.Flags().StringVar(&model, "model", "", "model name")
	_ = quote.MarkFlagRequired("manufacturer")
	_ = quote.MarkFlagRequired("model")

	premium := &cobra.Command{
		Use:   "premium <premium-id>",
		Short: "Show one gadget premium",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, c *mgusdk.Client) (any, error) {
				return c.GetGadgetPremium(ctx, id)
			})
		},
	}

	return []*cobra.Command{manufacturers, models, quote, premium}
}

func newCustomerCmd(opts *options) *cobra.Command {
	customer := &cobra.Command{
		Use:   "customer",
		Short: "Look up provider customers",
	}

	var external bool
	get := &cobra.Command{
		Use:   "get <customer-id>",
		Short: "Find a customer by provider id, or by external id with --external",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if external {
				return run(cmd, opts, func(ctx context.Context, c *mgusdk.Client) (any, error) {
					return c.FindCustomerByExternalID(ctx, args[0])
				})
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, c *mgusdk.Client) (any, error) {
				return c.FindCustomer(ctx, id)
			})
		},
	}
	get.Flags().BoolVar(&external, "external", false, "treat the argument as an external id")

	customer.AddCommand(get)
	return customer
}

func newBasketCmd(opts *options) *cobra.Command {
	basket := &cobra.Command{
		Use:   "basket",
		Short: "Inspect and confirm baskets",
	}

	get := &cobra.Command{
		Use:   "get <basket-id>",
		Short: "Show a basket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, c *mgusdk.Client) (any, error) {
				return c.GetBasket(ctx, id)
			})
		},
	}

	confirm := &cobra.Command{
		Use:   "confirm <basket-id>",
		Short: "Confirm a basket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, c *mgusdk.Client) (any, error) {
				return c.ConfirmBasket(ctx, id)
			})
		},
	}

	basket.AddCommand(get, confirm)
	return basket
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
