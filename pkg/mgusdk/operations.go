package mgusdk

import (
	"context"
	"maps"
	"net/http"
)

// Provider resource paths.
const (
	pathNewCustomer              = "/sbapi/v1/newCustomer"
	pathFindCustomer             = "/sbapi/v1/findCustomer"
	pathFindCustomerByExternalID = "/sbapi/v1/findCustomerByExternalId"
	pathOpenBasket               = "/sbapi/v1/openBasket"
	pathGetBasket                = "/sbapi/v1/getBasket"
	pathAddGadgets               = "/sbapi/v1/addGadgets"
	pathManufacturers            = "/sbapi/v1/manufacturers"
	pathModels                   = "/sbapi/v1/models"
	pathGadgetPremium            = "/sbapi/v1/gadgetPremium"
	pathGadgetPremiums           = "/sbapi/v1/gadgetPremiums"
	pathConfirm                  = "/sbapi/v1/confirm"
	pathPayByDirectDebit         = "/sbapi/v1/payByDirectDebit"
	pathPolicies                 = "/sbapi/v1/policies"
)

// ============================================================================
// Customers
// ============================================================================

// CreateCustomer registers a customer. customer is sent verbatim.
func (c *Client) CreateCustomer(ctx context.Context, customer map[string]any) (any, error) {
	return c.Dispatch(ctx, http.MethodPost, pathNewCustomer, customer)
}

// FindCustomer looks up a customer by provider id.
func (c *Client) FindCustomer(ctx context.Context, customerID int64) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathFindCustomer, map[string]any{
		"customerId": customerID,
	})
}

// FindCustomerByExternalID looks up a customer by the caller's own id.
func (c *Client) FindCustomerByExternalID(ctx context.Context, externalID string) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathFindCustomerByExternalID, map[string]any{
		"externalId": externalID,
	})
}

// ============================================================================
// Baskets
// ============================================================================

// OpenBasket opens a basket for a customer.
func (c *Client) OpenBasket(ctx context.Context, customerID int64, period PremiumPeriod, lossCover LossCover) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathOpenBasket, map[string]any{
		"customerId":       customerID,
		"premiumPeriod":    period,
		"includeLossCover": lossCover,
	})
}

// GetBasket fetches an existing basket.
func (c *Client) GetBasket(ctx context.Context, basketID int64) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathGetBasket, map[string]any{
		"basketId": basketID,
	})
}

// AddGadgets adds gadgets to a basket. Each gadget is stamped with basketId;
// the caller's maps are not modified.
func (c *Client) AddGadgets(ctx context.Context, basketID int64, gadgets []map[string]any) (any, error) {
	stamped := make([]map[string]any, 0, len(gadgets))
	for _, gadget := range gadgets {
		g := make(map[string]any, len(gadget)+1)
		maps.Copy(g, gadget)
		g["basketId"] = basketID
		stamped = append(stamped, g)
	}

	return c.Dispatch(ctx, http.MethodPost, pathAddGadgets, stamped)
}

// ConfirmBasket confirms a basket ready for payment.
func (c *Client) ConfirmBasket(ctx context.Context, basketID int64) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathConfirm, map[string]any{
		"basketId": basketID,
	})
}

// PayByDirectDebit pays for a basket by direct debit.
func (c *Client) PayByDirectDebit(ctx context.Context, basketID int64, directDebit map[string]any) (any, error) {
	return c.Dispatch(ctx, http.MethodPost, pathPayByDirectDebit, map[string]any{
		"basketId":    basketID,
		"directDebit": directDebit,
	})
}

// ============================================================================
// Catalogue and premiums
// ============================================================================

// GetManufacturers lists manufacturers for a gadget type (e.g. "MobilePhone").
func (c *Client) GetManufacturers(ctx context.Context, gadgetType string) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathManufacturers, map[string]any{
		"GadgetType": gadgetType,
	})
}

// GetModels lists models for a manufacturer and gadget type.
func (c *Client) GetModels(ctx context.Context, manufacturerID, gadgetType string) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathModels, map[string]any{
		"ManufacturerId": manufacturerID,
		"GadgetType":     gadgetType,
	})
}

// GetGadgetPremium fetches a single premium.
func (c *Client) GetGadgetPremium(ctx context.Context, premiumID int64) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathGadgetPremium, map[string]any{
		"premiumId": premiumID,
	})
}

// GetGadgetPremiums lists premiums for a model.
func (c *Client) GetGadgetPremiums(ctx context.Context, manufacturerID, gadgetType, model string) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathGadgetPremiums, map[string]any{
		"ManufacturerId": manufacturerID,
		"GadgetType":     gadgetType,
		"Model":          model,
	})
}

// GetQuote returns premiums for a device.
func (c *Client) GetQuote(ctx context.Context, device DeviceData) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathGadgetPremiums, map[string]any{
		"ManufacturerId": device.ManufacturerID,
		"GadgetType":     device.GadgetType,
		"Model":          device.Model,
	})
}

// ============================================================================
// Policies
// ============================================================================

// CreatePolicy creates a policy. policy is sent verbatim.
func (c *Client) CreatePolicy(ctx context.Context, policy map[string]any) (any, error) {
	return c.Dispatch(ctx, http.MethodPost, pathPolicies, policy)
}

// TestConnection performs an unparameterised manufacturers lookup to check
// credentials and reachability.
func (c *Client) TestConnection(ctx context.Context) (any, error) {
	return c.Dispatch(ctx, http.MethodGet, pathManufacturers, nil)
}
