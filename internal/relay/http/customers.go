package http

import (
	"net/http"

	"github.com/aussiebroadwan/mgu/pkg/httpx"
)

// requiredCustomerFields must all be present and non-blank, checked in order.
var requiredCustomerFields = []string{"givenName", "lastName", "email", "mobileNumber", "address1", "postCode"}

// CustomersHandler creates and looks up provider customers.
type CustomersHandler struct {
	Provider Provider
}

// HandleCreate handles POST /v1/customers
//
//	@Summary		Create Customer
//	@Description	Creates a provider customer. marketingOk is coerced to a boolean; 1, on, yes and true are true.
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		CreateCustomerRequest	true	"Customer fields"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Customer data is required, Missing required field: <name>"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		422		{object}	httpx.Envelope	"provider validation message"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/customers [post].
func (h *CustomersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.CustomerData) == 0 {
		httpx.WriteFailure(w, http.StatusBadRequest, "Customer data is required")
		return
	}

	customer := req.CustomerData
	if v, ok := customer["marketingOk"]; ok {
		customer["marketingOk"] = truthy(v)
	}
	for _, field := range requiredCustomerFields {
		if blank(customer[field]) {
			httpx.WriteFailure(w, http.StatusBadRequest, "Missing required field: "+field)
			return
		}
	}

	data, err := h.Provider.CreateCustomer(r.Context(), customer)
	respond(w, r, "create_customer", data, err)
}

// HandleFind handles POST /v1/customers/find. A customer_id wins over an
// external_id when both are sent.
//
//	@Summary		Find Customer
//	@Description	Finds a customer by provider id or by the site's external id.
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		FindCustomerRequest	true	"customer_id or external_id"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Customer ID or external ID is required"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		404		{object}	httpx.Envelope	"provider error message"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/customers/find [post].
func (h *CustomersHandler) HandleFind(w http.ResponseWriter, r *http.Request) {
	var req FindCustomerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	switch {
	case req.CustomerID.Valid():
		data, err := h.Provider.FindCustomer(r.Context(), int64(req.CustomerID))
		respond(w, r, "find_customer", data, err)
	case req.ExternalID != "":
		data, err := h.Provider.FindCustomerByExternalID(r.Context(), req.ExternalID.String())
		respond(w, r, "find_customer_by_external_id", data, err)
	default:
		httpx.WriteFailure(w, http.StatusBadRequest, "Customer ID or external ID is required")
	}
}
