package http

import (
	"net/http"

	"github.com/aussiebroadwan/mgu/pkg/httpx"
	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
)

const (
	missingFieldsMessage   = "Missing required fields"
	missingBasketIDMessage = "Missing basket ID"
)

// BasketsHandler drives the basket lifecycle: open, fill, confirm, pay.
type BasketsHandler struct {
	Provider Provider
}

// HandleOpen handles POST /v1/baskets
//
//	@Summary		Open Basket
//	@Description	Opens a basket for a customer with a premium period and loss cover choice.
//	@Tags			Baskets
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		OpenBasketRequest	true	"Customer and cover options"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Missing required fields, Invalid premium period, Invalid loss cover option"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/baskets [post].
func (h *BasketsHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var req OpenBasketRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.CustomerID.Valid() || req.PremiumPeriod == "" || req.IncludeLossCover == "" {
		httpx.WriteFailure(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	period := mgusdk.PremiumPeriod(req.PremiumPeriod)
	if !period.Valid() {
		httpx.WriteFailure(w, http.StatusBadRequest, "Invalid premium period")
		return
	}
	cover := mgusdk.LossCover(req.IncludeLossCover)
	if !cover.Valid() {
		httpx.WriteFailure(w, http.StatusBadRequest, "Invalid loss cover option")
		return
	}

	data, err := h.Provider.OpenBasket(r.Context(), int64(req.CustomerID), period, cover)
	respond(w, r, "open_basket", data, err)
}

// HandleGet handles POST /v1/baskets/get
//
//	@Summary		Get Basket
//	@Description	Returns a basket and its gadgets.
//	@Tags			Baskets
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		BasketRequest	true	"Basket id"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Missing basket ID"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		404		{object}	httpx.Envelope	"provider error message"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/baskets/get [post].
func (h *BasketsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	var req BasketRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.BasketID.Valid() {
		httpx.WriteFailure(w, http.StatusBadRequest, missingBasketIDMessage)
		return
	}

	data, err := h.Provider.GetBasket(r.Context(), int64(req.BasketID))
	respond(w, r, "get_basket", data, err)
}

// HandleAddGadget handles POST /v1/baskets/gadgets. The browser adds one
// gadget at a time.
//
//	@Summary		Add Gadget
//	@Description	Adds one gadget to a basket. The gadget is stamped with the basket id before it is sent.
//	@Tags			Baskets
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		AddGadgetRequest	true	"Basket id and gadget"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Missing required fields"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/baskets/gadgets [post].
func (h *BasketsHandler) HandleAddGadget(w http.ResponseWriter, r *http.Request) {
	var req AddGadgetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.BasketID.Valid() || len(req.GadgetData) == 0 {
		httpx.WriteFailure(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	data, err := h.Provider.AddGadgets(r.Context(), int64(req.BasketID), []map[string]any{req.GadgetData})
	respond(w, r, "add_gadgets", data, err)
}

// HandleConfirm handles POST /v1/baskets/confirm
//
//	@Summary		Confirm Basket
//	@Description	Confirms a basket ready for payment.
//	@Tags			Baskets
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		BasketRequest	true	"Basket id"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Missing basket ID"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/baskets/confirm [post].
func (h *BasketsHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req BasketRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.BasketID.Valid() {
		httpx.WriteFailure(w, http.StatusBadRequest, missingBasketIDMessage)
		return
	}

	data, err := h.Provider.ConfirmBasket(r.Context(), int64(req.BasketID))
	respond(w, r, "confirm_basket", data, err)
}

// HandleDirectDebit handles POST /v1/baskets/direct-debit
//
//	@Summary		Pay By Direct Debit
//	@Description	Pays for a confirmed basket with direct debit details.
//	@Tags			Baskets
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		DirectDebitRequest	true	"Basket id and bank details"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Missing required fields"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/baskets/direct-debit [post].
func (h *BasketsHandler) HandleDirectDebit(w http.ResponseWriter, r *http.Request) {
	var req DirectDebitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.BasketID.Valid() || len(req.DirectDebit) == 0 {
		httpx.WriteFailure(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	data, err := h.Provider.PayByDirectDebit(r.Context(), int64(req.BasketID), req.DirectDebit)
	respond(w, r, "pay_by_direct_debit", data, err)
}
