package http

import (
	"net/http"

	"github.com/aussiebroadwan/mgu/pkg/httpx"
	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
)

const deviceFieldsRequired = "Manufacturer ID, Gadget Type, and Model are required"

// CatalogueHandler serves manufacturer, model and premium lookups.
type CatalogueHandler struct {
	Provider Provider
}

// HandleManufacturers handles POST /v1/manufacturers
//
//	@Summary		List Manufacturers
//	@Description	Lists the provider's manufacturers for a gadget type.
//	@Tags			Catalogue
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		ManufacturersRequest	true	"Gadget type"
//	@Success		200		{object}	httpx.Envelope			"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope			"Gadget type is required"
//	@Failure		403		{object}	httpx.Envelope			"Invalid security token"
//	@Failure		429		{object}	httpx.Envelope			"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope			"provider unreachable or failed"
//	@Failure		503		{object}	httpx.Envelope			"provider credentials not configured"
//	@Router			/v1/manufacturers [post].
func (h *CatalogueHandler) HandleManufacturers(w http.ResponseWriter, r *http.Request) {
	var req ManufacturersRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.GadgetType == "" {
		httpx.WriteFailure(w, http.StatusBadRequest, "Gadget type is required")
		return
	}

	data, err := h.Provider.GetManufacturers(r.Context(), req.GadgetType.String())
	respond(w, r, "get_manufacturers", data, err)
}

// HandleModels handles POST /v1/models
//
//	@Summary		List Models
//	@Description	Lists models for a manufacturer and gadget type.
//	@Tags			Catalogue
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		ModelsRequest	true	"Manufacturer and gadget type"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Manufacturer ID is required, Gadget type is required"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/models [post].
func (h *CatalogueHandler) HandleModels(w http.ResponseWriter, r *http.Request) {
	var req ModelsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ManufacturerID == "" {
		httpx.WriteFailure(w, http.StatusBadRequest, "Manufacturer ID is required")
		return
	}
	if req.GadgetType == "" {
		httpx.WriteFailure(w, http.StatusBadRequest, "Gadget type is required")
		return
	}

	data, err := h.Provider.GetModels(r.Context(), req.ManufacturerID.String(), req.GadgetType.String())
	respond(w, r, "get_models", data, err)
}

// HandleQuote handles POST /v1/quote
//
//	@Summary		Quote Device
//	@Description	Returns the premiums available for a device. Fields inside device_data use the provider's spelling.
//	@Tags			Catalogue
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		QuoteRequest	true	"Device to quote"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Device data is required, or a device field is missing"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/quote [post].
func (h *CatalogueHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.DeviceData == nil {
		httpx.WriteFailure(w, http.StatusBadRequest, "Device data is required")
		return
	}
	d := req.DeviceData
	if d.ManufacturerID == "" || d.GadgetType == "" || d.Model == "" {
		httpx.WriteFailure(w, http.StatusBadRequest, deviceFieldsRequired)
		return
	}

	data, err := h.Provider.GetQuote(r.Context(), mgusdk.DeviceData{
		ManufacturerID: d.ManufacturerID.String(),
		GadgetType:     d.GadgetType.String(),
		Model:          d.Model.String(),
	})
	respond(w, r, "get_quote", data, err)
}

// HandlePremiums handles POST /v1/premiums
//
//	@Summary		List Gadget Premiums
//	@Description	Lists premiums for a manufacturer, gadget type and model.
//	@Tags			Catalogue
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		PremiumsRequest	true	"Device identification"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Manufacturer ID, Gadget Type, and Model are required"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/premiums [post].
func (h *CatalogueHandler) HandlePremiums(w http.ResponseWriter, r *http.Request) {
	var req PremiumsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ManufacturerID == "" || req.GadgetType == "" || req.Model == "" {
		httpx.WriteFailure(w, http.StatusBadRequest, deviceFieldsRequired)
		return
	}

	data, err := h.Provider.GetGadgetPremiums(r.Context(),
		req.ManufacturerID.String(), req.GadgetType.String(), req.Model.String())
	respond(w, r, "get_gadget_premiums", data, err)
}

// HandlePremium handles POST /v1/premium
//
//	@Summary		Get Gadget Premium
//	@Description	Fetches a single premium by id.
//	@Tags			Catalogue
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		PremiumRequest	true	"Premium id"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Premium ID is required"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		404		{object}	httpx.Envelope	"provider error message"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/premium [post].
func (h *CatalogueHandler) HandlePremium(w http.ResponseWriter, r *http.Request) {
	var req PremiumRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.PremiumID.Valid() {
		httpx.WriteFailure(w, http.StatusBadRequest, "Premium ID is required")
		return
	}

	data, err := h.Provider.GetGadgetPremium(r.Context(), int64(req.PremiumID))
	respond(w, r, "get_gadget_premium", data, err)
}
