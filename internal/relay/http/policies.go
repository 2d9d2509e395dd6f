package http

import (
	"net/http"

	"github.com/aussiebroadwan/mgu/pkg/httpx"
)

// PoliciesHandler issues policies for confirmed, paid baskets.
type PoliciesHandler struct {
	Provider Provider
}

// HandleCreate handles POST /v1/policies
//
//	@Summary		Create Policy
//	@Description	Creates a policy. policy_data is sent to the provider verbatim.
//	@Tags			Policies
//	@Accept			json
//	@Produce		json
//	@Security		RelayNonce
//	@Param			request	body		CreatePolicyRequest	true	"Policy fields"
//	@Success		200		{object}	httpx.Envelope	"success=true, data=provider payload"
//	@Failure		400		{object}	httpx.Envelope	"Policy data is required"
//	@Failure		403		{object}	httpx.Envelope	"Invalid security token"
//	@Failure		429		{object}	httpx.Envelope	"rate limit exceeded"
//	@Failure		502		{object}	httpx.Envelope	"provider unreachable or failed"
//	@Router			/v1/policies [post].
func (h *PoliciesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreatePolicyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.PolicyData) == 0 {
		httpx.WriteFailure(w, http.StatusBadRequest, "Policy data is required")
		return
	}

	data, err := h.Provider.CreatePolicy(r.Context(), req.PolicyData)
	respond(w, r, "create_policy", data, err)
}
