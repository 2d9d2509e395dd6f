package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/mgu/pkg/httpx"
	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
	"github.com/aussiebroadwan/mgu/pkg/noncex"
	"github.com/aussiebroadwan/mgu/pkg/slogx"

	_ "github.com/aussiebroadwan/mgu/api/relay" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// NonceAction is the single action every relay nonce is bound to.
const NonceAction = "mgu_api"

// Provider is the slice of the MGU client the relay drives.
type Provider interface {
	GetManufacturers(ctx context.Context, gadgetType string) (any, error)
	GetModels(ctx context.Context, manufacturerID, gadgetType string) (any, error)
	GetQuote(ctx context.Context, device mgusdk.DeviceData) (any, error)
	GetGadgetPremiums(ctx context.Context, manufacturerID, gadgetType, model string) (any, error)
	GetGadgetPremium(ctx context.Context, premiumID int64) (any, error)
	CreateCustomer(ctx context.Context, customer map[string]any) (any, error)
	FindCustomer(ctx context.Context, customerID int64) (any, error)
	FindCustomerByExternalID(ctx context.Context, externalID string) (any, error)
	OpenBasket(ctx context.Context, customerID int64, period mgusdk.PremiumPeriod, lossCover mgusdk.LossCover) (any, error)
	GetBasket(ctx context.Context, basketID int64) (any, error)
	AddGadgets(ctx context.Context, basketID int64, gadgets []map[string]any) (any, error)
	ConfirmBasket(ctx context.Context, basketID int64) (any, error)
	PayByDirectDebit(ctx context.Context, basketID int64, directDebit map[string]any) (any, error)
	CreatePolicy(ctx context.Context, policy map[string]any) (any, error)
	TestConnection(ctx context.Context) (any, error)
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	provider     Provider
	nonces       *noncex.Manager
	readiness    *ProviderCheck
	actionLimit  httpx.Middleware
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
}

func NewRouter(
	provider Provider,
	nonces *noncex.Manager,
	buildVersion, allowedOrigin string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		provider:     provider,
		nonces:       nonces,
		readiness:    NewProviderCheck(provider, readinessTTL),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	// All action routes draw on one per-IP budget.
	r.actionLimit = httpx.RateLimitByIP(httpx.ActionLimit)

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(allowedOrigin),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerNonce()
	r.registerCatalogue()
	r.registerCustomers()
	r.registerBaskets()
	r.registerPolicies()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			MGU Relay API
//	@version		0.1.0
//	@description	Browser-facing relay for the MGU gadget insurance API.
//	@description
//	@description	Every action endpoint is a POST with a JSON body and requires a nonce from GET /v1/nonce,
//	@description	sent in the X-Relay-Nonce header or as the "nonce" body field. Responses use the envelope
//	@description	{"success": bool, "data": ..., "error": "..."}.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/mgu
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	RelayNonce
//	@in							header
//	@name						X-Relay-Nonce
//	@description				Nonce issued by GET /v1/nonce.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// action wraps a provider-facing handler with the per-IP limit and nonce check.
func (r *Router) action(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		r.actionLimit,
		httpx.RequireNonce(r.nonces, NonceAction),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.readiness),
			httpx.RateLimitByIP(httpx.NonceLimit),
		),
	)
}

func (r *Router) registerNonce() {
	r.Mux.Handle("GET /v1/nonce",
		httpx.Chain(NonceHandler(r.nonces, NonceAction),
			httpx.RateLimitByIP(httpx.NonceLimit),
		),
	)
}

func (r *Router) registerCatalogue() {
	h := &CatalogueHandler{Provider: r.provider}

	r.Mux.Handle("POST /v1/manufacturers", r.action(h.HandleManufacturers))
	r.Mux.Handle("POST /v1/models", r.action(h.HandleModels))
	r.Mux.Handle("POST /v1/quote", r.action(h.HandleQuote))
	r.Mux.Handle("POST /v1/premiums", r.action(h.HandlePremiums))
	r.Mux.Handle("POST /v1/premium", r.action(h.HandlePremium))
}

func (r *Router) registerCustomers() {
	h := &CustomersHandler{Provider: r.provider}

	r.Mux.Handle("POST /v1/customers", r.action(h.HandleCreate))
	r.Mux.Handle("POST /v1/customers/find", r.action(h.HandleFind))
}

func (r *Router) registerBaskets() {
	h := &BasketsHandler{Provider: r.provider}

	r.Mux.Handle("POST /v1/baskets", r.action(h.HandleOpen))
	r.Mux.Handle("POST /v1/baskets/get", r.action(h.HandleGet))
	r.Mux.Handle("POST /v1/baskets/gadgets", r.action(h.HandleAddGadget))
	r.Mux.Handle("POST /v1/baskets/confirm", r.action(h.HandleConfirm))
	r.Mux.Handle("POST /v1/baskets/direct-debit", r.action(h.HandleDirectDebit))
}

func (r *Router) registerPolicies() {
	h := &PoliciesHandler{Provider: r.provider}

	r.Mux.Handle("POST /v1/policies", r.action(h.HandleCreate))
}
