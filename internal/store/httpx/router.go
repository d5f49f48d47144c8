package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jcmexdev/store-service/internal/pkg/health"
	"github.com/jcmexdev/store-service/internal/store/httpx/middlewares"
)

// NewRouter assembles the REST surface. The otelhttp wrapper opens a server
// span per request so handler and repository work shows up in traces.
func NewRouter(handler *Handler, probes *health.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/customer", handler.ListCustomers)
	r.Post("/customer", handler.CreateCustomer)

	r.Get("/order", handler.ListOrders)
	r.Get("/order/{id}", handler.GetOrderByID)
	r.Post("/order", handler.CreateOrder)

	// The products resource is plural; customer and order are not. The paths
	// are part of the published API, so the inconsistency stays.
	r.Get("/products", handler.ListProducts)
	r.Get("/products/{id}", handler.GetProductByID)
	r.Post("/products", handler.CreateProduct)

	r.Handle("/metrics", promhttp.Handler())
	if probes != nil {
		r.Get("/healthz", probes.Liveness)
		r.Get("/readyz", probes.Readiness)
	}

	return otelhttp.NewHandler(r, "store-service")
}
