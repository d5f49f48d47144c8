package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/store-service/internal/store/domain"
	"github.com/jcmexdev/store-service/internal/store/httpx/middlewares"
	"github.com/jcmexdev/store-service/internal/store/service"
)

// Handler handles the store's REST endpoints. It only parses, validates, and
// maps errors to status codes; all domain behaviour lives in the services.
type Handler struct {
	customers *service.CustomerService
	products  *service.ProductService
	orders    *service.OrderService
}

// NewHandler initialises the handler with its domain services.
func NewHandler(customers *service.CustomerService, products *service.ProductService, orders *service.OrderService) *Handler {
	return &Handler{
		customers: customers,
		products:  products,
		orders:    orders,
	}
}

// ListCustomers serves GET /customer with an optional case-insensitive name
// filter and pagination params.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page, err := h.customers.List(r.Context(), r.URL.Query().Get("name"), parsePageRequest(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// CreateCustomer serves POST /customer.
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.customers.Create(r.Context(), req.Name)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// ListOrders serves GET /order.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := h.orders.List(r.Context(), parsePageRequest(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetOrderByID serves GET /order/{id}.
func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	view, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// CreateOrder serves POST /order: it validates the body, then delegates to
// the assembly workflow, which reports missing references as 404s.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "creating order",
		"request_id", middlewares.GetRequestID(r.Context()),
		"customer_id", req.CustomerID,
	)

	view, err := h.orders.Create(r.Context(), req.Description, req.CustomerID, req.ProductIDs)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// ListProducts serves GET /products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, err := h.products.List(r.Context(), parsePageRequest(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetProductByID serves GET /products/{id}.
func (h *Handler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	view, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// CreateProduct serves POST /products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.products.Create(r.Context(), req.Description)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// parseID reads the {id} path parameter; a non-numeric id is a 400, not a 404.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

// writeServiceError maps typed domain errors to status codes. Anything not
// recognised is a store failure: logged and surfaced as a 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, notFound.Error())
		return
	}

	var invalid *domain.ValidationError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, invalid.Error())
		return
	}

	slog.ErrorContext(r.Context(), "request failed",
		"request_id", middlewares.GetRequestID(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	})
}
