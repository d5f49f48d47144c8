package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/store-service/internal/pkg/cache"
	"github.com/jcmexdev/store-service/internal/pkg/health"
	"github.com/jcmexdev/store-service/internal/store/httpx"
	"github.com/jcmexdev/store-service/internal/store/memory"
	"github.com/jcmexdev/store-service/internal/store/service"
)

// newRouter assembles the full HTTP stack over the in-memory store.
func newRouter() http.Handler {
	store := memory.NewStore()
	c := cache.NewMemoryCache()

	customers := service.NewCustomerService(store.Customers(), c, nil)
	products := service.NewProductService(store.Products(), c, nil)
	orders := service.NewOrderService(store.Orders(), store.Customers(), store.Products(), c, nil)

	return httpx.NewRouter(httpx.NewHandler(customers, products, orders), health.NewHandler())
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCreateCustomer_Returns201WithView(t *testing.T) {
	router := newRouter()

	rec := doJSON(t, router, http.MethodPost, "/customer", `{"name":"Ada"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	view := decode[service.CustomerView](t, rec)
	require.EqualValues(t, 1, view.ID)
	require.Equal(t, "Ada", view.Name)
	require.NotNil(t, view.Orders)
}

func TestCreateCustomer_BlankNameIs400(t *testing.T) {
	router := newRouter()

	rec := doJSON(t, router, http.MethodPost, "/customer", `{"name":"   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[httpx.ErrorResponse](t, rec)
	require.Equal(t, 400, body.Status)
	require.Equal(t, "Bad Request", body.Error)
}

func TestCreateCustomer_MalformedJSONIs400(t *testing.T) {
	router := newRouter()

	rec := doJSON(t, router, http.MethodPost, "/customer", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCustomers_DefaultsAndFilter(t *testing.T) {
	router := newRouter()
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/customer", `{"name":"Alice Smith"}`).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/customer", `{"name":"bob"}`).Code)

	rec := doJSON(t, router, http.MethodGet, "/customer", "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[pageOf[service.CustomerView]](t, rec)
	require.EqualValues(t, 2, all.TotalElements)
	require.Equal(t, 50, all.Size)
	// Descending id: bob was created last.
	require.Equal(t, "bob", all.Content[0].Name)

	rec = doJSON(t, router, http.MethodGet, "/customer?name=SMITH", "")
	require.Equal(t, http.StatusOK, rec.Code)
	filtered := decode[pageOf[service.CustomerView]](t, rec)
	require.Len(t, filtered.Content, 1)
	require.Equal(t, "Alice Smith", filtered.Content[0].Name)
}

func TestListCustomers_PaginationParams(t *testing.T) {
	router := newRouter()
	for _, name := range []string{"a", "b", "c"} {
		require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/customer", `{"name":"`+name+`"}`).Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/customer?page=1&size=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[pageOf[service.CustomerView]](t, rec)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 2, page.Size)
	require.Len(t, page.Content, 1)
	require.Equal(t, "a", page.Content[0].Name)
}

// pageOf mirrors the page envelope for decoding in tests.
type pageOf[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func TestGetOrder_MissingIs404WithBodyShape(t *testing.T) {
	router := newRouter()

	rec := doJSON(t, router, http.MethodGet, "/order/5", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[httpx.ErrorResponse](t, rec)
	require.Equal(t, 404, body.Status)
	require.Equal(t, "Not Found", body.Error)
	require.Equal(t, "Not Found Order by ID 5", body.Message)
	require.False(t, body.Timestamp.IsZero())
}

func TestGetOrder_NonNumericIDIs400(t *testing.T) {
	router := newRouter()

	rec := doJSON(t, router, http.MethodGet, "/order/abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_FullFlow(t *testing.T) {
	router := newRouter()
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/customer", `{"name":"Ada"}`).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/products", `{"description":"Widget"}`).Code)

	rec := doJSON(t, router, http.MethodPost, "/order", `{"description":"First","customerId":1,"productIds":[1]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	view := decode[service.OrderView](t, rec)
	require.EqualValues(t, 1, view.ID)
	require.Equal(t, "Ada", view.Customer.Name)
	require.Len(t, view.Products, 1)
	require.Equal(t, "Widget", view.Products[0].Description)

	// The new order is visible on the next read.
	listRec := doJSON(t, router, http.MethodGet, "/order", "")
	require.Equal(t, http.StatusOK, listRec.Code)
	page := decode[pageOf[service.OrderView]](t, listRec)
	require.Len(t, page.Content, 1)

	getRec := doJSON(t, router, http.MethodGet, "/order/1", "")
	require.Equal(t, http.StatusOK, getRec.Code)
}

func TestCreateOrder_MissingCustomerIs404(t *testing.T) {
	router := newRouter()
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/products", `{"description":"Widget"}`).Code)

	rec := doJSON(t, router, http.MethodPost, "/order", `{"description":"Bad","customerId":99,"productIds":[1]}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[httpx.ErrorResponse](t, rec)
	require.Equal(t, "Not Found Customer by ID 99", body.Message)
}

func TestCreateOrder_MissingProductsIs404ListingAll(t *testing.T) {
	router := newRouter()
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/customer", `{"name":"Ada"}`).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/products", `{"description":"Widget"}`).Code)

	rec := doJSON(t, router, http.MethodPost, "/order", `{"description":"Bad2","customerId":1,"productIds":[1,7,2]}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[httpx.ErrorResponse](t, rec)
	require.Equal(t, "Not Found Product IDs: [2, 7]", body.Message)
}

func TestCreateOrder_ValidationFailuresAre400(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name string
		body string
	}{
		{"blank description", `{"description":" ","customerId":1,"productIds":[1]}`},
		{"missing customer id", `{"description":"x","productIds":[1]}`},
		{"empty product ids", `{"description":"x","customerId":1,"productIds":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/order", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetProduct_OKAndMissing(t *testing.T) {
	router := newRouter()
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/products", `{"description":"Widget"}`).Code)

	rec := doJSON(t, router, http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[service.ProductView](t, rec)
	require.Equal(t, "Widget", view.Description)
	require.NotNil(t, view.Orders)

	rec = doJSON(t, router, http.MethodGet, "/products/9", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[httpx.ErrorResponse](t, rec)
	require.Equal(t, "Not Found Product by ID 9", body.Message)
}

func TestRequestID_EchoedOnResponse(t *testing.T) {
	router := newRouter()

	rec := doJSON(t, router, http.MethodGet, "/customer", "")
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	echo := httptest.NewRecorder()
	router.ServeHTTP(echo, req)
	require.Equal(t, "abc-123", echo.Header().Get("X-Request-Id"))
}

func TestProbes_Registered(t *testing.T) {
	router := newRouter()

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodGet, "/healthz", "").Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodGet, "/readyz", "").Code)
}
