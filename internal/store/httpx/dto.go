package httpx

import (
	"strings"
	"time"

	"github.com/jcmexdev/store-service/internal/store/domain"
)

type CreateCustomerRequest struct {
	Name string `json:"name"`
}

// Validate rejects blank names before any domain logic runs.
func (r CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.Invalid("name", "must not be blank")
	}
	return nil
}

type CreateProductRequest struct {
	Description string `json:"description"`
}

func (r CreateProductRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return domain.Invalid("description", "must not be blank")
	}
	return nil
}

type CreateOrderRequest struct {
	Description string  `json:"description"`
	CustomerID  int64   `json:"customerId"`
	ProductIDs  []int64 `json:"productIds"`
}

func (r CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return domain.Invalid("description", "must not be blank")
	}
	if r.CustomerID <= 0 {
		return domain.Invalid("customerId", "is required")
	}
	if len(r.ProductIDs) == 0 {
		return domain.Invalid("productIds", "must not be empty")
	}
	return nil
}

// ErrorResponse is the error body for every non-2xx response:
// {"timestamp": ..., "status": 404, "error": "Not Found", "message": "..."}.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}
