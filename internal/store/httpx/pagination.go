package httpx

import (
	"net/http"
	"strconv"

	"github.com/jcmexdev/store-service/internal/store/domain"
)

// parsePageRequest reads the page, size, and sort query parameters. Missing
// or malformed values fall back to the defaults (page 0, size 50, id
// descending) when the request is normalized by the service layer.
func parsePageRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 0
	}
	size, err := strconv.Atoi(q.Get("size"))
	if err != nil {
		size = 0
	}

	return domain.PageRequest{
		Page: page,
		Size: size,
		Sort: q.Get("sort"),
	}
}
