package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/store-service/internal/store/domain"
)

func TestNotFoundError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *domain.NotFoundError
		want string
	}{
		{"customer", domain.NotFound(domain.KindCustomer, 99), "Not Found Customer by ID 99"},
		{"order", domain.NotFound(domain.KindOrder, 7), "Not Found Order by ID 7"},
		{"single product", domain.NotFound(domain.KindProduct, 3), "Not Found Product by ID 3"},
		{"missing products", domain.ProductsNotFound([]int64{2, 5, 9}), "Not Found Product IDs: [2, 5, 9]"},
		{"one missing product keeps the list form", domain.ProductsNotFound([]int64{2}), "Not Found Product IDs: [2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNotFoundError_ErrorsAs(t *testing.T) {
	var wrapped error = domain.NotFound(domain.KindCustomer, 1)

	var nf *domain.NotFoundError
	require.True(t, errors.As(wrapped, &nf))
	require.Equal(t, domain.KindCustomer, nf.Kind)
	require.Equal(t, []int64{1}, nf.IDs)
}

func TestValidationError_Message(t *testing.T) {
	err := domain.Invalid("name", "must not be blank")
	require.Equal(t, "name must not be blank", err.Error())
}
