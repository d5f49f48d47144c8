package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/store-service/internal/store/domain"
	"github.com/jcmexdev/store-service/internal/store/memory"
)

func TestCustomerRepository_InsertAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()

	first, err := repo.Insert(ctx, "Ada")
	require.NoError(t, err)
	second, err := repo.Insert(ctx, "Bob")
	require.NoError(t, err)

	require.EqualValues(t, 1, first.ID)
	require.EqualValues(t, 2, second.ID)
}

func TestCustomerRepository_GetByID_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()

	created, err := repo.Insert(ctx, "Ada Lovelace")
	require.NoError(t, err)

	got, ok, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Ada Lovelace", got.Name)
}

func TestCustomerRepository_GetByID_MissingIsNotAnError(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()

	_, ok, err := repo.GetByID(ctx, 42)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCustomerRepository_List_DescendingByDefault(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()
	for i := 0; i < 3; i++ {
		_, err := repo.Insert(ctx, fmt.Sprintf("customer-%d", i))
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, "", domain.DefaultPageRequest())
	require.NoError(t, err)

	require.Len(t, page.Content, 3)
	require.EqualValues(t, 3, page.Content[0].ID)
	require.EqualValues(t, 1, page.Content[2].ID)
}

func TestCustomerRepository_List_Pagination(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()
	for i := 0; i < 5; i++ {
		_, err := repo.Insert(ctx, fmt.Sprintf("customer-%d", i))
		require.NoError(t, err)
	}

	req := domain.PageRequest{Page: 1, Size: 2}.Normalize()
	page, err := repo.List(ctx, "", req)
	require.NoError(t, err)

	require.Len(t, page.Content, 2)
	require.EqualValues(t, 3, page.Content[0].ID)
	require.EqualValues(t, 2, page.Content[1].ID)
	require.EqualValues(t, 5, page.TotalElements)
	require.Equal(t, 3, page.TotalPages)
}

func TestCustomerRepository_List_NameFilterIsCaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()
	_, err := repo.Insert(ctx, "Alice Smith")
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "bob")
	require.NoError(t, err)

	page, err := repo.List(ctx, "smith", domain.DefaultPageRequest())
	require.NoError(t, err)

	require.Len(t, page.Content, 1)
	require.Equal(t, "Alice Smith", page.Content[0].Name)
}

func TestCustomerRepository_List_BlankFilterEqualsNoFilter(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()
	_, err := repo.Insert(ctx, "Alice Smith")
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "bob")
	require.NoError(t, err)

	unfiltered, err := repo.List(ctx, "", domain.DefaultPageRequest())
	require.NoError(t, err)
	blank, err := repo.List(ctx, "   ", domain.DefaultPageRequest())
	require.NoError(t, err)

	require.Equal(t, unfiltered, blank)
}

func TestProductRepository_GetAllByIDs_ReturnsOnlyExisting(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	widget, err := repo.Insert(ctx, "Widget")
	require.NoError(t, err)
	gadget, err := repo.Insert(ctx, "Gadget")
	require.NoError(t, err)

	found, err := repo.GetAllByIDs(ctx, []int64{gadget.ID, widget.ID, 99})
	require.NoError(t, err)

	require.Len(t, found, 2)
	// Ascending id order regardless of the requested order.
	require.Equal(t, widget.ID, found[0].ID)
	require.Equal(t, gadget.ID, found[1].ID)
}

func TestProductRepository_GetAllByIDs_DeduplicatesRequest(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	widget, err := repo.Insert(ctx, "Widget")
	require.NoError(t, err)

	found, err := repo.GetAllByIDs(ctx, []int64{widget.ID, widget.ID, widget.ID})
	require.NoError(t, err)

	require.Len(t, found, 1)
}

func TestOrderRepository_InsertResolvesRelations(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	customer, err := store.Customers().Insert(ctx, "Ada")
	require.NoError(t, err)
	product, err := store.Products().Insert(ctx, "Widget")
	require.NoError(t, err)

	order, err := store.Orders().Insert(ctx, "First", customer, []domain.Product{product})
	require.NoError(t, err)

	require.EqualValues(t, 1, order.ID)
	require.Equal(t, "Ada", order.Customer.Name)
	require.Len(t, order.Products, 1)
	require.Equal(t, "Widget", order.Products[0].Description)
}

func TestOrderRepository_BackReferencesAttachedOnRead(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	customer, err := store.Customers().Insert(ctx, "Ada")
	require.NoError(t, err)
	product, err := store.Products().Insert(ctx, "Widget")
	require.NoError(t, err)
	order, err := store.Orders().Insert(ctx, "First", customer, []domain.Product{product})
	require.NoError(t, err)

	gotProduct, ok, err := store.Products().GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int64{order.ID}, gotProduct.OrderIDs)

	gotCustomer, ok, err := store.Customers().GetByID(ctx, customer.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int64{order.ID}, gotCustomer.OrderIDs)
}

func TestStore_ConcurrentInsertsKeepUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := repo.Insert(ctx, "c")
			require.NoError(t, err)
			ids <- c.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
}
