package services

import (
	"context"
	"sync"
	"testing"

	"gettrendy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartStore struct {
	mu       sync.Mutex
	nextID   int
	items    []models.CartItem
	products map[int]*models.Product
}

func newFakeCartStore(products ...*models.Product) *fakeCartStore {
	byID := make(map[int]*models.Product)
	for _, p := range products {
		byID[p.ID] = p
	}
	return &fakeCartStore{products: byID}
}

func (f *fakeCartStore) AddItem(_ context.Context, userID, productID, quantity int, selectedSize string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		it := &f.items[i]
		if it.UserID == userID && it.ProductID == productID && it.SelectedSize == selectedSize {
			it.Quantity += quantity
			return nil
		}
	}
	f.nextID++
	f.items = append(f.items, models.CartItem{
		ID:           f.nextID,
		UserID:       userID,
		ProductID:    productID,
		Quantity:     quantity,
		SelectedSize: selectedSize,
	})
	return nil
}

func (f *fakeCartStore) ItemsWithProducts(_ context.Context, userID int) ([]models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.CartItem
	for _, it := range f.items {
		if it.UserID == userID {
			it.Product = f.products[it.ProductID]
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCartStore) RemoveProduct(_ context.Context, userID, productID int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []models.CartItem
	var removed int64
	for _, it := range f.items {
		if it.UserID == userID && it.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	f.items = kept
	return removed, nil
}

func (f *fakeCartStore) UpdateQuantity(_ context.Context, userID, productID, quantity int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		it := &f.items[i]
		if it.UserID == userID && it.ProductID == productID {
			it.Quantity = quantity
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCartStore) Count(_ context.Context, userID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, it := range f.items {
		if it.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCartStore) Clear(_ context.Context, userID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []models.CartItem
	for _, it := range f.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCartStore) ProductExists(_ context.Context, productID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.products[productID]
	return ok, nil
}

func testProduct(id int, name string, price float64) *models.Product {
	return &models.Product{ID: id, Name: name, Price: price}
}

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	store := newFakeCartStore(testProduct(1, "T-Shirt", 499))
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: 1, Quantity: 2, SelectedSize: "M"})
	require.NoError(t, err)

	items, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: 1, Quantity: 3, SelectedSize: "M"})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "M", items[0].SelectedSize)
}

func TestAddItemDistinctSizesStaySeparate(t *testing.T) {
	store := newFakeCartStore(testProduct(1, "T-Shirt", 499))
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: 1, Quantity: 1, SelectedSize: "M"})
	require.NoError(t, err)

	items, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: 1, Quantity: 1, SelectedSize: "L"})
	require.NoError(t, err)

	require.Len(t, items, 2)
}

func TestAddItemRejectsInvalidSize(t *testing.T) {
	store := newFakeCartStore(testProduct(1, "T-Shirt", 499))
	svc := NewCartService(store)

	_, err := svc.AddItem(context.Background(), models.AddCartItemRequest{UserID: 7, ProductID: 1, Quantity: 1, SelectedSize: "XS"})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestAddItemRejectsUnknownProduct(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)

	_, err := svc.AddItem(context.Background(), models.AddCartItemRequest{UserID: 7, ProductID: 99, Quantity: 1, SelectedSize: "M"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListItemsPaginates(t *testing.T) {
	store := newFakeCartStore(
		testProduct(1, "T-Shirt", 499),
		testProduct(2, "Hoodie", 999),
		testProduct(3, "Cap", 199),
	)
	svc := NewCartService(store)
	ctx := context.Background()

	for _, productID := range []int{1, 2, 3} {
		_, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: productID, Quantity: 1, SelectedSize: "M"})
		require.NoError(t, err)
	}

	page, err := svc.ListItems(ctx, 7, 2, 1)
	require.NoError(t, err)

	assert.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, page.Items[0].ProductID)
}

func TestListItemsDefaultsPageAndLimit(t *testing.T) {
	store := newFakeCartStore(testProduct(1, "T-Shirt", 499))
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: 1, Quantity: 1, SelectedSize: "M"})
	require.NoError(t, err)

	page, err := svc.ListItems(ctx, 7, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Items, 1)
}

func TestListItemsEmptyCart(t *testing.T) {
	svc := NewCartService(newFakeCartStore())

	_, err := svc.ListItems(context.Background(), 7, 1, 10)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestRemoveItemDropsAllSizeVariants(t *testing.T) {
	store := newFakeCartStore(testProduct(1, "T-Shirt", 499), testProduct(2, "Hoodie", 999))
	svc := NewCartService(store)
	ctx := context.Background()

	for _, size := range []string{"S", "M", "L"} {
		_, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: 1, Quantity: 1, SelectedSize: size})
		require.NoError(t, err)
	}
	_, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: 2, Quantity: 1, SelectedSize: "M"})
	require.NoError(t, err)

	items, err := svc.RemoveItem(ctx, 7, 1)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)
}

func TestRemoveItemNoCart(t *testing.T) {
	svc := NewCartService(newFakeCartStore())

	_, err := svc.RemoveItem(context.Background(), 7, 1)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestUpdateItemRejectsNonPositiveQuantity(t *testing.T) {
	store := newFakeCartStore(testProduct(1, "T-Shirt", 499))
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: 1, Quantity: 2, SelectedSize: "M"})
	require.NoError(t, err)

	for _, quantity := range []int{0, -3} {
		_, err := svc.UpdateItem(ctx, 7, 1, quantity)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}

	items, err := store.ItemsWithProducts(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestUpdateItemUnknownProduct(t *testing.T) {
	store := newFakeCartStore(testProduct(1, "T-Shirt", 499))
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: 1, Quantity: 1, SelectedSize: "M"})
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, 7, 99, 4)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestUpdateItemSetsQuantity(t *testing.T) {
	store := newFakeCartStore(testProduct(1, "T-Shirt", 499))
	svc := NewCartService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.AddCartItemRequest{UserID: 7, ProductID: 1, Quantity: 1, SelectedSize: "M"})
	require.NoError(t, err)

	items, err := svc.UpdateItem(ctx, 7, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, items[0].Quantity)
}
