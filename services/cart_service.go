package services

import (
	"context"
	"math"

	"gettrendy/models"
)

// CartStore is the persistence surface the cart and checkout flows
// need. The production implementation is repositories.CartRepository.
type CartStore interface {
	AddItem(ctx context.Context, userID, productID, quantity int, selectedSize string) error
	ItemsWithProducts(ctx context.Context, userID int) ([]models.CartItem, error)
	RemoveProduct(ctx context.Context, userID, productID int) (int64, error)
	UpdateQuantity(ctx context.Context, userID, productID, quantity int) (bool, error)
	Count(ctx context.Context, userID int) (int, error)
	Clear(ctx context.Context, userID int) error
	ProductExists(ctx context.Context, productID int) (bool, error)
}

type CartService struct {
	store CartStore
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

type CartPage struct {
	Items       []models.CartItem `json:"items"`
	TotalItems  int               `json:"total_items"`
	TotalPages  int               `json:"total_pages"`
	CurrentPage int               `json:"current_page"`
}

// AddItem merges the line into an existing (product, size) entry or
// appends a new one, then returns the cart with product detail.
func (s *CartService) AddItem(ctx context.Context, req models.AddCartItemRequest) ([]models.CartItem, error) {
	if !models.IsValidSize(req.SelectedSize) {
		return nil, ErrInvalidSize
	}

	exists, err := s.store.ProductExists(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	if err := s.store.AddItem(ctx, req.UserID, req.ProductID, req.Quantity, req.SelectedSize); err != nil {
		return nil, err
	}

	return s.store.ItemsWithProducts(ctx, req.UserID)
}

// ListItems pages over the already-loaded item list in memory.
func (s *CartService) ListItems(ctx context.Context, userID, page, limit int) (*CartPage, error) {
	items, err := s.store.ItemsWithProducts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartNotFound
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	totalItems := len(items)
	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))

	start := (page - 1) * limit
	end := start + limit
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return &CartPage{
		Items:       items[start:end],
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// RemoveItem drops every size variant of the product from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID int) ([]models.CartItem, error) {
	count, err := s.store.Count(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrCartNotFound
	}

	if _, err := s.store.RemoveProduct(ctx, userID, productID); err != nil {
		return nil, err
	}

	return s.store.ItemsWithProducts(ctx, userID)
}

// UpdateItem sets the quantity on the first line matching the product,
// whichever size it carries.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	updated, err := s.store.UpdateQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrCartItemNotFound
	}

	return s.store.ItemsWithProducts(ctx, userID)
}
