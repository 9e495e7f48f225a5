package repositories

import (
	"context"

	"gettrendy/models"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// AddItem upserts on (user_id, product_id, selected_size): an existing
// line has its quantity incremented, otherwise a new line is appended.
func (r *CartRepository) AddItem(ctx context.Context, userID, productID, quantity int, selectedSize string) error {
	_, err := models.DB.Exec(ctx,
		`INSERT INTO cart_items (user_id, product_id, quantity, selected_size, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NOW(), NOW())
		 ON CONFLICT (user_id, product_id, selected_size)
		 DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()`,
		userID, productID, quantity, selectedSize)
	return err
}

func (r *CartRepository) ItemsWithProducts(ctx context.Context, userID int) ([]models.CartItem, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.selected_size, ci.created_at, ci.updated_at,
		        p.id, p.name, p.price, p.category_id, COALESCE(p.description, ''), COALESCE(p.image, '')
		 FROM cart_items ci
		 JOIN products p ON ci.product_id = p.id
		 WHERE ci.user_id = $1
		 ORDER BY ci.id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var product models.Product
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.SelectedSize,
			&item.CreatedAt, &item.UpdatedAt,
			&product.ID, &product.Name, &product.Price, &product.CategoryID,
			&product.Description, &product.Image,
		); err != nil {
			return nil, err
		}
		item.Product = &product
		items = append(items, item)
	}

	return items, rows.Err()
}

// RemoveProduct deletes every size variant of the product from the
// user's cart.
func (r *CartRepository) RemoveProduct(ctx context.Context, userID, productID int) (int64, error) {
	tag, err := models.DB.Exec(ctx,
		"DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2",
		userID, productID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UpdateQuantity sets the quantity on the oldest line matching the
// product, regardless of its size.
func (r *CartRepository) UpdateQuantity(ctx context.Context, userID, productID, quantity int) (bool, error) {
	tag, err := models.DB.Exec(ctx,
		`UPDATE cart_items SET quantity = $1, updated_at = NOW()
		 WHERE id = (
		   SELECT id FROM cart_items
		   WHERE user_id = $2 AND product_id = $3
		   ORDER BY id
		   LIMIT 1
		 )`,
		quantity, userID, productID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CartRepository) Count(ctx context.Context, userID int) (int, error) {
	var count int
	err := models.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM cart_items WHERE user_id = $1", userID).Scan(&count)
	return count, err
}

func (r *CartRepository) Clear(ctx context.Context, userID int) error {
	_, err := models.DB.Exec(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID)
	return err
}

func (r *CartRepository) ProductExists(ctx context.Context, productID int) (bool, error) {
	var count int
	err := models.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE id = $1", productID).Scan(&count)
	return count > 0, err
}
