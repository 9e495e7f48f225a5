package repositories

import (
	"context"
	"errors"

	"gettrendy/models"

	"github.com/jackc/pgx/v5"
)

type CheckoutRepository struct{}

func NewCheckoutRepository() *CheckoutRepository {
	return &CheckoutRepository{}
}

const checkoutColumns = `id, user_id, total_amount, shipping_method, payment_method,
	full_name, street_address, apartment, city, zip, order_notes,
	phone, email, status, razorpay_order_id, razorpay_payment_id, payment_status,
	created_at, updated_at`

func scanCheckout(row pgx.Row) (*models.Checkout, error) {
	var c models.Checkout
	err := row.Scan(
		&c.ID, &c.UserID, &c.TotalAmount, &c.ShippingMethod, &c.PaymentMethod,
		&c.Address.FullName, &c.Address.StreetAddress, &c.Address.Apartment,
		&c.Address.City, &c.Address.Zip, &c.Address.OrderNotes,
		&c.Phone, &c.Email, &c.Status, &c.RazorpayOrderID, &c.RazorpayPaymentID, &c.PaymentStatus,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persists the checkout header and its snapshot items in one
// transaction and fills in the generated id.
func (r *CheckoutRepository) Create(ctx context.Context, checkout *models.Checkout) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO checkouts (user_id, total_amount, shipping_method, payment_method,
		   full_name, street_address, apartment, city, zip, order_notes,
		   phone, email, status, payment_status, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,NOW(),NOW())
		 RETURNING id, created_at, updated_at`,
		checkout.UserID, checkout.TotalAmount, checkout.ShippingMethod, checkout.PaymentMethod,
		checkout.Address.FullName, checkout.Address.StreetAddress, checkout.Address.Apartment,
		checkout.Address.City, checkout.Address.Zip, checkout.Address.OrderNotes,
		checkout.Phone, checkout.Email, checkout.Status, checkout.PaymentStatus,
	).Scan(&checkout.ID, &checkout.CreatedAt, &checkout.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range checkout.Items {
		item := &checkout.Items[i]
		item.CheckoutID = checkout.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO checkout_items (checkout_id, product_id, quantity, selected_size)
			 VALUES ($1,$2,$3,$4) RETURNING id`,
			checkout.ID, item.ProductID, item.Quantity, item.SelectedSize,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *CheckoutRepository) SetRazorpayOrderID(ctx context.Context, checkoutID int, razorpayOrderID string) error {
	_, err := models.DB.Exec(ctx,
		"UPDATE checkouts SET razorpay_order_id = $1, updated_at = NOW() WHERE id = $2",
		razorpayOrderID, checkoutID)
	return err
}

// FindByRazorpayOrderID returns (nil, nil) when no checkout carries the
// gateway order id.
func (r *CheckoutRepository) FindByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*models.Checkout, error) {
	row := models.DB.QueryRow(ctx,
		"SELECT "+checkoutColumns+" FROM checkouts WHERE razorpay_order_id = $1",
		razorpayOrderID)

	checkout, err := scanCheckout(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return checkout, nil
}

func (r *CheckoutRepository) MarkPaid(ctx context.Context, checkoutID int, razorpayPaymentID string) error {
	_, err := models.DB.Exec(ctx,
		"UPDATE checkouts SET razorpay_payment_id = $1, payment_status = $2, updated_at = NOW() WHERE id = $3",
		razorpayPaymentID, models.PaymentStatusPaid, checkoutID)
	return err
}

func (r *CheckoutRepository) FindByUser(ctx context.Context, userID int) ([]models.Checkout, error) {
	rows, err := models.DB.Query(ctx,
		"SELECT "+checkoutColumns+" FROM checkouts WHERE user_id = $1 ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checkouts := []models.Checkout{}
	for rows.Next() {
		checkout, err := scanCheckout(rows)
		if err != nil {
			return nil, err
		}
		checkouts = append(checkouts, *checkout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range checkouts {
		items, err := r.loadItems(ctx, checkouts[i].ID)
		if err != nil {
			return nil, err
		}
		checkouts[i].Items = items
	}

	return checkouts, nil
}

// FindAll is the admin listing: user and product references expanded,
// newest first, collection-level pagination.
func (r *CheckoutRepository) FindAll(ctx context.Context, page, limit int) ([]models.Checkout, int, error) {
	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM checkouts").Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	rows, err := models.DB.Query(ctx,
		"SELECT "+checkoutColumns+" FROM checkouts ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	checkouts := []models.Checkout{}
	for rows.Next() {
		checkout, err := scanCheckout(rows)
		if err != nil {
			return nil, 0, err
		}
		checkouts = append(checkouts, *checkout)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range checkouts {
		items, err := r.loadItems(ctx, checkouts[i].ID)
		if err != nil {
			return nil, 0, err
		}
		checkouts[i].Items = items

		var user models.User
		err = models.DB.QueryRow(ctx,
			"SELECT id, name, email, COALESCE(phone, ''), role, created_at, updated_at FROM users WHERE id = $1",
			checkouts[i].UserID,
		).Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.Role, &user.CreatedAt, &user.UpdatedAt)
		if err == nil {
			checkouts[i].User = &user
		}
	}

	return checkouts, total, nil
}

func (r *CheckoutRepository) UpdateStatus(ctx context.Context, checkoutID int, status string) (bool, error) {
	tag, err := models.DB.Exec(ctx,
		"UPDATE checkouts SET status = $1, updated_at = NOW() WHERE id = $2",
		status, checkoutID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CheckoutRepository) Delete(ctx context.Context, checkoutID int) (bool, error) {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	_, _ = tx.Exec(ctx, "DELETE FROM checkout_items WHERE checkout_id = $1", checkoutID)

	tag, err := tx.Exec(ctx, "DELETE FROM checkouts WHERE id = $1", checkoutID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	return true, tx.Commit(ctx)
}

func (r *CheckoutRepository) loadItems(ctx context.Context, checkoutID int) ([]models.CheckoutItem, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT i.id, i.checkout_id, i.product_id, i.quantity, i.selected_size,
		        p.id, p.name, p.price, p.category_id, COALESCE(p.description, ''), COALESCE(p.image, '')
		 FROM checkout_items i
		 LEFT JOIN products p ON i.product_id = p.id
		 WHERE i.checkout_id = $1
		 ORDER BY i.id`,
		checkoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CheckoutItem{}
	for rows.Next() {
		var item models.CheckoutItem
		var productID *int
		var name, description, image *string
		var price *float64
		var categoryID *int
		if err := rows.Scan(
			&item.ID, &item.CheckoutID, &item.ProductID, &item.Quantity, &item.SelectedSize,
			&productID, &name, &price, &categoryID, &description, &image,
		); err != nil {
			return nil, err
		}
		if productID != nil {
			item.Product = &models.Product{
				ID:          *productID,
				Name:        *name,
				Price:       *price,
				CategoryID:  *categoryID,
				Description: *description,
				Image:       *image,
			}
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
