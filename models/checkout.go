package models

import "time"

// Checkout is the immutable order snapshot taken from a cart at
// submission time. Items and total_amount are copies; later cart or
// product mutations never alter a placed order.
type Checkout struct {
	ID                int            `json:"id"`
	UserID            int            `json:"user_id"`
	User              *User          `json:"user,omitempty"`
	Items             []CheckoutItem `json:"items"`
	TotalAmount       float64        `json:"total_amount"`
	ShippingMethod    string         `json:"shipping_method"`
	PaymentMethod     string         `json:"payment_method"`
	Address           Address        `json:"address"`
	Phone             string         `json:"phone"`
	Email             string         `json:"email"`
	Status            string         `json:"status"`
	RazorpayOrderID   string         `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string         `json:"razorpay_payment_id,omitempty"`
	PaymentStatus     string         `json:"payment_status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type CheckoutItem struct {
	ID           int      `json:"id"`
	CheckoutID   int      `json:"checkout_id"`
	ProductID    int      `json:"product_id"`
	Product      *Product `json:"product,omitempty"`
	Quantity     int      `json:"quantity"`
	SelectedSize string   `json:"selected_size"`
}

type Address struct {
	FullName      string `json:"full_name"`
	StreetAddress string `json:"street_address"`
	Apartment     string `json:"apartment,omitempty"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	OrderNotes    string `json:"order_notes,omitempty"`
}

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"

	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"

	PaymentMethodUPI = "UPI"
	PaymentMethodCOD = "CASH ON DELIVERY"

	ShippingFlatRate    = "Flat rate"
	ShippingLocalPickup = "Local pickup"
)
