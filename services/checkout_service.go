package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"gettrendy/libs"
	"gettrendy/models"
)

type CheckoutStore interface {
	Create(ctx context.Context, checkout *models.Checkout) error
	SetRazorpayOrderID(ctx context.Context, checkoutID int, razorpayOrderID string) error
	FindByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*models.Checkout, error)
	MarkPaid(ctx context.Context, checkoutID int, razorpayPaymentID string) error
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*libs.RazorpayOrder, error)
}

type Mailer interface {
	Send(to, subject, body string) error
}

type CheckoutService struct {
	carts      CartStore
	checkouts  CheckoutStore
	gateway    PaymentGateway
	mailer     Mailer
	adminEmail string
}

func NewCheckoutService(carts CartStore, checkouts CheckoutStore, gateway PaymentGateway, mailer Mailer, adminEmail string) *CheckoutService {
	return &CheckoutService{
		carts:      carts,
		checkouts:  checkouts,
		gateway:    gateway,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

type CheckoutResult struct {
	Checkout *models.Checkout    `json:"checkout"`
	Order    *libs.RazorpayOrder `json:"order,omitempty"`
}

// Create snapshots the user's cart into an immutable checkout. For UPI
// a gateway order is created and the cart kept until payment
// confirmation; for cash on delivery the cart is cleared immediately.
// The sequence is not atomic: a gateway failure after the snapshot
// insert leaves a checkout without a gateway order id.
func (s *CheckoutService) Create(ctx context.Context, req models.CheckoutRequest) (*CheckoutResult, error) {
	items, err := s.carts.ItemsWithProducts(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	// Point-in-time pricing: the total is computed from current
	// product prices and never re-derived afterwards.
	var totalAmount float64
	checkoutItems := make([]models.CheckoutItem, 0, len(items))
	for _, item := range items {
		totalAmount += item.Product.Price * float64(item.Quantity)
		checkoutItems = append(checkoutItems, models.CheckoutItem{
			ProductID:    item.ProductID,
			Product:      item.Product,
			Quantity:     item.Quantity,
			SelectedSize: item.SelectedSize,
		})
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	checkout := &models.Checkout{
		UserID:         req.UserID,
		Items:          checkoutItems,
		TotalAmount:    totalAmount,
		ShippingMethod: req.ShippingMethod,
		PaymentMethod:  req.PaymentMethod,
		Address: models.Address{
			FullName:      req.Address.FullName,
			StreetAddress: req.Address.StreetAddress,
			Apartment:     req.Address.Apartment,
			City:          req.Address.City,
			Zip:           req.Address.Zip,
			OrderNotes:    req.Address.OrderNotes,
		},
		Phone:         req.Phone,
		Email:         req.Email,
		Status:        status,
		PaymentStatus: models.PaymentStatusPending,
	}

	if err := s.checkouts.Create(ctx, checkout); err != nil {
		return nil, err
	}

	if req.PaymentMethod == models.PaymentMethodUPI {
		if s.gateway == nil {
			return nil, fmt.Errorf("payment gateway not configured")
		}
		order, err := s.gateway.CreateOrder(ctx,
			toMinorUnits(totalAmount),
			"INR",
			fmt.Sprintf("receipt_%d", checkout.ID),
		)
		if err != nil {
			return nil, err
		}

		if err := s.checkouts.SetRazorpayOrderID(ctx, checkout.ID, order.ID); err != nil {
			return nil, err
		}
		checkout.RazorpayOrderID = order.ID

		// Cart is deliberately kept; it is cleared on payment
		// confirmation.
		s.sendOrderEmails(checkout)

		return &CheckoutResult{Checkout: checkout, Order: order}, nil
	}

	if err := s.carts.Clear(ctx, req.UserID); err != nil {
		return nil, err
	}

	s.sendOrderEmails(checkout)

	return &CheckoutResult{Checkout: checkout}, nil
}

// ConfirmPayment handles the gateway's payment-success callback. The
// payload is trusted as-is; no signature verification is performed.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, razorpayOrderID, razorpayPaymentID string) (*models.Checkout, error) {
	checkout, err := s.checkouts.FindByRazorpayOrderID(ctx, razorpayOrderID)
	if err != nil {
		return nil, err
	}
	if checkout == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.checkouts.MarkPaid(ctx, checkout.ID, razorpayPaymentID); err != nil {
		return nil, err
	}
	checkout.RazorpayPaymentID = razorpayPaymentID
	checkout.PaymentStatus = models.PaymentStatusPaid

	if err := s.carts.Clear(ctx, checkout.UserID); err != nil {
		return nil, err
	}

	return checkout, nil
}

// sendOrderEmails dispatches the admin notice and the customer
// confirmation fire-and-forget; outcomes are logged, never surfaced.
func (s *CheckoutService) sendOrderEmails(checkout *models.Checkout) {
	if s.mailer == nil {
		return
	}

	adminSubject, adminBody := adminOrderEmail(checkout)
	s.dispatch(s.adminEmail, adminSubject, adminBody)
	s.dispatch(checkout.Email, "Order Confirmation - GetTrendy", customerOrderBody(checkout))
}

func (s *CheckoutService) dispatch(to, subject, body string) {
	if to == "" {
		return
	}
	go func() {
		if err := s.mailer.Send(to, subject, body); err != nil {
			log.Printf("Error sending email to %s: %v", to, err)
			return
		}
		log.Printf("Email sent to %s", to)
	}()
}

func adminOrderEmail(checkout *models.Checkout) (subject, body string) {
	if checkout.PaymentMethod == models.PaymentMethodCOD {
		return "New COD Order - GetTrendy", fmt.Sprintf(`Dear Team,

A new order has been placed on Get Trendy. Please find the order details below:

Order ID: %d
Customer Name: %s
Total Amount: ₹%.2f

Please process this order at the earliest. Let's ensure a smooth and timely fulfillment for our customer.

Best,
Get Trendy Order System`,
			checkout.ID,
			checkout.Address.FullName,
			checkout.TotalAmount,
		)
	}

	return "New Order Received - GetTrendy", fmt.Sprintf(`A new order has been placed with Order ID: %d.
Customer Name: %s
Total Amount: ₹%.2f`,
		checkout.ID,
		checkout.Address.FullName,
		checkout.TotalAmount,
	)
}

func customerOrderBody(checkout *models.Checkout) string {
	return fmt.Sprintf(`Hi %s,

Thank you for choosing GetTrendy!

We are excited to let you know that your order (ID: %d) has been received and is being processed by our team. Your order will be delivered within 2 to 3 working days.

Order Details:
- Total Amount: ₹%.2f
- Payment Method: %s
- Shipping Address: %s, %s, %s, %s

If you have any questions, feel free to contact us.

Thank you once again for shopping with GetTrendy!
Best Regards,
GetTrendy Team`,
		checkout.Address.FullName,
		checkout.ID,
		checkout.TotalAmount,
		checkout.PaymentMethod,
		checkout.Address.FullName,
		checkout.Address.StreetAddress,
		checkout.Address.City,
		checkout.Address.Zip,
	)
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
