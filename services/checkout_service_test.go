package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gettrendy/libs"
	"gettrendy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckoutStore struct {
	mu        sync.Mutex
	nextID    int
	checkouts map[int]*models.Checkout
}

func newFakeCheckoutStore() *fakeCheckoutStore {
	return &fakeCheckoutStore{checkouts: make(map[int]*models.Checkout)}
}

func (f *fakeCheckoutStore) Create(_ context.Context, checkout *models.Checkout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	checkout.ID = f.nextID
	cp := *checkout
	f.checkouts[checkout.ID] = &cp
	return nil
}

func (f *fakeCheckoutStore) SetRazorpayOrderID(_ context.Context, checkoutID int, razorpayOrderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.checkouts[checkoutID]
	if !ok {
		return errors.New("checkout missing")
	}
	c.RazorpayOrderID = razorpayOrderID
	return nil
}

func (f *fakeCheckoutStore) FindByRazorpayOrderID(_ context.Context, razorpayOrderID string) (*models.Checkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.checkouts {
		if c.RazorpayOrderID == razorpayOrderID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCheckoutStore) MarkPaid(_ context.Context, checkoutID int, razorpayPaymentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.checkouts[checkoutID]
	if !ok {
		return errors.New("checkout missing")
	}
	c.RazorpayPaymentID = razorpayPaymentID
	c.PaymentStatus = models.PaymentStatusPaid
	return nil
}

func (f *fakeCheckoutStore) get(id int) *models.Checkout {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkouts[id]
}

func (f *fakeCheckoutStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.checkouts)
}

type fakeGateway struct {
	mu       sync.Mutex
	fail     bool
	amounts  []int64
	receipts []string
}

func (f *fakeGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*libs.RazorpayOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errors.New("gateway unavailable")
	}
	f.amounts = append(f.amounts, amount)
	f.receipts = append(f.receipts, receipt)
	return &libs.RazorpayOrder{
		ID:       fmt.Sprintf("order_fake_%d", len(f.receipts)),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (f *fakeMailer) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.sent))
	for _, m := range f.sent {
		out = append(out, m.to)
	}
	return out
}

func (f *fakeMailer) subjectFor(to string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.sent {
		if m.to == to {
			return m.subject
		}
	}
	return ""
}

func checkoutRequest(userID int, paymentMethod string) models.CheckoutRequest {
	return models.CheckoutRequest{
		UserID: userID,
		Address: models.AddressRequest{
			FullName:      "Ravi Kumar",
			StreetAddress: "12 MG Road",
			City:          "Bengaluru",
			Zip:           "560001",
		},
		ShippingMethod: models.ShippingFlatRate,
		PaymentMethod:  paymentMethod,
		Email:          "ravi@example.com",
		Phone:          "9876543210",
	}
}

func seededCart(t *testing.T) *fakeCartStore {
	t.Helper()
	store := newFakeCartStore(
		testProduct(1, "T-Shirt", 499.50),
		testProduct(2, "Hoodie", 999),
	)
	ctx := context.Background()
	require.NoError(t, store.AddItem(ctx, 7, 1, 2, "M"))
	require.NoError(t, store.AddItem(ctx, 7, 2, 1, "L"))
	return store
}

func TestCreateCheckoutEmptyCart(t *testing.T) {
	carts := newFakeCartStore()
	checkouts := newFakeCheckoutStore()
	svc := NewCheckoutService(carts, checkouts, &fakeGateway{}, nil, "admin@gettrendy.in")

	_, err := svc.Create(context.Background(), checkoutRequest(7, models.PaymentMethodCOD))
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Zero(t, checkouts.count())
}

func TestCreateCheckoutCODClearsCart(t *testing.T) {
	carts := seededCart(t)
	checkouts := newFakeCheckoutStore()
	mailer := &fakeMailer{}
	svc := NewCheckoutService(carts, checkouts, &fakeGateway{}, mailer, "admin@gettrendy.in")
	ctx := context.Background()

	result, err := svc.Create(ctx, checkoutRequest(7, models.PaymentMethodCOD))
	require.NoError(t, err)

	assert.Nil(t, result.Order)
	assert.Equal(t, models.StatusPending, result.Checkout.Status)
	assert.Equal(t, models.PaymentStatusPending, result.Checkout.PaymentStatus)
	assert.InDelta(t, 2*499.50+999, result.Checkout.TotalAmount, 0.001)
	require.Len(t, result.Checkout.Items, 2)

	// Snapshot items in the response carry the product detail loaded
	// from the cart.
	for _, item := range result.Checkout.Items {
		require.NotNil(t, item.Product)
	}
	assert.Equal(t, "T-Shirt", result.Checkout.Items[0].Product.Name)

	count, err := carts.Count(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.Eventually(t, func() bool {
		return len(mailer.recipients()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"admin@gettrendy.in", "ravi@example.com"}, mailer.recipients())
	assert.Equal(t, "New COD Order - GetTrendy", mailer.subjectFor("admin@gettrendy.in"))
	assert.Equal(t, "Order Confirmation - GetTrendy", mailer.subjectFor("ravi@example.com"))
}

func TestCreateCheckoutUPIKeepsCart(t *testing.T) {
	carts := seededCart(t)
	checkouts := newFakeCheckoutStore()
	gateway := &fakeGateway{}
	mailer := &fakeMailer{}
	svc := NewCheckoutService(carts, checkouts, gateway, mailer, "admin@gettrendy.in")
	ctx := context.Background()

	result, err := svc.Create(ctx, checkoutRequest(7, models.PaymentMethodUPI))
	require.NoError(t, err)

	require.NotNil(t, result.Order)
	assert.Equal(t, result.Order.ID, result.Checkout.RazorpayOrderID)
	assert.Equal(t, "INR", result.Order.Currency)

	// Amount goes to the gateway in paise.
	require.Len(t, gateway.amounts, 1)
	assert.Equal(t, int64(199900), gateway.amounts[0])
	assert.Equal(t, fmt.Sprintf("receipt_%d", result.Checkout.ID), gateway.receipts[0])

	count, err := carts.Count(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Eventually(t, func() bool {
		return len(mailer.recipients()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "New Order Received - GetTrendy", mailer.subjectFor("admin@gettrendy.in"))
}

func TestCreateCheckoutGatewayFailureLeavesSnapshot(t *testing.T) {
	carts := seededCart(t)
	checkouts := newFakeCheckoutStore()
	svc := NewCheckoutService(carts, checkouts, &fakeGateway{fail: true}, nil, "admin@gettrendy.in")
	ctx := context.Background()

	_, err := svc.Create(ctx, checkoutRequest(7, models.PaymentMethodUPI))
	require.Error(t, err)

	// The snapshot insert is not rolled back; the stored checkout has
	// no gateway order id.
	require.Equal(t, 1, checkouts.count())
	assert.Empty(t, checkouts.get(1).RazorpayOrderID)

	count, err := carts.Count(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCreateCheckoutUPIWithoutGateway(t *testing.T) {
	carts := seededCart(t)
	checkouts := newFakeCheckoutStore()
	svc := NewCheckoutService(carts, checkouts, nil, nil, "admin@gettrendy.in")

	_, err := svc.Create(context.Background(), checkoutRequest(7, models.PaymentMethodUPI))
	require.Error(t, err)
}

func TestCreateCheckoutUsesPointInTimePricing(t *testing.T) {
	carts := seededCart(t)
	checkouts := newFakeCheckoutStore()
	svc := NewCheckoutService(carts, checkouts, &fakeGateway{}, nil, "admin@gettrendy.in")
	ctx := context.Background()

	result, err := svc.Create(ctx, checkoutRequest(7, models.PaymentMethodCOD))
	require.NoError(t, err)

	carts.products[1].Price = 10000

	assert.InDelta(t, 2*499.50+999, result.Checkout.TotalAmount, 0.001)
	assert.InDelta(t, 2*499.50+999, checkouts.get(result.Checkout.ID).TotalAmount, 0.001)
}

func TestConfirmPaymentUnknownOrder(t *testing.T) {
	carts := seededCart(t)
	checkouts := newFakeCheckoutStore()
	svc := NewCheckoutService(carts, checkouts, &fakeGateway{}, nil, "admin@gettrendy.in")
	ctx := context.Background()

	_, err := svc.ConfirmPayment(ctx, "order_missing", "pay_123")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	count, err := carts.Count(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestConfirmPaymentMarksPaidAndClearsCart(t *testing.T) {
	carts := seededCart(t)
	checkouts := newFakeCheckoutStore()
	svc := NewCheckoutService(carts, checkouts, &fakeGateway{}, nil, "admin@gettrendy.in")
	ctx := context.Background()

	result, err := svc.Create(ctx, checkoutRequest(7, models.PaymentMethodUPI))
	require.NoError(t, err)

	checkout, err := svc.ConfirmPayment(ctx, result.Checkout.RazorpayOrderID, "pay_123")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPaid, checkout.PaymentStatus)
	assert.Equal(t, "pay_123", checkout.RazorpayPaymentID)
	assert.Equal(t, models.PaymentStatusPaid, checkouts.get(checkout.ID).PaymentStatus)

	count, err := carts.Count(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, count)
}
