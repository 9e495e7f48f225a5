package libs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(49900), payload["amount"])
		assert.Equal(t, "INR", payload["currency"])
		assert.Equal(t, "receipt_42", payload["receipt"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_Abc123",
			"entity":   "order",
			"amount":   49900,
			"currency": "INR",
			"receipt":  "receipt_42",
			"status":   "created",
		})
	}))
	defer server.Close()

	client, err := NewRazorpayClient("rzp_test_key", "secret", server.URL)
	require.NoError(t, err)

	order, err := client.CreateOrder(context.Background(), 49900, "INR", "receipt_42")
	require.NoError(t, err)

	assert.Equal(t, "order_Abc123", order.ID)
	assert.Equal(t, int64(49900), order.Amount)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"code":        "BAD_REQUEST_ERROR",
				"description": "Order amount less than minimum amount allowed",
			},
		})
	}))
	defer server.Close()

	client, err := NewRazorpayClient("rzp_test_key", "secret", server.URL)
	require.NoError(t, err)

	_, err = client.CreateOrder(context.Background(), 10, "INR", "receipt_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Order amount less than minimum amount allowed")
}

func TestCreateOrderEmptyOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewRazorpayClient("rzp_test_key", "secret", server.URL)
	require.NoError(t, err)

	_, err = client.CreateOrder(context.Background(), 49900, "INR", "receipt_1")
	assert.Error(t, err)
}

func TestNewRazorpayClientMissingConfig(t *testing.T) {
	_, err := NewRazorpayClient("", "secret", "https://api.razorpay.com/v1")
	assert.Error(t, err)
}
