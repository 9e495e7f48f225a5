package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gettrendy/config"
)

// RazorpayOrder is the gateway-side order created to collect an online
// payment, linked back to a checkout via its ID.
type RazorpayOrder struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	AmountDue int64  `json:"amount_due"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type razorpayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

type RazorpayClient struct {
	keyID      string
	keySecret  string
	apiURL     string
	httpClient *http.Client
}

func NewRazorpayClient(keyID, keySecret, apiURL string) (*RazorpayClient, error) {
	if keyID == "" || keySecret == "" || apiURL == "" {
		return nil, fmt.Errorf("razorpay configuration missing")
	}

	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		apiURL:    apiURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

func NewRazorpayClientFromConfig() (*RazorpayClient, error) {
	cfg := config.AppConfig
	return NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayAPIURL)
}

// CreateOrder creates a gateway order for amount in minor currency
// units (paise for INR).
func (r *RazorpayClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*RazorpayOrder, error) {
	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(r.keyID, r.keySecret)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Razorpay: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var apiErr razorpayError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Description != "" {
			return nil, fmt.Errorf("razorpay error: %s", apiErr.Error.Description)
		}
		return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var order RazorpayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse Razorpay response: %w", err)
	}

	if order.ID == "" {
		return nil, fmt.Errorf("razorpay returned empty order id")
	}

	return &order, nil
}
