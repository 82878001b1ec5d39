package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Payment status recorded on an order after checkout.
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusFailed = "failed"
)

// PaymentService talks to the external payment gateway. The gateway is a
// mock endpoint: it takes no amount or line-item data and answers with an
// opaque confirmation token in the response body.
type PaymentService struct {
	baseURL    string
	path       string
	httpClient *http.Client
}

// NewPaymentService creates a gateway client with its own HTTP client so
// the timeout does not leak into other outbound calls.
func NewPaymentService(baseURL, path string, timeout time.Duration) *PaymentService {
	return &PaymentService{
		baseURL: baseURL,
		path:    path,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ProcessPayment issues a single charge request and returns the raw response
// body. The body is passed through untouched; callers treat it as an opaque
// token. ok reports whether the gateway answered with a 2xx status. There is
// no retry: a charge is attempted exactly once per checkout.
func (ps *PaymentService) ProcessPayment(reference string) (token string, ok bool, err error) {
	// The mock gateway expects a JSON body but ignores its content.
	jsonData, err := json.Marshal("")
	if err != nil {
		return "", false, fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, ps.baseURL+ps.path, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", false, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Payment-Reference", reference)

	resp, err := ps.httpClient.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("error reading response: %w", err)
	}

	return string(body), resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}
