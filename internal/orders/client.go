// Package orders handles order persistence: best-effort submission to the
// remote order store and the locally persisted order history that backs
// the profile view.
package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/pkg/circuitbreaker"
)

type submitAck struct {
	OrderID string `json:"orderId"`
}

// Client posts order payloads to the remote store. Callers treat any error
// here as transient and fall back to local persistence.
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[string]
	log        zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		breaker:    circuitbreaker.New[string]("order-store"),
		log:        log,
	}
}

// Submit posts the payload with the bearer token and returns the id the
// store assigned, or empty if the response carried none.
func (c *Client) Submit(ctx context.Context, payload domain.OrderPayload, token string) (string, error) {
	return c.breaker.Execute(func() (string, error) {
		body, err := json.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("encode order payload: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("build order request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("submit order: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", fmt.Errorf("order store returned status %d", resp.StatusCode)
		}

		var ack submitAck
		if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
			// a 2xx without a usable body still counts as accepted
			return "", nil
		}
		return ack.OrderID, nil
	})
}
