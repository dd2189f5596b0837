package api

// CRM CLIENT

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("crm client is not configured")

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
	maxElapsed time.Duration
}

// Lead is a customer asking the shop to follow up on a quote.
type Lead struct {
	QuoteID      string            `json:"quote_id"`
	ChatID       int64             `json:"chat_id"`
	Name         string            `json:"name,omitempty"`
	Phone        string            `json:"phone"`
	Service      string            `json:"service"`
	Params       map[string]string `json:"params,omitempty"`
	FinalPrice   float64           `json:"final_price"`
	CustomerType string            `json:"customer_type"`
}

func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:     logger,
		maxElapsed: time.Minute,
	}
}

func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// SubmitLead posts a lead to the CRM. Transport errors and 5xx responses are
// retried with exponential backoff; 4xx responses are not.
func (c *Client) SubmitLead(ctx context.Context, lead Lead) error {
	const operation = "api.SubmitLead"

	if !c.Enabled() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", operation, err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = c.maxElapsed

	err = backoff.RetryNotify(
		func() error { return c.postLead(ctx, body) },
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			c.logger.Warn("CRM lead submission failed, retrying...",
				zap.String("quote_id", lead.QuoteID),
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	return nil
}

func (c *Client) postLead(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/api/leads", c.baseURL),
		bytes.NewReader(body),
	)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode >= 500:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	default:
		return backoff.Permanent(fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}
}
