package api

// HTTP client for the booking backend: address lookup, calendar
// availability, model classification and the quote spreadsheet webhook.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// ErrUnexpectedStatus wraps non-retryable HTTP statuses.
var ErrUnexpectedStatus = errors.New("unexpected status")

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger

	maxRetries uint64
	interval   time.Duration
}

// Classification is the classifier's answer. CleaningFeature is nil when the
// model is not known well enough to tell.
type Classification struct {
	Type            string `json:"type"`
	CleaningFeature *bool  `json:"cleaning_feature"`
}

// QuoteSubmission is the snapshot posted to the spreadsheet webhook.
type QuoteSubmission struct {
	QuoteID     string          `json:"quote_id"`
	Vendor      string          `json:"vendor"`
	Mode        string          `json:"mode"`
	Total       int             `json:"total"`
	Discount    int             `json:"discount"`
	Customer    json.RawMessage `json:"customer"`
	Order       json.RawMessage `json:"order"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:     logger,
		maxRetries: 3,
		interval:   500 * time.Millisecond,
	}
}

// SetRetry changes how often and how quickly failed calls are retried.
func (c *Client) SetRetry(maxRetries uint64, initialInterval time.Duration) {
	c.maxRetries = maxRetries
	c.interval = initialInterval
}

// LookupAddress returns the address for a postal code, or "" when the code
// is unknown.
func (c *Client) LookupAddress(ctx context.Context, postalCode string) (string, error) {
	q := url.Values{"postal_code": {postalCode}}

	var result struct {
		Address string `json:"address"`
	}
	status, err := c.do(ctx, http.MethodGet, "/api/address?"+q.Encode(), nil, &result)
	if status == http.StatusNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup address: %w", err)
	}
	return result.Address, nil
}

// CheckAvailability returns the display message for a visit slot.
func (c *Client) CheckAvailability(ctx context.Context, date, at string) (string, error) {
	q := url.Values{"date": {date}, "time": {at}}

	var result struct {
		Message string `json:"message"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/availability?"+q.Encode(), nil, &result); err != nil {
		return "", fmt.Errorf("check availability: %w", err)
	}
	return result.Message, nil
}

func (c *Client) Classify(ctx context.Context, model, maker, vendor string) (Classification, error) {
	req := struct {
		Model  string `json:"model"`
		Maker  string `json:"maker"`
		Vendor string `json:"vendor"`
	}{model, maker, vendor}

	var result Classification
	if _, err := c.do(ctx, http.MethodPost, "/api/classify", req, &result); err != nil {
		return Classification{}, fmt.Errorf("classify: %w", err)
	}
	return result, nil
}

func (c *Client) SubmitQuote(ctx context.Context, s QuoteSubmission) error {
	if _, err := c.do(ctx, http.MethodPost, "/api/quotes", s, nil); err != nil {
		return fmt.Errorf("submit quote: %w", err)
	}
	return nil
}

// do sends one JSON request, retrying transport errors and 5xx responses.
// It returns the last status seen.
func (c *Client) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body []byte
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		body = data
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.interval
	retry := backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx)

	var status int
	err := backoff.RetryNotify(
		func() error {
			var err error
			status, err = c.once(ctx, method, path, body, out)
			return err
		},
		retry,
		func(err error, next time.Duration) {
			c.logger.Warn("API request failed, retrying...",
				zap.String("method", method),
				zap.String("path", path),
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	return status, err
}

func (c *Client) once(ctx context.Context, method, path string, body []byte, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return resp.StatusCode, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return resp.StatusCode, backoff.Permanent(fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode))
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, backoff.Permanent(fmt.Errorf("decode response: %w", err))
	}
	return resp.StatusCode, nil
}
