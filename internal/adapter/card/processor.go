package card

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/minivenmo/internal/domain/errors"
)

// TooManyRequestsError represents rate limiting signal from the card processor.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Processor charges credit cards.
type Processor interface {
	Charge(ctx context.Context, number string, amount decimal.Decimal) error
}

// NopProcessor approves every charge.
type NopProcessor struct{}

// Charge always succeeds.
func (NopProcessor) Charge(context.Context, string, decimal.Decimal) error { return nil }

// HTTPProcessor implements Processor via HTTP API.
type HTTPProcessor struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type chargeRequest struct {
	Number string          `json:"number"`
	Amount decimal.Decimal `json:"amount"`
}

// NewHTTPProcessor creates HTTP card processor client with default timeout.
func NewHTTPProcessor(baseURL string, logger *slog.Logger) (*HTTPProcessor, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse card processor url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("card processor url must be absolute")
	}
	return &HTTPProcessor{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Charge asks the processor to approve a charge against the card.
func (p *HTTPProcessor) Charge(ctx context.Context, number string, amount decimal.Decimal) error {
	endpoint := *p.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/charges")

	payload, err := json.Marshal(chargeRequest{Number: number, Amount: amount})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusPaymentRequired:
		return domainErrors.ErrPaymentCardDeclined
	case http.StatusTooManyRequests:
		return TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		body, _ := io.ReadAll(resp.Body)
		p.logger.Error("card charge failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("card processor error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
