package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/settlement/internal/entity"
	"github.com/samandr77/microservices/settlement/pkg/config"
	"github.com/samandr77/microservices/settlement/pkg/transport"
)

// Client talks to the billing API that owns invoices, organization settings
// and payments.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

func NewClient(cfg config.Billing) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: transport.NewRateLimitedRoundTripper(
				transport.NewLoggingRoundTripper(http.DefaultTransport),
				cfg.RateLimit,
				cfg.RateBurst,
			),
		},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *Client) PendingInvoices(ctx context.Context) ([]entity.Invoice, error) {
	var resp []invoiceResponse

	err := c.do(ctx, http.MethodGet, "/invoices/pending", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get pending invoices: %w", err)
	}

	invoices := make([]entity.Invoice, 0, len(resp))

	for i, raw := range resp {
		inv, err := c.toInvoice(raw)
		if err != nil {
			return nil, fmt.Errorf("get pending invoices: invoice %d: %w", i, err)
		}

		invoices = append(invoices, inv)
	}

	return invoices, nil
}

func (c *Client) OrganizationSettings(ctx context.Context, organizationID string) (entity.OrganizationSettings, error) {
	var resp settingsResponse

	err := c.do(ctx, http.MethodGet, "/organization/"+url.PathEscape(organizationID)+"/settings", nil, &resp)
	if err != nil {
		if httpErr, ok := entity.AsHTTPError(err); ok && httpErr.Status == http.StatusNotFound {
			err = entity.NotFoundError(err)
		}

		return entity.OrganizationSettings{}, fmt.Errorf("get organization settings: %w", err)
	}

	err = c.validate.Struct(resp)
	if err != nil {
		return entity.OrganizationSettings{}, entity.ParseError(fmt.Errorf("not a valid organization settings: %w", err))
	}

	return entity.OrganizationSettings{
		OrganizationID: resp.OrganizationID,
		Currency:       entity.Currency(resp.Currency),
	}, nil
}

type payRequest struct {
	Amount json.Number `json:"amount"`
}

type payResponse struct {
	Status string `json:"status" validate:"required,oneof=paid wrong_amount"`
}

func (c *Client) PayPayment(ctx context.Context, paymentID string, amount decimal.Decimal) (entity.SettlementStatus, error) {
	req := payRequest{
		Amount: json.Number(amount.String()),
	}

	var resp payResponse

	err := c.do(ctx, http.MethodPost, "/payment/"+url.PathEscape(paymentID)+"/pay", req, &resp)
	if err != nil {
		return "", fmt.Errorf("pay payment: %w", err)
	}

	err = c.validate.Struct(resp)
	if err != nil {
		return "", entity.ParseError(fmt.Errorf("not a valid payment status: %w", err))
	}

	return entity.SettlementStatus(resp.Status), nil
}

// do sends the request and decodes a successful JSON answer into dst.
func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var reqBody io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.NetworkError(fmt.Errorf("do request: %w", err))
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.NetworkError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.WarnContext(ctx, "bad response status", "status", resp.StatusCode, "body", string(respBody))

		return &entity.HTTPError{
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	err = json.Unmarshal(respBody, dst)
	if err != nil {
		return entity.ParseError(fmt.Errorf("unmarshal response: %w", err))
	}

	return nil
}

// statusText returns the reason phrase sent by the server, falling back to
// the standard one.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}

	return text
}
