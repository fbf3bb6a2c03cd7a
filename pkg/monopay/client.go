package monopay

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	MerchantDetailsPath      = "api/merchant/details"
	MerchantPubKeyPath       = "api/merchant/pubkey"
	MerchantStatementPath    = "api/merchant/statement"
	InvoiceCreatePath        = "api/merchant/invoice/create"
	InvoiceStatusPath        = "api/merchant/invoice/status"
	InvoiceCancelPath        = "api/merchant/invoice/cancel"
	InvoiceRemovePath        = "api/merchant/invoice/remove"
	InvoiceReceiptPath       = "api/merchant/invoice/receipt"
	InvoiceFinalizePath      = "api/merchant/invoice/finalize"
	InvoiceFiscalChecksPath  = "api/merchant/invoice/fiscal-checks"
	InvoicePaymentDirectPath = "api/merchant/invoice/payment-direct"
)

// Params is a caller-supplied JSON payload. Keys follow the gateway's camelCase names.
type Params map[string]any

// StatementFilter selects merchant statement entries. Zero To and empty Code are not sent.
type StatementFilter struct {
	From int64
	To   int64
	Code string
}

func (f StatementFilter) query() url.Values {
	q := url.Values{}
	q.Set("from", strconv.FormatInt(f.From, 10))
	if f.To != 0 {
		q.Set("to", strconv.FormatInt(f.To, 10))
	}
	if f.Code != "" {
		q.Set("code", f.Code)
	}
	return q
}

// Client talks to the monobank acquiring API. One method per endpoint; each call is sent once
// and its response passed through the interpreter. A Client is immutable and safe to share.
type Client struct {
	transport    *transport
	logger       *zap.Logger
	receiptEmail string
	refundPolicy RefundPolicy
}

// New builds a Client authenticated with token.
func New(token string, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	cfg.token = strings.TrimSpace(token)
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.token == "" {
		return nil, newLocalError(KindClientNotConfigured, "", "Mono API token is required.")
	}

	tr, err := newTransport(cfg)
	if err != nil {
		return nil, &Error{Kind: KindClientNotConfigured, Message: "invalid client configuration", Err: err}
	}
	cfg.logger.Info("[payment][gateway] mono client initialized",
		zap.String("base_url", tr.baseURL.String()),
		zap.Bool("platform_set", cfg.platform != ""),
		zap.Bool("receipt_email_set", cfg.receiptEmail != ""),
	)

	return &Client{
		transport:    tr,
		logger:       cfg.logger,
		receiptEmail: cfg.receiptEmail,
		refundPolicy: cfg.refundPolicy,
	}, nil
}

func (c *Client) RefundPolicy() RefundPolicy { return c.refundPolicy }

func (c *Client) call(ctx context.Context, method, endpoint string, query url.Values, body any) (map[string]any, error) {
	status, raw, err := c.transport.Do(ctx, method, endpoint, query, body)
	if err != nil {
		return nil, err
	}
	data, err := interpretResponse(status, raw)
	if err != nil {
		c.logger.Info("[payment][gateway] gateway rejected request",
			zap.String("endpoint", endpoint),
			zap.Int("status", status),
			zap.String("kind", string(KindOf(err))),
		)
		return nil, err
	}
	return data, nil
}

func invoiceQuery(invoiceID string) url.Values {
	return url.Values{"invoiceId": []string{invoiceID}}
}

func (c *Client) PublicKey(ctx context.Context) (map[string]any, error) {
	return c.call(ctx, http.MethodGet, MerchantPubKeyPath, nil, nil)
}

func (c *Client) Merchant(ctx context.Context) (map[string]any, error) {
	return c.call(ctx, http.MethodGet, MerchantDetailsPath, nil, nil)
}

func (c *Client) MerchantStatement(ctx context.Context, filter StatementFilter) (map[string]any, error) {
	return c.call(ctx, http.MethodGet, MerchantStatementPath, filter.query(), nil)
}

func (c *Client) CreateInvoice(ctx context.Context, params Params) (map[string]any, error) {
	if params == nil {
		params = Params{}
	}
	return c.call(ctx, http.MethodPost, InvoiceCreatePath, nil, params)
}

func (c *Client) InvoiceStatus(ctx context.Context, invoiceID string) (map[string]any, error) {
	return c.call(ctx, http.MethodGet, InvoiceStatusPath, invoiceQuery(invoiceID), nil)
}

// InvoiceCancel refunds a paid invoice.
func (c *Client) InvoiceCancel(ctx context.Context, invoiceID string) (map[string]any, error) {
	return c.call(ctx, http.MethodPost, InvoiceCancelPath, nil, Params{"invoiceId": invoiceID})
}

// InvoiceRemove invalidates an invoice that has not been paid.
func (c *Client) InvoiceRemove(ctx context.Context, invoiceID string) (map[string]any, error) {
	return c.call(ctx, http.MethodPost, InvoiceRemovePath, nil, Params{"invoiceId": invoiceID})
}

// CaptureInvoice finalizes a hold.
func (c *Client) CaptureInvoice(ctx context.Context, params Params) (map[string]any, error) {
	return c.call(ctx, http.MethodPost, InvoiceFinalizePath, nil, params)
}

// InvoiceReceipt sends the configured receipt email along, when one is set.
func (c *Client) InvoiceReceipt(ctx context.Context, invoiceID string) (map[string]any, error) {
	q := invoiceQuery(invoiceID)
	if c.receiptEmail != "" {
		q.Set("email", c.receiptEmail)
	}
	return c.call(ctx, http.MethodGet, InvoiceReceiptPath, q, nil)
}

func (c *Client) InvoiceFiscalChecks(ctx context.Context, invoiceID string) (map[string]any, error) {
	return c.call(ctx, http.MethodGet, InvoiceFiscalChecksPath, invoiceQuery(invoiceID), nil)
}

func (c *Client) InvoicePaymentDirect(ctx context.Context, params Params) (map[string]any, error) {
	if params == nil {
		params = Params{}
	}
	return c.call(ctx, http.MethodPost, InvoicePaymentDirectPath, nil, params)
}
