package monopay

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.monobank.ua/"
	DefaultTimeout = 10 * time.Second
)

// RefundPolicy decides which invoice/cancel responses Refund accepts.
type RefundPolicy int

const (
	// RefundRequireStatus accepts any response carrying a status ("processing", "success", ...).
	RefundRequireStatus RefundPolicy = iota
	// RefundRequireSuccess accepts only status "success".
	RefundRequireSuccess
)

func (p RefundPolicy) String() string {
	if p == RefundRequireSuccess {
		return "strict"
	}
	return "literal"
}

// ParseRefundPolicy maps "literal"/"status" and "strict"/"success" to a policy.
func ParseRefundPolicy(s string) (RefundPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal", "status":
		return RefundRequireStatus, nil
	case "strict", "success":
		return RefundRequireSuccess, nil
	}
	return RefundRequireStatus, errors.New("unknown refund policy " + s)
}

type config struct {
	token           string
	platform        string
	platformVersion string
	baseURL         string
	timeout         time.Duration
	httpClient      *http.Client
	logger          *zap.Logger
	receiptEmail    string
	refundPolicy    RefundPolicy
}

func defaultConfig() config {
	return config{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
}

// Option configures a Client.
type Option func(*config)

// WithPlatform sets the X-Cms header.
func WithPlatform(name string) Option {
	return func(c *config) { c.platform = strings.TrimSpace(name) }
}

// WithPlatformVersion sets the X-Cms-Version header.
func WithPlatformVersion(version string) Option {
	return func(c *config) { c.platformVersion = strings.TrimSpace(version) }
}

// WithBaseURL points the client at another gateway host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *config) {
		if u = strings.TrimSpace(u); u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout overrides the 10s request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient supplies the underlying http.Client. It is copied; the timeout still applies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) { c.httpClient = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithReceiptEmail sets the address passed as "email" to the receipt endpoint.
func WithReceiptEmail(email string) Option {
	return func(c *config) { c.receiptEmail = strings.TrimSpace(email) }
}

func WithRefundPolicy(p RefundPolicy) Option {
	return func(c *config) { c.refundPolicy = p }
}
