package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"monopay/pkg/monopay"

	"go.uber.org/zap"
)

const (
	defaultHTTPPort        = 8080
	defaultOperationsTable = "gateway_operations"
	defaultAWSRegion       = "us-east-1"
)

// Config is the service configuration, read from the environment (and .env through godotenv).
//
// Supported env vars:
//   - MONO_TOKEN (required for gateway routes)
//   - MONO_PLATFORM, MONO_PLATFORM_VERSION (optional X-Cms / X-Cms-Version headers)
//   - MONO_BASE_URL (default: https://api.monobank.ua/)
//   - MONO_TIMEOUT (Go duration or seconds; default: 10s)
//   - MONO_RECEIPT_EMAIL (optional; receipts are also sent there)
//   - MONO_REFUND_POLICY (literal|strict; default: literal)
//   - HTTP_PORT (default: 8080)
//   - OPERATIONS_TABLE (default: gateway_operations)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - LOG_LEVEL (debug|info|warn|error; default: info), APP_ENV (development enables console logs)
type Config struct {
	Mono            MonoConfig
	AWS             AWSConfig
	HTTPPort        int
	OperationsTable string
	LogLevel        string
	Env             string
}

type MonoConfig struct {
	Token           string
	Platform        string
	PlatformVersion string
	BaseURL         string
	Timeout         time.Duration
	ReceiptEmail    string
	RefundPolicy    monopay.RefundPolicy
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

func Load() (Config, error) {
	cfg := Config{
		Mono: MonoConfig{
			Token:           strings.TrimSpace(os.Getenv("MONO_TOKEN")),
			Platform:        os.Getenv("MONO_PLATFORM"),
			PlatformVersion: os.Getenv("MONO_PLATFORM_VERSION"),
			BaseURL:         getenvDefault("MONO_BASE_URL", monopay.DefaultBaseURL),
			ReceiptEmail:    strings.TrimSpace(os.Getenv("MONO_RECEIPT_EMAIL")),
		},
		AWS: AWSConfig{
			Region: getenvDefault("AWS_REGION", defaultAWSRegion),
			// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		OperationsTable: getenvDefault("OPERATIONS_TABLE", defaultOperationsTable),
		LogLevel:        strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		Env:             strings.ToLower(getenvDefault("APP_ENV", "production")),
	}

	timeout, err := parseTimeout(getenvDefault("MONO_TIMEOUT", monopay.DefaultTimeout.String()))
	if err != nil {
		return Config{}, err
	}
	cfg.Mono.Timeout = timeout

	policy, err := monopay.ParseRefundPolicy(os.Getenv("MONO_REFUND_POLICY"))
	if err != nil {
		return Config{}, fmt.Errorf("MONO_REFUND_POLICY: %w", err)
	}
	cfg.Mono.RefundPolicy = policy

	port, err := strconv.Atoi(getenvDefault("HTTP_PORT", strconv.Itoa(defaultHTTPPort)))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("HTTP_PORT: invalid port %q", os.Getenv("HTTP_PORT"))
	}
	cfg.HTTPPort = port

	return cfg, nil
}

func (c Config) Development() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}

// ClientOptions turns the monobank settings into SDK options.
func (m MonoConfig) ClientOptions(logger *zap.Logger) []monopay.Option {
	opts := []monopay.Option{
		monopay.WithBaseURL(m.BaseURL),
		monopay.WithTimeout(m.Timeout),
		monopay.WithRefundPolicy(m.RefundPolicy),
		monopay.WithLogger(logger),
	}
	if m.Platform != "" {
		opts = append(opts, monopay.WithPlatform(m.Platform))
	}
	if m.PlatformVersion != "" {
		opts = append(opts, monopay.WithPlatformVersion(m.PlatformVersion))
	}
	if m.ReceiptEmail != "" {
		opts = append(opts, monopay.WithReceiptEmail(m.ReceiptEmail))
	}
	return opts
}

func parseTimeout(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("MONO_TIMEOUT: must be positive, got %q", v)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("MONO_TIMEOUT: invalid duration %q", v)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
