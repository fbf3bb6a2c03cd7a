package monopay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	headerToken           = "X-Token"
	headerPlatform        = "X-Cms"
	headerPlatformVersion = "X-Cms-Version"
)

// transport performs raw exchanges with the gateway. It never turns an HTTP status into an
// error; that is the response interpreter's job.
type transport struct {
	httpClient *http.Client
	baseURL    *url.URL
	headers    http.Header
	logger     *zap.Logger
	tracer     trace.Tracer
}

func newTransport(cfg config) (*transport, error) {
	base, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", cfg.baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	headers := http.Header{}
	headers.Set(headerToken, cfg.token)
	if cfg.platform != "" {
		headers.Set(headerPlatform, cfg.platform)
	}
	if cfg.platformVersion != "" {
		headers.Set(headerPlatformVersion, cfg.platformVersion)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{}
	} else {
		clone := *hc
		hc = &clone
	}
	if cfg.timeout > 0 {
		hc.Timeout = cfg.timeout
	}

	return &transport{
		httpClient: hc,
		baseURL:    base,
		headers:    headers,
		logger:     cfg.logger,
		tracer:     otel.Tracer("monopay"),
	}, nil
}

// Do sends one request. query is attached only when non-empty; body is JSON-encoded when non-nil.
func (t *transport) Do(ctx context.Context, method, endpoint string, query url.Values, body any) (int, []byte, error) {
	target := t.baseURL.ResolveReference(&url.URL{Path: endpoint})
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode %s %s request: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	ctx, span := t.tracer.Start(ctx, "monopay "+method+" "+endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.host", target.Host),
		attribute.String("monopay.endpoint", endpoint),
	)

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s %s request: %w", method, endpoint, err)
	}
	for key, values := range t.headers {
		req.Header[key] = append([]string(nil), values...)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	t.logger.Debug("[payment][gateway] request start",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.String("token", maskSecret(t.headers.Get(headerToken))),
	)

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		span.RecordError(fmt.Errorf("%T", err))
		span.SetStatus(codes.Error, "transport error")
		t.logger.Warn("[payment][gateway] request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return 0, nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("%s %s failed", method, endpoint), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, "read error")
		return resp.StatusCode, nil, &Error{
			Kind:       KindNetwork,
			Message:    fmt.Sprintf("%s %s: reading response body failed", method, endpoint),
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, "gateway error status")
	}
	t.logger.Debug("[payment][gateway] request done",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_len", len(raw)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp.StatusCode, raw, nil
}

// maskSecret keeps only the last 4 characters.
func maskSecret(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}
