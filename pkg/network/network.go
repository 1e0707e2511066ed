// Package network provides a small HTTP client for app code: text GET/POST,
// JSON POST, and a connectivity probe.
package network

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/logging"
)

// Default settings.
const (
	DefaultTimeout = 30 * time.Second
	DefaultProbe   = "https://www.google.com"
	probeTimeout   = 5 * time.Second
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method string
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Status)
}

// Option configures a Manager.
type Option func(*Manager)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) { m.client.SetTimeout(d) }
}

// WithRetry retries failed requests up to n times with backoff between
// minWait and maxWait.
func WithRetry(n int, minWait, maxWait time.Duration) Option {
	return func(m *Manager) {
		m.client.SetRetryCount(n).
			SetRetryWaitTime(minWait).
			SetRetryMaxWaitTime(maxWait)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) { m.logger = logging.OrNop(logger) }
}

// WithRateLimit caps outgoing requests per second. Zero or less disables it.
func WithRateLimit(rps float64) Option {
	return func(m *Manager) {
		if rps <= 0 {
			m.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		m.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithProbeURL sets the URL used by IsConnected.
func WithProbeURL(url string) Option {
	return func(m *Manager) { m.probeURL = url }
}

// Manager wraps resty with app defaults.
type Manager struct {
	client   *resty.Client
	limiter  *rate.Limiter
	logger   *zap.Logger
	probeURL string
}

// NewManager returns a Manager whose requests carry a
// "Droid-<appName>/1.0.0" user agent.
func NewManager(appName string, opts ...Option) *Manager {
	// Pooled transport from retryablehttp; retries are driven by resty.
	pooled := retryablehttp.NewClient()
	pooled.Logger = nil

	client := resty.New().
		SetTransport(pooled.HTTPClient.Transport).
		SetTimeout(DefaultTimeout).
		SetHeader("User-Agent", "Droid-"+appName+"/1.0.0").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	m := &Manager{
		client:   client,
		limiter:  rate.NewLimiter(rate.Inf, 0),
		logger:   zap.NewNop(),
		probeURL: DefaultProbe,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.Named("network").With(zap.String("app", appName))
	return m
}

// SetHeader adds a default header sent with every request.
func (m *Manager) SetHeader(key, value string) {
	m.client.SetHeader(key, value)
}

// Get fetches url and returns the body as text.
func (m *Manager) Get(ctx context.Context, url string, headers map[string]string) (string, error) {
	resp, err := m.do(ctx, http.MethodGet, url, headers, nil)
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}

// Post sends body with a JSON content type and returns the response text.
func (m *Manager) Post(ctx context.Context, url, body string, headers map[string]string) (string, error) {
	resp, err := m.do(ctx, http.MethodPost, url, headers, body)
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}

// PostJSON encodes in as the request body and decodes the response into out.
// out may be nil to discard the response.
func (m *Manager) PostJSON(ctx context.Context, url string, in, out any, headers map[string]string) error {
	data, err := sonic.Marshal(in)
	if err != nil {
		return errors.Wrap("network.PostJSON", errors.KindNetwork, err)
	}
	resp, err := m.do(ctx, http.MethodPost, url, headers, data)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		m.logger.Error("decode response failed", zap.String("url", url), zap.Error(err))
		return errors.Wrap("network.PostJSON", errors.KindNetwork, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// IsConnected reports whether the probe URL answers 200 within a few seconds.
func (m *Manager) IsConnected(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	resp, err := m.client.R().SetContext(ctx).Get(m.probeURL)
	return err == nil && resp.StatusCode() == http.StatusOK
}

func (m *Manager) do(ctx context.Context, method, url string, headers map[string]string, body any) (*resty.Response, error) {
	op := "network." + method
	if err := m.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(op, errors.KindNetwork, err)
	}

	req := m.client.R().SetContext(ctx).SetHeaders(headers)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, url)
	if err != nil {
		m.logger.Error("request failed", zap.String("method", method), zap.String("url", url), zap.Error(err))
		return nil, errors.Wrap(op, errors.KindNetwork, err)
	}
	if resp.IsError() {
		m.logger.Warn("request rejected",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", resp.StatusCode()))
		return nil, errors.Wrap(op, errors.KindNetwork, &StatusError{Method: method, URL: url, Status: resp.StatusCode()})
	}
	m.logger.Info("request ok",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", time.Since(start)))
	return resp, nil
}
