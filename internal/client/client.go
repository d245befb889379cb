// Package client talks to a FootBot backend over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/footbot/internal/logger"
	"github.com/ppiankov/footbot/internal/model"
	"github.com/ppiankov/footbot/internal/util"
	"github.com/ppiankov/footbot/internal/worker"
)

// Config holds the client settings. It is read once by New.
type Config struct {
	// Endpoint is the backend base URL, e.g. http://localhost:8000
	Endpoint string

	// Timeout bounds a single SendQuery call
	Timeout time.Duration

	// Proxy settings, environment proxies when empty
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string

	// Limiter throttles SendQuery per backend host (optional)
	Limiter *worker.Limiter

	Logger *zap.Logger

	// HTTPClient overrides the default transport (optional)
	HTTPClient *http.Client
}

// Client is a RemoteQueryClient. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *worker.Limiter
	logger     *zap.Logger
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Answer  string `json:"answer"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Cached  *bool  `json:"cached,omitempty"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// New creates a client. A zero Timeout uses model.DefaultQueryTimeout.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = model.DefaultQueryTimeout
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = model.DefaultEndpoint
	}

	// No http.Client.Timeout: every call is bounded by its own context.
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
		}
	}

	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		timeout:    timeout,
		httpClient: httpClient,
		limiter:    cfg.Limiter,
		logger:     logger.OrNop(cfg.Logger),
	}
}

// Endpoint returns the backend base URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Timeout returns the per-query budget
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// SendQuery posts message to /chat. Every failure is a *QueryError.
//
// The timeout and caller cancellation share one context, so whichever fires
// first aborts the exchange and a late response is never read.
func (c *Client) SendQuery(ctx context.Context, message string) (*model.QueryResult, error) {
	ctx, cancel := context.WithTimeoutCause(ctx, c.timeout, errQueryTimeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, c.endpoint); err != nil {
			// rate.Limiter refuses at once when the wait would outlast the
			// deadline; the query still fails at the end of its budget.
			<-ctx.Done()
			return nil, c.classify(ctx, err)
		}
	}

	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return nil, &QueryError{Kind: KindTransport, Detail: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, &QueryError{Kind: KindTransport, Detail: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classify(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classify(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := genericServerDetail
		var apiErr errorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Detail != "" {
			detail = apiErr.Detail
		}
		c.logger.Warn("backend rejected query",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", detail))
		return nil, &QueryError{Kind: KindServerRejected, Detail: detail, StatusCode: resp.StatusCode}
	}

	var payload chatResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, &QueryError{Kind: KindTransport, Detail: fmt.Sprintf("resposta inválida: %v", err), Err: err}
	}

	// Older backends only signal the fast path through their status note.
	cached := strings.Contains(payload.Message, "cache")
	if payload.Cached != nil {
		cached = *payload.Cached
	}

	c.logger.Debug("query answered",
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("cached", cached),
		zap.String("note", payload.Message))

	return &model.QueryResult{
		Answer:     payload.Answer,
		Succeeded:  payload.Success,
		StatusNote: payload.Message,
		Cached:     cached,
	}, nil
}

// classify maps an error observed under ctx to a *QueryError.
func (c *Client) classify(ctx context.Context, err error) *QueryError {
	cause := context.Cause(ctx)
	switch {
	case errors.Is(cause, errQueryTimeout), errors.Is(cause, context.DeadlineExceeded):
		c.logger.Warn("query timed out", zap.Duration("timeout", c.timeout))
		return &QueryError{Kind: KindTimeout, Detail: timeoutDetail, Err: err}
	case cause != nil:
		return &QueryError{Kind: KindCanceled, Detail: canceledDetail, Err: cause}
	default:
		c.logger.Warn("query transport failure", zap.Error(err))
		return &QueryError{Kind: KindTransport, Detail: err.Error(), Err: err}
	}
}

// CheckHealth probes /health. It never fails: every problem becomes an
// unhealthy report.
func (c *Client) CheckHealth(ctx context.Context) model.HealthReport {
	ctx, cancel := c.bounded(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/health", nil)
	if err != nil {
		return model.HealthReport{Status: model.HealthUnhealthy, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("health probe failed", zap.Error(err))
		return model.HealthReport{Status: model.HealthUnhealthy, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.HealthReport{Status: model.HealthUnhealthy, Message: "API não respondeu"}
	}

	var payload struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.HealthReport{Status: model.HealthUnhealthy, Message: err.Error()}
	}

	status := model.HealthUnhealthy
	if payload.Status == string(model.HealthHealthy) {
		status = model.HealthHealthy
	}
	return model.HealthReport{Status: status, Message: payload.Message}
}

// GetInfo fetches the backend metadata from /. Returns nil on any failure.
func (c *Client) GetInfo(ctx context.Context) map[string]any {
	return c.getObject(ctx, "/")
}

// GetStatus fetches the detailed status from /status. Returns nil on any failure.
func (c *Client) GetStatus(ctx context.Context) map[string]any {
	return c.getObject(ctx, "/status")
}

func (c *Client) getObject(ctx context.Context, path string) map[string]any {
	ctx, cancel := c.bounded(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("metadata request failed", zap.String("path", path), zap.Error(err))
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("metadata request rejected", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logger.Debug("metadata decode failed", zap.String("path", path), zap.Error(err))
		return nil
	}
	return out
}

// bounded applies the client timeout to ctx unless it already has a deadline.
func (c *Client) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
