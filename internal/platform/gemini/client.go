package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ideaforge/forge-api/internal/config"
	"github.com/ideaforge/forge-api/internal/generation"
)

// Defaults applied when the configuration carries out-of-range retry or
// timeout settings.
const (
	defaultMaxAttempts    = 3
	defaultTimeoutSeconds = 30

	// maxErrorBodyBytes caps how much of a non-2xx response body is kept
	// in the error detail.
	maxErrorBodyBytes = 512
)

// Client calls the Gemini generateContent endpoint with bounded retry and
// uniform failure classification. It implements generation.Generator.
//
// No state is shared between calls: each Generate invocation owns its
// attempt counter, so concurrent calls need no coordination.
type Client struct {
	logger     *slog.Logger
	cfg        config.LLMConfig
	httpClient *http.Client

	// backoffUnit scales the exponential backoff (2^attempt units).
	// One second in production; tests shrink it to keep retries fast.
	backoffUnit time.Duration
}

var _ generation.Generator = (*Client)(nil)

// NewClient creates a Client from the LLM configuration. A missing API key
// is not a construction error: its absence is classified per call so the
// user can configure the credential and retry without a restart.
func NewClient(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.MaxAttempts < 1 {
		logger.Warn("invalid max attempts value, using default",
			"configured", cfg.MaxAttempts,
			"default", defaultMaxAttempts)
		cfg.MaxAttempts = defaultMaxAttempts
	}

	if cfg.TimeoutSeconds < 1 {
		logger.Warn("invalid timeout value, using default",
			"configured", cfg.TimeoutSeconds,
			"default", defaultTimeoutSeconds)
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}

	return &Client{
		logger: logger,
		cfg:    cfg,
		// The per-attempt timeout is enforced via request contexts, so the
		// http.Client itself carries no global deadline.
		httpClient:  &http.Client{},
		backoffUnit: time.Second,
	}, nil
}

// endpoint builds the generateContent URL with the credential passed as a
// query parameter, per the API contract.
func (c *Client) endpoint() string {
	q := url.Values{}
	q.Set("key", c.cfg.GeminiAPIKey)
	return fmt.Sprintf("%s/models/%s:generateContent?%s",
		strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.ModelName, q.Encode())
}

// backoffDelay returns the sleep before retrying after the given
// zero-based attempt: 2^attempt units, no jitter.
func (c *Client) backoffDelay(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * c.backoffUnit
}

// Generate performs one logical generation call against the Gemini API.
//
// Attempts are numbered 0..MaxAttempts-1. Transport-level failures
// (connection error, timeout, non-2xx status) are retried after an
// exponential backoff; an unparsable or malformed success body resolves
// immediately without retry, because re-sending the same request cannot
// repair a response the service already produced in the wrong shape.
func (c *Client) Generate(ctx context.Context, promptText, systemInstruction string) generation.Result {
	if c.cfg.GeminiAPIKey == "" {
		c.logger.WarnContext(ctx, "generation call rejected: no API credential configured")
		return generation.Failure(generation.ErrMissingCredential)
	}

	// Marshal cannot fail for these plain struct types.
	body, _ := json.Marshal(newGenerateRequest(promptText, systemInstruction))

	endpoint := c.endpoint()
	maxAttempts := c.cfg.MaxAttempts

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c.logger.InfoContext(ctx, "calling generation API",
			"model", c.cfg.ModelName,
			"attempt", attempt+1,
			"max_attempts", maxAttempts)

		result, transportErr := c.attempt(ctx, endpoint, body)
		if transportErr == nil {
			// Terminal outcome: success, malformed response, or parse
			// error. None of these are retried.
			return result
		}

		lastErr = transportErr
		c.logger.ErrorContext(ctx, "generation attempt failed",
			"attempt", attempt+1,
			"max_attempts", maxAttempts,
			"error", transportErr)

		if attempt == maxAttempts-1 {
			break
		}

		delay := c.backoffDelay(attempt)
		c.logger.InfoContext(ctx, "retrying after backoff",
			"attempt", attempt+1,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			c.logger.WarnContext(ctx, "generation call cancelled during backoff",
				"attempt", attempt+1,
				"ctx_err", ctx.Err())
			return generation.Failure(fmt.Errorf("%w: %v",
				generation.ErrTransportExhausted, ctx.Err()))
		}
	}

	c.logger.WarnContext(ctx, "generation attempts exhausted",
		"max_attempts", maxAttempts,
		"last_error", lastErr)
	return generation.Failure(fmt.Errorf("%w: last error: %v",
		generation.ErrTransportExhausted, lastErr))
}

// attempt performs a single request. A non-nil error is a transport-level
// failure eligible for retry; otherwise the returned Result is terminal.
func (c *Client) attempt(ctx context.Context, endpoint string, body []byte) (generation.Result, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return generation.Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return generation.Result{}, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", "error", closeErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return generation.Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return generation.Result{}, fmt.Errorf("unexpected status %d: %s",
			resp.StatusCode, truncate(raw, maxErrorBodyBytes))
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return generation.Failure(fmt.Errorf("%w: %v", generation.ErrParseError, err)), nil
	}

	text, ok := parsed.text()
	if !ok {
		return generation.Failure(fmt.Errorf("%w: no generated text in response",
			generation.ErrMalformedResponse)), nil
	}

	return generation.Success(text), nil
}

func truncate(b []byte, limit int) string {
	if len(b) <= limit {
		return string(b)
	}
	return string(b[:limit]) + "..."
}
