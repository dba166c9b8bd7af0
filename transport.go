package porkbun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/oinkbase/porkbun/internal/retry"
)

// envelope is the base response shape for all Porkbun API calls.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// transportError marks a network-level failure (connection refused,
// timeout). It is the only error class the transport retries.
type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return e.err.Error()
}

func (e *transportError) Unwrap() error {
	return e.err
}

// post sends a POST to path with payload as the JSON body, merging the
// credential fields in unless authenticated is false, and decodes the
// response into out. Network failures are retried with exponential
// backoff; API errors are classified and returned without retrying.
func (c *Client) post(ctx context.Context, path string, payload map[string]any, out any, authenticated bool) error {
	body := make(map[string]any, len(payload)+2)
	if authenticated {
		for k, v := range c.cfg.authBody() {
			body[k] = v
		}
	}
	for k, v := range payload {
		body[k] = v
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("porkbun: failed to encode request: %w", err)
	}

	attempts := c.cfg.MaxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	err = retry.Do(ctx, retry.Config{
		MaxAttempts: attempts,
		BaseDelay:   c.cfg.RetryDelay,
		Sleep:       c.cfg.sleep,
		OnRetry: func(attempt int, delay time.Duration, err error) {
			if c.cfg.Logger != nil {
				c.cfg.Logger.Debug("porkbun request retrying",
					"path", path, "attempt", attempt, "delay", delay, "error", err)
			}
		},
	}, isTransportError, func() error {
		return c.doOnce(ctx, path, data, out)
	})

	var te *transportError
	if errors.As(err, &te) {
		return &APIError{
			Message: fmt.Sprintf("request to %s failed after %d attempts: %v", path, attempts, te.err),
			cause:   te.err,
		}
	}
	return err
}

func isTransportError(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}

// doOnce performs a single request/response cycle with classification.
func (c *Client) doOnce(ctx context.Context, path string, data []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("porkbun: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.cfg.Logger != nil {
		c.cfg.Logger.Debug("porkbun request", "path", path)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transportError{err: err}
	}

	var env envelope
	envErr := json.Unmarshal(raw, &env)

	// HTTP status is authoritative over whatever the body claims.
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrAuthentication, messageOr(env, "invalid API credentials"))
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAuthorization, messageOr(env, "access denied"))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, messageOr(env, "resource not found"))
	case http.StatusTooManyRequests:
		return &RateLimitError{
			Message:    messageOr(env, "rate limit exceeded"),
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	if envErr != nil {
		return &APIError{
			Message:    fmt.Sprintf("invalid JSON response from %s", path),
			StatusCode: resp.StatusCode,
			cause:      envErr,
		}
	}

	if env.Status == "ERROR" {
		return classifyMessage(env.Message, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{
				Message:    fmt.Sprintf("failed to decode response from %s: %v", path, err),
				StatusCode: resp.StatusCode,
				cause:      err,
			}
		}
	}

	return nil
}

// classifyMessage maps an API error message onto the error taxonomy by
// substring. Unrecognized messages become a generic *APIError.
func classifyMessage(message string, statusCode int) error {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "invalid api key") ||
		strings.Contains(msg, "authentication"):
		return fmt.Errorf("%w: %s", ErrAuthentication, message)
	case strings.Contains(msg, "not authorized") ||
		strings.Contains(msg, "permission"):
		return fmt.Errorf("%w: %s", ErrAuthorization, message)
	case strings.Contains(msg, "not found") ||
		strings.Contains(msg, "does not exist"):
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	}
	return &APIError{Message: message, StatusCode: statusCode}
}

func messageOr(env envelope, fallback string) string {
	if env.Message != "" {
		return env.Message
	}
	return fallback
}

// parseRetryAfter converts a Retry-After header value (seconds, possibly
// fractional) to a duration. Malformed or absent values yield zero.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	secs, err := strconv.ParseFloat(header, 64)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}
