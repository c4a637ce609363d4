package puxbay

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Doer is the single dispatch capability resource services depend on.
// *Client implements it; tests may substitute their own.
type Doer interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// Call dispatches a request and decodes the response into a new T.
func Call[T any](ctx context.Context, d Doer, method, path string, body any) (*T, error) {
	var out T
	if err := d.Do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// response is one fully read HTTP attempt.
type response struct {
	statusCode int
	body       []byte
}

// Do sends method to path relative to the base URL, retrying transient
// failures, and decodes a successful body into out. A nil out discards the
// body. path may carry an encoded query string.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.recordCall(method, started, err)
	}()

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	endpoint := c.cfg.BaseURL + "/" + strings.TrimLeft(path, "/")
	requestID := uuid.NewString()
	logger := c.logger.With().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Logger()

	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return limiterError(ctx, err)
			}
		}

		logger.Debug().Int("attempt", attempt).Msg("Sending request")

		resp, sendErr := c.send(ctx, method, endpoint, payload, requestID)
		last := attempt >= c.cfg.MaxRetries
		delay := backoff(c.cfg.RetryBaseDelay, c.cfg.MaxRetryDelay, attempt)

		if sendErr != nil {
			c.metrics.recordAttempt(method, 0)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if last {
				logger.Debug().Err(sendErr).Int("attempts", attempt+1).Msg("Request failed")
				return &TransportError{
					Method:   method,
					URL:      endpoint,
					Attempts: attempt + 1,
					Err:      sendErr,
				}
			}
			logger.Warn().Err(sendErr).Int("attempt", attempt).Dur("delay", delay).Msg("Transport failure, retrying")
		} else {
			c.metrics.recordAttempt(method, resp.statusCode)

			if resp.statusCode >= 200 && resp.statusCode < 300 {
				return decodeBody(resp, out)
			}

			if !isRetryableStatus(resp.statusCode) || last {
				apiErr := newAPIError(resp.statusCode, resp.body, requestID)
				logger.Debug().
					Int("status", resp.statusCode).
					Str("kind", apiErr.Kind.String()).
					Int("attempts", attempt+1).
					Msg("Request failed")
				return apiErr
			}
			logger.Warn().
				Int("status", resp.statusCode).
				Int("attempt", attempt).
				Dur("delay", delay).
				Msg("Transient status, retrying")
		}

		c.metrics.recordRetry(method)

		if err := c.wait(ctx, delay); err != nil {
			return err
		}
	}
}

// send performs a single attempt. The request body is rebuilt from payload
// and the response body is read and closed before returning.
func (c *Client) send(ctx context.Context, method, endpoint string, payload []byte, requestID string) (*response, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-API-Key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &response{
		statusCode: resp.StatusCode,
		body:       body,
	}, nil
}

// readBody drains the response, inflating gzip and deflate encodings.
// Setting Accept-Encoding by hand turns off net/http's own decompression.
func readBody(resp *http.Response) ([]byte, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return raw, nil
	}

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case "deflate":
		// Servers disagree on whether deflate means zlib-wrapped or raw.
		if zr, err := zlib.NewReader(bytes.NewReader(raw)); err == nil {
			defer zr.Close()
			return io.ReadAll(zr)
		}
		fr := flate.NewReader(bytes.NewReader(raw))
		defer fr.Close()
		return io.ReadAll(fr)
	default:
		return raw, nil
	}
}

// decodeBody applies the success-path decode policy.
func decodeBody(resp *response, out any) error {
	if out == nil {
		return nil
	}
	// A bare null carries no value either.
	if trimmed := bytes.TrimSpace(resp.body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &DecodeError{StatusCode: resp.statusCode, Body: resp.body, Err: ErrEmptyBody}
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return &DecodeError{StatusCode: resp.statusCode, Body: resp.body, Err: err}
	}
	return nil
}

// limiterError maps a failed limiter wait onto the context error. Wait fails
// early, before ctx is done, when the next token arrives after the deadline.
func limiterError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if _, ok := ctx.Deadline(); ok {
		return fmt.Errorf("rate limiter: %w: %w", context.DeadlineExceeded, err)
	}
	return fmt.Errorf("rate limiter: %w", err)
}
