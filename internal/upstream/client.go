// Package upstream is the HTTP client for the Bashyam HR REST API. It backs
// the domain repository interfaces; the console owns no records of its own.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/bashyamgroup/employee-console/internal/pkg/validator"
)

var (
	// ErrUnavailable covers transport failures and 5xx responses. Callers
	// treat these as retryable without losing view state.
	ErrUnavailable  = errors.New("upstream API unavailable")
	ErrUnauthorized = errors.New("upstream API rejected token")
	ErrNotFound     = errors.New("upstream resource not found")
)

type tokenKey struct{}

// WithToken stores the session's upstream bearer token for calls made with
// this context. Login is the only call issued without one.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do issues one API call. A non-nil body is sent as JSON; a non-nil out
// receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response for %s %s: %w", method, path, err)
		}
		return nil
	}

	return c.errorFromStatus(resp)
}

func (c *Client) errorFromStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if errs := decodeFieldErrors(resp.Body); len(errs) > 0 {
			return errs
		}
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
}

// decodeFieldErrors translates the upstream's per-field error body
// ({"email": ["msg", ...], "name": "msg"}) into ValidationErrors so they
// surface one-per-field, the same way local validation failures do.
func decodeFieldErrors(body io.Reader) validator.ValidationErrors {
	var raw map[string]interface{}
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil
	}

	fields := make([]string, 0, len(raw))
	for field := range raw {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var errs validator.ValidationErrors
	for _, field := range fields {
		switch v := raw[field].(type) {
		case string:
			errs = append(errs, validator.ValidationError{Field: field, Message: v})
		case []interface{}:
			var msgs []string
			for _, m := range v {
				if s, ok := m.(string); ok {
					msgs = append(msgs, s)
				}
			}
			if len(msgs) > 0 {
				errs = append(errs, validator.ValidationError{Field: field, Message: strings.Join(msgs, "; ")})
			}
		}
	}
	return errs
}
