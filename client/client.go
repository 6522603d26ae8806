// Package client is a Go client for the thybackend REST API. It mirrors the
// website's data access: server-backed collections are fetched wholesale,
// every cart mutation adopts the server's response as the new truth, and a
// failed fetch keeps the previous state rather than discarding it.
//
// The client is explicitly constructed; there are no package-level
// singletons. Tests point Config.BaseURL at a fake backend.
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
)

// ErrLoginRequired reports that a mutation needs an authenticated user.
// Callers treat it as a signal to send the user to the login page; the
// attempted change is discarded, not queued.
var ErrLoginRequired = errors.New("login required")

// Doer is the transport. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// TokenProvider supplies the current bearer token and user id, or empty
// strings when nobody is logged in. It is consulted on every call, so a
// login or logout takes effect immediately.
type TokenProvider func() (token, userID string)

type Config struct {
	BaseURL       string
	TokenProvider TokenProvider
	HTTPClient    Doer

	// CurrencySymbol is used by FormatPrice for display strings. Optional.
	CurrencySymbol string
}

type Client struct {
	baseURL  string
	tokens   TokenProvider
	http     Doer
	currency string
}

func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	tp := cfg.TokenProvider
	if tp == nil {
		tp = func() (string, string) { return "", "" }
	}
	sym := cfg.CurrencySymbol
	if sym == "" {
		sym = "Rs."
	}
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		tokens:   tp,
		http:     hc,
		currency: sym,
	}
}

// FormatPrice renders an amount the way catalog cards display it.
func (c *Client) FormatPrice(amount float64) string {
	s := fmt.Sprintf("%g", amount)
	return c.currency + s
}

func (c *Client) authenticated() bool {
	tok, uid := c.tokens()
	return tok != "" && uid != ""
}

// do performs one API call. A bearer token and x-user-id header ride along
// whenever the provider has them. Non-2xx statuses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, uid := c.tokens(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
		if uid != "" {
			req.Header.Set("x-user-id", uid)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
			apiErr.Message = msg.Error
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the backend, the only
// way an invalid or expired token is ever discovered.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
