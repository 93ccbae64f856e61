// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api is the shared request/response pipeline every resource
// client routes through. A single Client holds the base URL, attaches the
// bearer token and a request ID to every outgoing request, and centrally
// classifies failing responses: 401 terminates the session, 5xx and
// server-supplied messages surface as non-blocking notifications. The
// typed error is always re-raised to the caller; nothing is retried.
package api

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

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blogctl/cli/internal/httperrors"
	"blogctl/cli/internal/logging"
	"blogctl/cli/internal/notify"
)

// TokenSource yields the persisted bearer token, or "" when logged out.
// Reads are synchronous; the access layer never blocks on a login flow.
type TokenSource interface {
	Token() string
}

// RequestInterceptor mutates an outgoing request before it is sent.
type RequestInterceptor func(*http.Request)

// ResponseInterceptor reacts to a failing response. It returns true when
// it handled the failure, which stops the chain; the typed error is
// returned to the caller regardless.
type ResponseInterceptor func(*Error) bool

// Client is the shared HTTP access layer.
type Client struct {
	baseURL  string
	http     *http.Client
	notifier func() notify.Notifier

	reqChain  []RequestInterceptor
	respChain []ResponseInterceptor
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithNotifier routes the client's notifications to n instead of the
// process default.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Client) { c.notifier = func() notify.Notifier { return n } }
}

// notifier is resolved lazily so SetDefault in tests takes effect.
var defaultNotifier = notify.Default

// New creates a Client for the given base URL. tokens supplies the bearer
// token attached to every request; onExpire runs once per request that
// comes back 401 and is responsible for clearing the session and pointing
// the user at the login surface.
func New(baseURL string, tokens TokenSource, onExpire func(), opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 10 * time.Second},
		notifier: defaultNotifier,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Request chain, fixed order: bearer first, then correlation ID.
	c.reqChain = []RequestInterceptor{
		func(req *http.Request) {
			if tokens == nil {
				return
			}
			if token := tokens.Token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
				log.Trace().Str("authorization", logging.Mask("Bearer "+token)).Msg("bearer attached")
			}
		},
		func(req *http.Request) {
			req.Header.Set("X-Request-ID", uuid.NewString())
		},
	}

	// Response chain, fixed order: session expiry, server failure,
	// server-supplied message. First match wins.
	c.respChain = []ResponseInterceptor{
		func(e *Error) bool {
			if e.Status != http.StatusUnauthorized {
				return false
			}
			if onExpire != nil {
				onExpire()
			}
			c.notifier().Error("Authentication Error", "Your session has expired. Please log in again.")
			return true
		},
		func(e *Error) bool {
			if e.Status < http.StatusInternalServerError {
				return false
			}
			c.notifier().Error("Server Error", "Something went wrong on our end. Please try again later.")
			return true
		},
		func(e *Error) bool {
			if e.Message == "" {
				return false
			}
			c.notifier().Error("Error", e.Message)
			return true
		},
	}

	return c
}

// do performs one request through the interceptor chains and returns the
// response body on 2xx. Failing responses run the response chain and come
// back as *Error.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json, */*")

	for _, intercept := range c.reqChain {
		intercept(req)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return nil, httperrors.FormatNetworkError(err, fmt.Sprintf("calling %s %s", method, path))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}

	apiErr := &Error{Status: resp.StatusCode, Message: extractMessage(data)}
	for _, intercept := range c.respChain {
		if intercept(apiErr) {
			break
		}
	}
	return nil, apiErr
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// sendJSON marshals in, performs the request, and decodes into out when
// non-nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	data, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// delete performs a DELETE, discarding any body.
func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, "")
	return err
}

// sendMultipart performs a multipart/form-data request and decodes into
// out when non-nil.
func (c *Client) sendMultipart(ctx context.Context, method, path string, form *multipartForm, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	data, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// queryValues is a small helper for building query strings.
func queryValues(pairs ...string) string {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
