// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package replicated is a client for the parts of the Replicated vendor
// portal API used to issue customer licenses.
package replicated

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.replicated.com/vendor/v3"

// Vendor calls are not retried by default. A repeated POST /customer
// registers a second customer.
const DefaultRetryMax = 0

// TokenSource supplies the vendor API token sent in the authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// APIError is returned for any non-2xx response from the vendor API.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		msg = msg + ": " + e.Message
	}
	return msg
}

type Client struct {
	baseURL string
	tokens  TokenSource
	http    *retryablehttp.Client
}

type Option func(*Client)

func WithRetryMax(n int) Option {
	return func(c *Client) {
		c.http.RetryMax = n
	}
}

func WithRetryWait(min, max time.Duration) Option {
	return func(c *Client) {
		c.http.RetryWaitMin = min
		c.http.RetryWaitMax = max
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.http.Logger = &leveledLogger{logger.Sugar()}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http.HTTPClient = client
	}
}

func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = DefaultRetryMax
	rc.Logger = nil
	// Hand the final response back so that non-2xx bodies become APIErrors.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		http:    rc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doJSON sends body (when non-nil) as JSON and decodes the response into out
// (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var payload interface{}
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		payload = buf
	}
	raw, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decoding response of %s %s", method, path)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	url := c.baseURL + path
	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("authorization", token)
	if payload != nil {
		req.Header.Set("content-type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, url)
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading response of %s %s", method, url)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: res.StatusCode,
			Method:     method,
			URL:        url,
			Message:    strings.TrimSpace(string(raw)),
		}
	}
	return raw, nil
}

type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.s.Warnw(msg, keysAndValues...)
}
