// Package api is the HTTP client for the appliance's admin API.
//
// The client carries a pre-obtained Basic credential on every request. All
// failure modes at a call site (transport error, non-2xx status, undecodable
// body) collapse into a single error: callers only distinguish "worked" from
// "failed". Poll-style GETs deliberately carry no retry or backoff logic;
// every scheduled tick is an independent attempt.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pyshield/shieldtop/internal/errors"
	"github.com/pyshield/shieldtop/internal/logger"
)

// Client talks to a single appliance instance.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	log      logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client. Used by one-shot
// CLI commands to set an overall timeout; the dashboard poll loops use the
// default (no timeout - a hung poll just delays that task's next result).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger overrides the client's logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client for the appliance at baseURL, authenticating
// every request with the given Basic credential.
func NewClient(baseURL, username, password string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		http:     &http.Client{},
		log:      logger.NewEnvLogger("[api]"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the appliance base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Stats fetches the current firewall statistics snapshot.
func (c *Client) Stats(ctx context.Context) (*StatsSnapshot, error) {
	var snap StatsSnapshot
	if err := c.get(ctx, "/stats", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ProxyStats fetches the proxy aggregate counters.
func (c *Client) ProxyStats(ctx context.Context) (*ProxyAggregate, error) {
	var agg ProxyAggregate
	if err := c.get(ctx, "/proxy/stats", &agg); err != nil {
		return nil, err
	}
	return &agg, nil
}

// ProxyRequests fetches the recent intercepted-request list.
func (c *Client) ProxyRequests(ctx context.Context) (*ProxyRequestList, error) {
	var list ProxyRequestList
	if err := c.get(ctx, "/proxy/requests", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DDoSSettings fetches the current rate-limit configuration.
func (c *Client) DDoSSettings(ctx context.Context) (*DDoSSettings, error) {
	var s DDoSSettings
	if err := c.get(ctx, "/ddos/settings", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateDDoSSettings pushes new rate-limit configuration to the appliance.
func (c *Client) UpdateDDoSSettings(ctx context.Context, s DDoSSettings) error {
	return c.post(ctx, "/settings/ddos", s)
}

// AddURLs appends entries to the URL blacklist.
func (c *Client) AddURLs(ctx context.Context, items []string) error {
	return c.post(ctx, "/urls/add", urlsBody{Items: items})
}

// RemoveURLs removes entries from the URL blacklist.
func (c *Client) RemoveURLs(ctx context.Context, items []string) error {
	return c.post(ctx, "/urls/remove", urlsBody{Items: items})
}

// BlockPorts asks the appliance to block the given ports.
func (c *Client) BlockPorts(ctx context.Context, ports []int) error {
	return c.post(ctx, "/ports/block", portsBody{Ports: ports})
}

// UnblockPorts asks the appliance to unblock the given ports.
func (c *Client) UnblockPorts(ctx context.Context, ports []int) error {
	return c.post(ctx, "/ports/unblock", portsBody{Ports: ports})
}

// Health checks the appliance is reachable. The endpoint is unauthenticated
// but the credential is sent anyway; the appliance ignores it.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.get(ctx, "/health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			"Invalid request for "+path,
			"Check the server URL in your config")
	}
	return c.do(req, out)
}

// post performs an authenticated POST with a JSON body. The response body is
// discarded; only the status code matters.
func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "Failed to encode request body for "+path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			"Invalid request for "+path,
			"Check the server URL in your config")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

// do executes a prepared request with the Basic credential attached and
// collapses transport, status, and decode failures into one error.
func (c *Client) do(req *http.Request, out interface{}) error {
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("%s %s failed: %v", req.Method, req.URL.Path, err)
		return errors.WrapWithCode(err, errors.ErrAPI,
			fmt.Sprintf("%s %s failed", req.Method, req.URL.Path),
			"Check the appliance is running and reachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return errors.New(errors.ErrAuth,
			fmt.Sprintf("%s %s rejected (%s)", req.Method, req.URL.Path, resp.Status),
			"Check the dashboard username and password")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New(errors.ErrAPI,
			fmt.Sprintf("%s %s returned %s", req.Method, req.URL.Path, resp.Status),
			"")
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Debug("%s %s returned undecodable body: %v", req.Method, req.URL.Path, err)
		return errors.WrapWithCode(err, errors.ErrAPI,
			fmt.Sprintf("%s %s returned an unreadable response", req.Method, req.URL.Path),
			"The appliance may be a different version than this client expects")
	}
	return nil
}
