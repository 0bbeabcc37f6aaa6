package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to a HashiCorp Vault server over its HTTP API, reading
// KV v2 secret engines with a static token.
type Client struct {
	addr       string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Vault client for the given server address.
func NewClient(addr, token string) *Client {
	return &Client{
		addr:  addr,
		token: token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

// Configured reports whether an address and token are present.
func (c *Client) Configured() bool {
	return c.addr != "" && c.token != ""
}

// Health describes the Vault server's health and our authentication state.
type Health struct {
	VaultURL      string `json:"vault_url"`
	ServerHealthy bool   `json:"server_healthy"`
	Sealed        bool   `json:"sealed"`
	Standby       bool   `json:"standby"`
	Authenticated bool   `json:"authenticated"`
	Error         string `json:"error,omitempty"`
}

// CheckHealth queries sys/health and verifies the token with a
// token-self-lookup. Vault reports sealed/standby states through
// dedicated status codes, which are not failures here.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	h := &Health{VaultURL: c.addr}

	status, _, err := c.get(ctx, "/v1/sys/health")
	if err != nil {
		h.Error = "server unreachable"
		return h, nil
	}

	// 200 active, 429 standby, 501 uninitialized, 503 sealed
	switch status {
	case http.StatusOK:
		h.ServerHealthy = true
	case http.StatusTooManyRequests:
		h.ServerHealthy = true
		h.Standby = true
	case http.StatusServiceUnavailable:
		h.Sealed = true
	}

	lookupStatus, _, err := c.get(ctx, "/v1/auth/token/lookup-self")
	if err == nil && lookupStatus == http.StatusOK {
		h.Authenticated = true
	}

	return h, nil
}

// GetSecret reads a KV v2 secret. When field is non-empty only that field
// is returned.
func (c *Client) GetSecret(ctx context.Context, mount, path, field string) (map[string]any, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	p := fmt.Sprintf("/v1/%s/data/%s", url.PathEscape(mount), path)
	status, body, err := c.get(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := statusError(status); err != nil {
		return nil, err
	}

	var resp struct {
		Data struct {
			Data map[string]any `json:"data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal secret: %w", err)
	}

	if field == "" {
		return resp.Data.Data, nil
	}

	v, ok := resp.Data.Data[field]
	if !ok {
		return nil, fmt.Errorf("%w: field %q", ErrSecretNotFound, field)
	}
	return map[string]any{field: v}, nil
}

// ListSecrets lists the keys under a KV v2 path.
func (c *Client) ListSecrets(ctx context.Context, mount, path string) ([]string, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	p := fmt.Sprintf("/v1/%s/metadata/%s?list=true", url.PathEscape(mount), path)
	status, body, err := c.get(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := statusError(status); err != nil {
		return nil, err
	}

	var resp struct {
		Data struct {
			Keys []string `json:"keys"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal secret list: %w", err)
	}
	return resp.Data.Keys, nil
}

func (c *Client) get(ctx context.Context, path string) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.addr+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Vault-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to call vault: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func statusError(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrAuth
	case status == http.StatusNotFound:
		return ErrSecretNotFound
	case status >= 400:
		return fmt.Errorf("vault returned status %d", status)
	}
	return nil
}

// Addr exposes the configured server address.
func (c *Client) Addr() string { return c.addr }
