package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"lavadero/internal/apierr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource returns the current session token, or "" when logged out.
type TokenSource func() string

// Client talks to the upstream car-wash API. It attaches the bearer token to
// every request and fires the auth-error hook on any 401/403 so the session
// is torn down in one place instead of at every call site.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	token       TokenSource
	onAuthError func()
	log         *zap.Logger
}

func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        log,
	}
}

// SetTokenSource wires the session's token into outgoing requests. Must be
// called during startup, before any authenticated call.
func (c *Client) SetTokenSource(ts TokenSource) { c.token = ts }

// SetAuthErrorHook registers the hook invoked on 401/403 responses.
func (c *Client) SetAuthErrorHook(hook func()) { c.onAuthError = hook }

func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apierr.Wrap(err, "encoding request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apierr.Network(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return apierr.Network(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.Network(err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.log.Info("session rejected by upstream, forcing logout", zap.Int("status", resp.StatusCode))
		if c.onAuthError != nil {
			c.onAuthError()
		}
		return apierr.Auth(resp.StatusCode, upstreamMessage(raw, "session expired"))
	}
	if resp.StatusCode == http.StatusNotFound {
		return apierr.NotFound(upstreamMessage(raw, "not found"))
	}
	if resp.StatusCode >= 400 {
		return apierr.Server(resp.StatusCode, upstreamMessage(raw, "upstream error"))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return apierr.Wrap(err, "decoding response body")
		}
	}
	return nil
}

// upstreamMessage extracts the backend's {"message": ...} verbatim, falling
// back to a generic string when the body has no usable message.
func upstreamMessage(raw []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" && !strings.HasPrefix(msg, "{") && len(msg) < 200 {
		return msg
	}
	return fallback
}
