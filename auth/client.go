package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultUserAgent = "portalgrid-sdk/1"

// TokenPath is the portal endpoint that mints a JWT for the signed-in user.
const TokenPath = "/_services/auth/token" //nolint:gosec // route path, not a credential

// Config controls how the auth client talks to the hosting site.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client fetches user tokens from the portal auth service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Error conveys HTTP failures from the auth service.
type Error struct {
	Status int
	Body   string
}

func (e Error) Error() string {
	return fmt.Sprintf("sdk/auth: http %d: %s", e.Status, strings.TrimSpace(e.Body))
}

// NewClient constructs a Client with sane defaults.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, errors.New("sdk/auth: base url required")
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		httpClient: client,
		userAgent:  ua,
	}, nil
}

// UserToken fetches the signed-in user's JWT. The portal returns 401 for
// anonymous sessions.
func (c *Client) UserToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+TokenPath, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	//nolint:errcheck // best-effort cleanup on return
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", Error{Status: resp.StatusCode, Body: string(body)}
	}
	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", errors.New("sdk/auth: auth service returned an empty token")
	}
	return token, nil
}

// Identity fetches the user token and decodes its claims.
func (c *Client) Identity(ctx context.Context) (*Claims, error) {
	token, err := c.UserToken(ctx)
	if err != nil {
		return nil, err
	}
	return ParseUnverified(token)
}
