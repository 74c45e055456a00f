package sdk

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

const defaultUserAgent = "portalgrid-sdk/0.4"

// Config wires the token provider, site origin, and telemetry for the Web API client.
type Config struct {
	// BaseURL is the hosting site origin (e.g. https://contoso.powerappsportals.com).
	BaseURL string
	// TokenProvider supplies the anti-forgery token; required.
	TokenProvider TokenProvider
	// HTTPClient overrides the underlying transport. When nil a client with a
	// cookie jar is used so the site's session cookies travel with every
	// request (the browser "credentials: include" equivalent).
	HTTPClient *http.Client
	// Retry overrides the transport retry policy.
	Retry RetryConfig
	// Telemetry receives observability callbacks.
	Telemetry TelemetryHooks
	// UserAgent overrides the User-Agent header.
	UserAgent string
}

// Client provides high-level helpers for interacting with a portal Web API.
type Client struct {
	baseURL     string
	transport   *retryablehttp.Client
	credentials *credentialCache
	telemetry   TelemetryHooks
	userAgent   string

	// Grouped service clients.
	Records *RecordsClient
	Files   *FilesClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	normalized, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.TokenProvider == nil {
		return nil, errors.New("sdk: token provider required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{Jar: jar}
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &Client{
		baseURL:     normalized,
		transport:   newRetryTransport(cfg.Retry.normalized(), httpClient),
		credentials: newCredentialCache(cfg.TokenProvider),
		telemetry:   cfg.Telemetry,
		userAgent:   ua,
	}
	client.Records = &RecordsClient{client: client}
	client.Files = &FilesClient{client: client}
	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("sdk: base URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("sdk: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("sdk: base URL missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("sdk: base URL missing host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// entityRef renders the OData entity reference segment "{set}({id})".
func entityRef(entitySet, id string) string {
	return fmt.Sprintf("%s(%s)", entitySet, id)
}
