package sdk

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
)

// TokenProvider supplies the anti-forgery token attached to every Web API
// request. Acquisition may be slow (a network round trip); the client calls
// Token at most once per process lifetime unless acquisition fails.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenProviderFunc adapts a plain function into a TokenProvider.
type TokenProviderFunc func(ctx context.Context) (string, error)

// Token implements TokenProvider.
func (f TokenProviderFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticTokenProvider returns a fixed token. Useful for tests and for hosts
// that surface the verification token out of band (e.g. embedded in the page).
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider wraps a pre-acquired token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: strings.TrimSpace(token)}
}

// Token implements TokenProvider.
func (p *StaticTokenProvider) Token(ctx context.Context) (string, error) {
	if p == nil || p.token == "" {
		return "", errors.New("sdk: static token provider has no token")
	}
	return p.token, nil
}

const defaultTokenPath = "/_layout/tokenhtml"

// AntiforgeryTokenProvider fetches the request verification token from the
// hosting site's token endpoint.
type AntiforgeryTokenProvider struct {
	baseURL    string
	path       string
	httpClient *http.Client
}

// AntiforgeryTokenProviderConfig configures the token endpoint.
type AntiforgeryTokenProviderConfig struct {
	// BaseURL is the site origin; required.
	BaseURL string
	// Path overrides the token endpoint path (default /_layout/tokenhtml).
	Path string
	// HTTPClient overrides the transport used for the token fetch.
	HTTPClient *http.Client
}

// NewAntiforgeryTokenProvider validates the configuration and returns a provider.
func NewAntiforgeryTokenProvider(cfg AntiforgeryTokenProviderConfig) (*AntiforgeryTokenProvider, error) {
	normalized, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, ConfigError{Reason: err.Error()}
	}
	path := cfg.Path
	if strings.TrimSpace(path) == "" {
		path = defaultTokenPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AntiforgeryTokenProvider{
		baseURL:    normalized,
		path:       path,
		httpClient: httpClient,
	}, nil
}

// Token fetches the verification token. The client memoizes the result, so
// the fetch happens once per process unless it fails.
func (p *AntiforgeryTokenProvider) Token(ctx context.Context) (string, error) {
	if p == nil {
		return "", errors.New("sdk: antiforgery token provider is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+p.path, nil)
	if err != nil {
		return "", err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	//nolint:errcheck // best-effort cleanup on return
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		return "", classifyResponse(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", errors.New("sdk: token endpoint returned an empty token")
	}
	return token, nil
}
