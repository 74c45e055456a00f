package sdk

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/portalgrid/portalgrid-go/headers"
)

// credentialCache memoizes the credential header set for the client lifetime.
// Concurrent first callers share one in-flight token acquisition via the
// singleflight group; a failed acquisition is not cached, so a later call
// retries the provider.
type credentialCache struct {
	provider TokenProvider
	group    singleflight.Group
	mu       sync.RWMutex
	cached   http.Header
}

func newCredentialCache(provider TokenProvider) *credentialCache {
	return &credentialCache{provider: provider}
}

// get returns the memoized headers, acquiring the anti-forgery token on first use.
func (c *credentialCache) get(ctx context.Context) (http.Header, error) {
	c.mu.RLock()
	cached := c.cached
	c.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}
	v, err, _ := c.group.Do("credentials", func() (any, error) {
		token, err := c.provider.Token(ctx)
		if err != nil {
			return nil, err
		}
		h := http.Header{}
		h.Set(headers.AntiforgeryToken, token)
		h.Set("Accept", "application/json")
		h.Set(headers.Prefer, "odata.include-annotations=*")
		h.Set(headers.ODataMaxVersion, "4.0")
		h.Set(headers.ODataVersion, "4.0")
		c.mu.Lock()
		c.cached = h
		c.mu.Unlock()
		return h, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(http.Header), nil
}
