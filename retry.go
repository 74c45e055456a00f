package sdk

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// RetryConfig controls the transport retry policy. Only transport failures
// (connection errors, timeouts) are retried; a response that arrives with an
// error status is classified immediately and never re-sent.
type RetryConfig struct {
	// MaxAttempts is the total attempt budget, initial call included.
	MaxAttempts int
	// Backoff is the fixed delay between attempts. Zero means immediate re-attempt.
	Backoff time.Duration
}

func defaultRetryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 3}
}

func (r RetryConfig) normalized() RetryConfig {
	cfg := r
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultRetryConfig().MaxAttempts
	}
	if cfg.Backoff < 0 {
		cfg.Backoff = 0
	}
	return cfg
}

// newRetryTransport builds the retryablehttp client implementing the policy:
// attempts are strictly sequential, retried only on transport errors, and the
// last transport error propagates unwrapped once the budget is exhausted.
func newRetryTransport(cfg RetryConfig, httpClient *http.Client) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = httpClient
	rc.RetryMax = cfg.MaxAttempts - 1
	rc.Logger = nil
	rc.Backoff = func(_, _ time.Duration, _ int, _ *http.Response) time.Duration {
		return cfg.Backoff
	}
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		// Any received response is final, whatever its status.
		return err != nil, nil
	}
	rc.ErrorHandler = func(resp *http.Response, err error, _ int) (*http.Response, error) {
		return resp, err
	}
	return rc
}
