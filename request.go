package sdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// RequestDescriptor describes one logical Web API call. Descriptors are
// ephemeral: built per call by the service clients and handed to do.
type RequestDescriptor struct {
	// Method defaults to GET when empty.
	Method string
	// Path is relative to the site origin and may carry a query string.
	Path string
	// Headers are caller-supplied headers, merged over the credential set.
	Headers http.Header
	// Body is the raw request payload; it stays re-readable across retries.
	Body []byte
	// ContentType defaults to application/json when a body is present.
	ContentType string
}

// do executes one logical call: merge credential headers, send through the
// retrying transport, classify hard failures, normalize successes.
func (c *Client) do(ctx context.Context, d RequestDescriptor) (*Result, error) {
	method := d.Method
	if method == "" {
		method = http.MethodGet
	}
	creds, err := c.credentials.get(ctx)
	if err != nil {
		return nil, err
	}
	var body any
	if d.Body != nil {
		body = d.Body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.buildURL(d.Path), body)
	if err != nil {
		return nil, err
	}
	for key, values := range creds {
		req.Header[key] = values
	}
	for key, values := range d.Headers {
		req.Header[http.CanonicalHeaderKey(key)] = values
	}
	if d.Body != nil && req.Header.Get("Content-Type") == "" {
		contentType := d.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	injectTraceparent(ctx, req.Request)

	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(ctx, req.Request)
	}
	c.telemetry.log(ctx, LogLevelInfo, "http_request", map[string]any{
		"method": method,
		"url":    req.URL.String(),
	})
	start := time.Now()
	resp, err := c.transport.Do(req)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(ctx, req.Request, resp, err, time.Since(start))
	}
	c.telemetry.metric(ctx, "sdk_http_request_latency_ms", float64(time.Since(start).Milliseconds()), map[string]string{
		"path": req.URL.Path,
	})
	if err != nil {
		// Transport failure after the retry budget; surfaced as-is so callers
		// can tell it apart from an APIError.
		return nil, err
	}
	//nolint:errcheck // best-effort cleanup on return
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyResponse(resp)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}
	return normalize(decoded), nil
}
