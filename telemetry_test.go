package sdk

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestTelemetryHooksFireAroundRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var requests, responses, logs, metrics int
	client, err := NewClient(Config{
		BaseURL:       srv.URL,
		TokenProvider: NewStaticTokenProvider("tok-1"),
		HTTPClient:    srv.Client(),
		Telemetry: TelemetryHooks{
			OnHTTPRequest: func(ctx context.Context, req *http.Request) { requests++ },
			OnHTTPResponse: func(ctx context.Context, req *http.Request, resp *http.Response, err error, latency time.Duration) {
				responses++
				if err != nil {
					t.Errorf("unexpected response error: %v", err)
				}
				if resp == nil || resp.StatusCode != http.StatusNoContent {
					t.Error("hook should see the final response")
				}
			},
			OnLogEntry: func(ctx context.Context, entry LogEntry) { logs++ },
			OnMetric: func(ctx context.Context, metric Metric) {
				metrics++
				if metric.Name != "sdk_http_request_latency_ms" {
					t.Errorf("unexpected metric %q", metric.Name)
				}
			},
		},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.do(context.Background(), RequestDescriptor{Path: "/_api/accounts"}); err != nil {
		t.Fatalf("do: %v", err)
	}
	if requests != 1 || responses != 1 || logs != 1 || metrics != 1 {
		t.Fatalf("hooks fired %d/%d/%d/%d times, want 1 each", requests, responses, logs, metrics)
	}
}

func TestZerologHooksLogResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	client, err := NewClient(Config{
		BaseURL:       srv.URL,
		TokenProvider: NewStaticTokenProvider("tok-1"),
		HTTPClient:    srv.Client(),
		Telemetry:     ZerologHooks(logger),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.do(context.Background(), RequestDescriptor{Path: "/_api/accounts"}); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "http_response") {
		t.Fatalf("expected http_response entry, got %q", out)
	}
	if !strings.Contains(out, `"status":204`) {
		t.Fatalf("expected status field, got %q", out)
	}
}
