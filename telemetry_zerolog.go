package sdk

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ZerologHooks adapts a zerolog.Logger into TelemetryHooks so callers get
// structured request/response logging without writing their own callbacks.
func ZerologHooks(logger zerolog.Logger) TelemetryHooks {
	return TelemetryHooks{
		OnHTTPResponse: func(ctx context.Context, req *http.Request, resp *http.Response, err error, latency time.Duration) {
			var evt *zerolog.Event
			if err != nil {
				evt = logger.Error().Err(err)
			} else {
				evt = logger.Info()
			}
			if resp != nil {
				evt = evt.Int("status", resp.StatusCode)
			}
			evt.Str("method", req.Method).
				Str("path", req.URL.Path).
				Dur("latency", latency).
				Msg("http_response")
		},
		OnLogEntry: func(ctx context.Context, entry LogEntry) {
			var evt *zerolog.Event
			if entry.Level == LogLevelError {
				evt = logger.Error()
			} else {
				evt = logger.Info()
			}
			evt.Fields(entry.Fields).Msg(entry.Message)
		},
		OnMetric: func(ctx context.Context, metric Metric) {
			evt := logger.Debug().Float64("value", metric.Value)
			for k, v := range metric.Labels {
				evt = evt.Str(k, v)
			}
			evt.Msg(metric.Name)
		},
	}
}
