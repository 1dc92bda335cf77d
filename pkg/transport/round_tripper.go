package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/samandr77/microservices/settlement/pkg/logger"
)

// LoggingRoundTripper logs every outgoing request and propagates the run id
// of the context as X-Request-Id.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	return &LoggingRoundTripper{Transport: transport}
}

func (l *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID == "" {
		reqID = logger.RunIDFromCtx(ctx)
	}

	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	start := time.Now()

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	return resp, nil
}

// RateLimitedRoundTripper delays requests so that no more than the limiter
// allows reach the remote side.
type RateLimitedRoundTripper struct {
	Transport http.RoundTripper
	Limiter   *rate.Limiter
}

// NewRateLimitedRoundTripper limits transport to rps requests per second with
// the given burst. A non-positive rps disables the limit.
func NewRateLimitedRoundTripper(transport http.RoundTripper, rps float64, burst int) *RateLimitedRoundTripper {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}

	return &RateLimitedRoundTripper{
		Transport: transport,
		Limiter:   rate.NewLimiter(limit, max(burst, 1)),
	}
}

func (l *RateLimitedRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	err := l.Limiter.Wait(r.Context())
	if err != nil {
		return nil, fmt.Errorf("wait rate limiter: %w", err)
	}

	return l.Transport.RoundTrip(r)
}
