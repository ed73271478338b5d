package crawl

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays between fetch
// attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// statusError is implemented by fetch errors that carry an HTTP status.
type statusError interface {
	HTTPStatus() int
}

// Retryable reports whether a fetch error is worth retrying: rate
// limiting (429), server errors (5xx), and timeouts. Client errors
// such as 404 are permanent and retrying them only burns rate budget.
func Retryable(err error) bool {
	var se statusError
	if errors.As(err, &se) {
		status := se.HTTPStatus()
		return status == http.StatusTooManyRequests || status >= 500
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// FetchWithRetry fetches a URL, retrying retryable failures with the
// given backoff delays. Nil delays means DefaultRetryDelays.
// Non-retryable errors return immediately.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (string, error) {
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !Retryable(err) || attempt == len(delays) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
