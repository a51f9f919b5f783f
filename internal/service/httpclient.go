package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/swiftup/swiftup/internal/utils"
)

// UserAgent identifies swiftup on every outgoing request.
const UserAgent = "swiftup/1.0"

// DefaultTimeout bounds the full request on the JSON path and the
// response-header wait on the download path.
const DefaultTimeout = 30 * time.Second

// maxUnknownBody caps JSON bodies when the server declares no length.
const maxUnknownBody = 1 << 20

var (
	poolOnce     sync.Once
	pool         *http.Transport
	shutdownOnce sync.Once
)

// sharedPool returns the process-wide pooled transport, built lazily on
// first use. ResponseHeaderTimeout bounds only the wait for headers, so a
// long body transfer is not cut off.
func sharedPool() *http.Transport {
	poolOnce.Do(func() {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.ResponseHeaderTimeout = DefaultTimeout
		pool = t
	})
	return pool
}

// Shutdown releases the shared connection pool. Called exactly once from
// main at process exit; later calls are no-ops.
func Shutdown() {
	shutdownOnce.Do(func() {
		if pool != nil {
			pool.CloseIdleConnections()
		}
	})
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type DefaultHTTPClient struct{ *http.Client }

// NewHTTPClient returns a client for the JSON API path: shared pool plus a
// total-request timeout.
func NewHTTPClient(timeout time.Duration) *DefaultHTTPClient {
	return &DefaultHTTPClient{Client: &http.Client{Transport: sharedPool(), Timeout: timeout}}
}

// NewDownloadClient returns a client for streamed downloads: shared pool,
// header wait bounded by the transport, body transfer unbounded.
func NewDownloadClient() *DefaultHTTPClient {
	return &DefaultHTTPClient{Client: &http.Client{Transport: sharedPool()}}
}

// RequestFailedError is a non-200 answer from the JSON API path.
type RequestFailedError struct {
	URL     string
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("request to %s failed with status %d: %s", e.URL, e.Status, e.Message)
}

// DecodeFailedError is a 200 answer whose body is not the expected JSON.
type DecodeFailedError struct {
	URL string
	Err error
}

func (e *DecodeFailedError) Error() string {
	return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeFailedError) Unwrap() error { return e.Err }

// RequestJSON issues a single GET and decodes the body into T. Exactly 200
// is accepted; there are no retries.
func RequestJSON[T any](ctx context.Context, c HTTPClient, url string, header http.Header) (T, error) {
	var zero T

	parsedURL, err := utils.ParseSecureURL(url)
	if err != nil {
		return zero, fmt.Errorf("failed to parse URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedURL.String(), http.NoBody)
	if err != nil {
		return zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.Do(req)
	if err != nil {
		return zero, fmt.Errorf("failed to perform request: %w", err)
	}
	defer utils.Try(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return zero, &RequestFailedError{
			URL:     url,
			Status:  resp.StatusCode,
			Message: textualBody(resp),
		}
	}

	limit := int64(maxUnknownBody)
	if resp.ContentLength >= 0 {
		limit = resp.ContentLength
	}

	var out T
	if err := json.NewDecoder(io.LimitReader(resp.Body, limit)).Decode(&out); err != nil {
		return zero, &DecodeFailedError{URL: url, Err: err}
	}
	return out, nil
}

// textualBody returns the response body for diagnostics when it is text,
// capped so a huge error page cannot blow up the message.
func textualBody(resp *http.Response) string {
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, "text/") && !strings.Contains(ct, "json") {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(body))
}
