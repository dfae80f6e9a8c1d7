package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	traceIDHeader = "X-Trace-ID"

	defaultRetryCount   = 2
	defaultRetryWait    = 200 * time.Millisecond
	defaultRetryMaxWait = 2 * time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// The client forwards the trace id found in the request context as the
// X-Trace-ID header and retries idempotent requests (GET, PUT, DELETE) on
// transport errors and 503 responses. POST is never retried.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetContext(ctx).
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/notes")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(retryIdempotent)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if traceID, ok := TraceIDFromContext(req.Context()); ok {
			req.SetHeader(traceIDHeader, traceID)
		}
		return nil
	})

	return &HTTPClient{Client: client}
}

func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}

	switch resp.Request.Method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
	default:
		return false
	}

	return err != nil || resp.StatusCode() == http.StatusServiceUnavailable
}
