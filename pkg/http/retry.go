package http

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryableTransport retries idempotent requests on network errors and gateway failures.
type RetryableTransport struct {
	Transport  http.RoundTripper
	RetryCount int
	// Backoff is the base delay, doubled on every retry. Defaults to one second.
	Backoff time.Duration
}

func (t *RetryableTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !isIdempotent(req.Method) || t.RetryCount <= 0 {
		return t.Transport.RoundTrip(req)
	}

	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading body: %w", err)
		}
		req.Body.Close()
	}

	var resp *http.Response
	var err error
	retries := -1
	for retries == -1 || (shouldRetry(err, resp) && retries < t.RetryCount) {
		if retries > -1 {
			// consume any response to reuse the connection.
			drainBody(resp)
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(t.backoff(retries)):
			}
		}

		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		resp, err = t.Transport.RoundTrip(req)

		retries++
	}

	return resp, err
}

func (t *RetryableTransport) backoff(retries int) time.Duration {
	base := t.Backoff
	if base <= 0 {
		base = time.Second
	}
	return time.Duration(math.Pow(2, float64(retries))) * base
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodOptions:
		return true
	}
	return false
}

func shouldRetry(err error, resp *http.Response) bool {
	if err != nil {
		return true
	}

	return resp.StatusCode == http.StatusBadGateway ||
		resp.StatusCode == http.StatusServiceUnavailable ||
		resp.StatusCode == http.StatusGatewayTimeout
}

func drainBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
