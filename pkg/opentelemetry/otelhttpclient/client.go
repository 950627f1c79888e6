package otelhttpclient

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func New(name string, client *http.Client) *http.Client {
	if client == nil {
		return &http.Client{
			Transport: NewHTTPTransport(nil, name),
		}
	}
	client.Transport = NewHTTPTransport(client.Transport, name)
	return client
}

// NewHTTPTransport wraps base so that every round trip is traced and measured through the global
// providers. Spans are named after name, the method and the path.
func NewHTTPTransport(base http.RoundTripper, name string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return otelhttp.NewTransport(base,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return fmt.Sprintf("%s %s %s", name, r.Method, r.URL.Path)
		}),
	)
}
