package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/goto/approvalflow/pkg/opentelemetry/otelhttpclient"
	defaults "github.com/mcuadros/go-defaults"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const HeaderRequestID = "X-Request-Id"

type HTTPAuthConfig struct {
	Type string `mapstructure:"type" json:"type" yaml:"type" validate:"required,oneof=basic api_key bearer google_idtoken google_oauth2"`

	// basic auth
	Username string `mapstructure:"username,omitempty" json:"username,omitempty" yaml:"username,omitempty" validate:"required_if=Type basic"`
	Password string `mapstructure:"password,omitempty" json:"password,omitempty" yaml:"password,omitempty" validate:"required_if=Type basic"`

	// api key
	In    string `mapstructure:"in,omitempty" json:"in,omitempty" yaml:"in,omitempty" validate:"required_if=Type api_key,omitempty,oneof=query header"`
	Key   string `mapstructure:"key,omitempty" json:"key,omitempty" yaml:"key,omitempty" validate:"required_if=Type api_key"`
	Value string `mapstructure:"value,omitempty" json:"value,omitempty" yaml:"value,omitempty" validate:"required_if=Type api_key"`

	// bearer
	Token string `mapstructure:"token,omitempty" json:"token,omitempty" yaml:"token,omitempty" validate:"required_if=Type bearer"`

	// google_idtoken
	Audience string `mapstructure:"audience,omitempty" json:"audience,omitempty" yaml:"audience,omitempty" validate:"required_if=Type google_idtoken"`
	// CredentialsJSONBase64 accept a base64 encoded JSON stringified credentials
	CredentialsJSONBase64 string `mapstructure:"credentials_json_base64,omitempty" json:"credentials_json_base64,omitempty" yaml:"credentials_json_base64,omitempty"`
}

// HTTPClientConfig is the configuration of the client talking to the approval service
type HTTPClientConfig struct {
	URL          string            `mapstructure:"url" json:"url" yaml:"url" default:"http://localhost:8000" validate:"required,url"`
	Headers      map[string]string `mapstructure:"headers,omitempty" json:"headers,omitempty" yaml:"headers,omitempty"`
	Auth         *HTTPAuthConfig   `mapstructure:"auth,omitempty" json:"auth,omitempty" yaml:"auth,omitempty" validate:"omitempty,dive"`
	Timeout      time.Duration     `mapstructure:"timeout" json:"timeout" yaml:"timeout" default:"10s" validate:"gt=0"`
	RetryCount   int               `mapstructure:"retry_count" json:"retry_count" yaml:"retry_count" validate:"gte=0"`
	RetryBackoff time.Duration     `mapstructure:"retry_backoff" json:"retry_backoff" yaml:"retry_backoff" default:"500ms"`
	HTTPClient   *http.Client      `mapstructure:"-" json:"-" yaml:"-"`
}

// HTTPClient sends requests to a single base URL with the configured headers and auth applied
type HTTPClient struct {
	httpClient *http.Client
	config     *HTTPClientConfig
	baseURL    *url.URL
}

type HttpClientCreatorStruct struct {
}

type HttpClientCreator interface {
	GetHttpClientForGoogleOAuth2(ctx context.Context, creds []byte) (*http.Client, error)
	GetHttpClientForGoogleIdToken(ctx context.Context, creds []byte, audience string) (*http.Client, error)
}

// NewHTTPClient returns *HTTPClient
func NewHTTPClient(config *HTTPClientConfig, clientCreator HttpClientCreator) (*HTTPClient, error) {
	defaults.SetDefaults(config)
	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}
	baseURL, err := url.Parse(strings.TrimRight(config.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
			Transport: &RetryableTransport{
				Transport:  otelhttpclient.NewHTTPTransport(http.DefaultTransport, baseURL.Host),
				RetryCount: config.RetryCount,
				Backoff:    config.RetryBackoff,
			},
		}
	}

	if config.Auth != nil && (config.Auth.Type == "google_idtoken" || config.Auth.Type == "google_oauth2") {
		var creds []byte
		switch {
		case config.Auth.CredentialsJSONBase64 != "":
			var err error
			creds, err = decodeCredentials(config.Auth.CredentialsJSONBase64)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("missing credentials for google_idtoken or  google_oauth2 auth")
		}

		ctx := context.Background()
		if config.Auth.Type == "google_idtoken" {
			httpClient, err = clientCreator.GetHttpClientForGoogleIdToken(ctx, creds, config.Auth.Audience)
			if err != nil {
				return nil, err
			}
		} else if config.Auth.Type == "google_oauth2" {
			httpClient, err = clientCreator.GetHttpClientForGoogleOAuth2(ctx, creds)
			if err != nil {
				return nil, err
			}
		}
		if httpClient.Timeout == 0 {
			httpClient.Timeout = config.Timeout
		}
	}

	return &HTTPClient{
		httpClient: httpClient,
		config:     config,
		baseURL:    baseURL,
	}, nil
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

func (c *HttpClientCreatorStruct) GetHttpClientForGoogleOAuth2(ctx context.Context, creds []byte) (*http.Client, error) {
	credsConfig, err := google.CredentialsFromJSON(ctx, creds, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, credsConfig.TokenSource), nil
}

func (c *HttpClientCreatorStruct) GetHttpClientForGoogleIdToken(ctx context.Context, creds []byte, audience string) (*http.Client, error) {
	ts, err := idtoken.NewTokenSource(ctx, audience, idtoken.WithCredentialsJSON(creds))
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}

func decodeCredentials(encodedCreds string) ([]byte, error) {
	v, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("decoding credentials_json_base64: %w", err)
	}
	return v, nil
}

func (c *HTTPClient) setAuth(req *http.Request) {
	if c.config.Auth != nil {
		switch c.config.Auth.Type {
		case "basic":
			req.SetBasicAuth(c.config.Auth.Username, c.config.Auth.Password)
		case "api_key":
			switch c.config.Auth.In {
			case "query":
				q := req.URL.Query()
				q.Add(c.config.Auth.Key, c.config.Auth.Value)
				req.URL.RawQuery = q.Encode()
			case "header":
				req.Header.Add(c.config.Auth.Key, c.config.Auth.Value)
			default:
			}
		case "bearer":
			req.Header.Add("Authorization", "Bearer "+c.config.Auth.Token)
		default:
		}
	}
}

// NewRequest builds a request for path relative to the base URL. A non-nil body is sent as JSON.
func (c *HTTPClient) NewRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Do sends req with the configured headers and auth. Every request carries a fresh X-Request-Id
// unless the caller set one.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}
	c.setAuth(req)
	return c.httpClient.Do(req)
}
