package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Do(t *testing.T) {
	tests := []struct {
		name   string
		auth   *HTTPAuthConfig
		verify func(t *testing.T, r *http.Request)
	}{
		{
			name: "api key in query",
			auth: &HTTPAuthConfig{Type: "api_key", In: "query", Key: "test_key", Value: "test_value"},
			verify: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "test_value", r.URL.Query().Get("test_key"))
				assert.Equal(t, "1", r.URL.Query().Get("skip"))
			},
		},
		{
			name: "api key in header",
			auth: &HTTPAuthConfig{Type: "api_key", In: "header", Key: "X-Api-Key", Value: "test_value"},
			verify: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "test_value", r.Header.Get("X-Api-Key"))
			},
		},
		{
			name: "bearer",
			auth: &HTTPAuthConfig{Type: "bearer", Token: "test_token"},
			verify: func(t *testing.T, r *http.Request) {
				assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
			},
		},
		{
			name: "basic",
			auth: &HTTPAuthConfig{Type: "basic", Username: "test", Password: "secret"},
			verify: func(t *testing.T, r *http.Request) {
				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "test", user)
				assert.Equal(t, "secret", pass)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/approval-requests/", r.URL.Path)
				assert.Equal(t, "custom", r.Header.Get("X-Custom"))
				assert.NotEmpty(t, r.Header.Get(HeaderRequestID))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"title":"Laptop"}`, string(body))
				tt.verify(t, r)

				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"message": "success"}`))
			}))
			defer server.Close()

			client, err := NewHTTPClient(&HTTPClientConfig{
				URL:     server.URL + "/api/",
				Headers: map[string]string{"X-Custom": "custom"},
				Auth:    tt.auth,
			}, nil)
			require.NoError(t, err)

			req, err := client.NewRequest(context.Background(), http.MethodPost, "/approval-requests/", url.Values{"skip": {"1"}}, map[string]string{"title": "Laptop"})
			require.NoError(t, err)

			resp, err := client.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			var got map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, "success", got["message"])
		})
	}
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	config := &HTTPClientConfig{}
	client, err := NewHTTPClient(config, nil)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", client.BaseURL())
	assert.Equal(t, config.Timeout, client.httpClient.Timeout)
	assert.IsType(t, &RetryableTransport{}, client.httpClient.Transport)
}

func TestNewHTTPClient_InvalidConfig(t *testing.T) {
	_, err := NewHTTPClient(&HTTPClientConfig{URL: "not a url"}, nil)
	assert.Error(t, err)
}

type MockHttpClientCreator struct {
	mock.Mock
}

func (m *MockHttpClientCreator) GetHttpClientForGoogleOAuth2(ctx context.Context, creds []byte) (*http.Client, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Client), args.Error(1)
}

func (m *MockHttpClientCreator) GetHttpClientForGoogleIdToken(ctx context.Context, creds []byte, audience string) (*http.Client, error) {
	args := m.Called(ctx, creds, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Client), args.Error(1)
}

func TestNewHTTPClient_GoogleOAuth2(t *testing.T) {
	credsJSON := `{"type":"service_account"}`
	encodedCreds := base64.StdEncoding.EncodeToString([]byte(credsJSON))
	expectedClient := &http.Client{}

	mockCreator := new(MockHttpClientCreator)
	mockCreator.On("GetHttpClientForGoogleOAuth2", mock.Anything, []byte(credsJSON)).Return(expectedClient, nil)

	config := &HTTPClientConfig{
		URL: "https://example.com",
		Auth: &HTTPAuthConfig{
			Type:                  "google_oauth2",
			CredentialsJSONBase64: encodedCreds,
		},
	}

	client, err := NewHTTPClient(config, mockCreator)

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, expectedClient, client.httpClient)
	assert.Equal(t, config.Timeout, client.httpClient.Timeout)
	mockCreator.AssertExpectations(t)
}

func TestNewHTTPClient_GoogleOAuth2WithEmptyCredentialJson(t *testing.T) {
	mockCreator := new(MockHttpClientCreator)
	config := &HTTPClientConfig{
		URL: "https://example.com",
		Auth: &HTTPAuthConfig{
			Type:                  "google_oauth2",
			CredentialsJSONBase64: "",
		},
	}

	client, err := NewHTTPClient(config, mockCreator)

	assert.Error(t, err, "missing credentials for google_idtoken or  google_oauth2 auth")
	assert.Nil(t, client)
	mockCreator.AssertExpectations(t)
}

func TestNewHTTPClient_GoogleIdToken(t *testing.T) {
	credsJSON := `{"type":"service_account"}`
	encodedCreds := base64.StdEncoding.EncodeToString([]byte(credsJSON))
	expectedClient := &http.Client{}

	mockCreator := new(MockHttpClientCreator)
	mockCreator.On("GetHttpClientForGoogleIdToken", mock.Anything, []byte(credsJSON), "audience").Return(expectedClient, nil)

	config := &HTTPClientConfig{
		URL: "https://example.com",
		Auth: &HTTPAuthConfig{
			Type:                  "google_idtoken",
			CredentialsJSONBase64: encodedCreds,
			Audience:              "audience",
		},
	}

	client, err := NewHTTPClient(config, mockCreator)

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, expectedClient, client.httpClient)
	mockCreator.AssertExpectations(t)
}

func TestNewHTTPClient_GoogleIdTokenErrorScenario(t *testing.T) {
	credsJSON := `{"type":"service_account"}`
	encodedCreds := base64.StdEncoding.EncodeToString([]byte(credsJSON))

	mockCreator := new(MockHttpClientCreator)
	mockCreator.On("GetHttpClientForGoogleIdToken", mock.Anything, []byte(credsJSON), "audience").Return(nil, fmt.Errorf("error creating http client for google_idtoken"))

	config := &HTTPClientConfig{
		URL: "https://example.com",
		Auth: &HTTPAuthConfig{
			Type:                  "google_idtoken",
			CredentialsJSONBase64: encodedCreds,
			Audience:              "audience",
		},
	}

	_, err := NewHTTPClient(config, mockCreator)

	assert.Equal(t, err.Error(), "error creating http client for google_idtoken")
	mockCreator.AssertExpectations(t)
}
