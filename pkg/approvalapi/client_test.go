package approvalapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/approvalapi"
	httpClient "github.com/goto/approvalflow/pkg/http"
	"github.com/goto/approvalflow/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client *approvalapi.Client
}

func TestClient(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)

	client, err := approvalapi.NewClient(&httpClient.HTTPClientConfig{
		URL:     s.server.URL,
		Timeout: time.Second,
	}, log.NewNoop())
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *ClientTestSuite) TestListRequests() {
	s.Run("should send filters as query params and decode the list", func() {
		s.mux.HandleFunc("/approval-requests/", func(w http.ResponseWriter, r *http.Request) {
			s.Equal(http.MethodGet, r.Method)
			q := r.URL.Query()
			s.Equal("12", q.Get("skip"))
			s.Equal("12", q.Get("limit"))
			s.Equal("pending", q.Get("status"))
			s.Equal("laptop", q.Get("search"))
			s.Empty(q.Get("priority"))
			s.Empty(q.Get("requester_id"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"requests": [{"id": 3, "title": "Laptop", "status": "pending", "priority": "high",
					"created_at": "2024-01-02T10:00:00.123456", "reference_number": "REQ-20240102-0003", "comments": []}],
				"total": 13, "page": 2, "per_page": 12
			}`))
		})

		list, err := s.client.ListRequests(context.Background(), domain.ListApprovalRequestsFilter{
			Skip: 12, Limit: 12, Status: "pending", Search: "laptop",
		})

		s.Require().NoError(err)
		s.Equal(13, list.Total)
		s.Equal(2, list.Page)
		s.Require().Len(list.Requests, 1)
		s.Equal(3, list.Requests[0].ID)
		s.Equal("REQ-20240102-0003", list.Requests[0].ReferenceNumber)
		s.Equal(2024, list.Requests[0].CreatedAt.Year())
	})
}

func (s *ClientTestSuite) TestUpdateRequest() {
	s.mux.HandleFunc("/approval-requests/7", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPut, r.Method)
		s.Equal("2", r.URL.Query().Get("user_id"))

		var body map[string]interface{}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("approved", body["status"])
		s.Equal("ok", body["comment"])

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id": 7, "status": "approved", "approved_at": "2024-01-02T10:00:00",
		})
	})

	r, err := s.client.UpdateRequest(context.Background(), 7, domain.UpdateApprovalRequest{Status: "approved", Comment: "ok"}, 2)

	s.Require().NoError(err)
	s.Equal(domain.ApprovalStatusApproved, r.Status)
	s.NotNil(r.ApprovedAt)
}

func (s *ClientTestSuite) TestAddComment() {
	s.mux.HandleFunc("/approval-requests/7/comments", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		q := r.URL.Query()
		s.Equal("please hurry", q.Get("content"))
		s.Equal("3", q.Get("user_id"))
		s.Equal("true", q.Get("is_internal"))
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Kommentar tilføjet", "comment_id": 41})
	})

	result, err := s.client.AddComment(context.Background(), 7, "please hurry", 3, true)

	s.Require().NoError(err)
	s.Equal(41, result.CommentID)
}

func (s *ClientTestSuite) TestErrorClassification() {
	tests := []struct {
		name      string
		status    int
		body      string
		wantKind  domain.RejectionKind
		wantErr   error
		transport bool
		reason    string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"detail":"Anmodning ikke fundet"}`, wantKind: domain.RejectionKindNotFound, wantErr: domain.ErrNotFound, reason: "Anmodning ikke fundet"},
		{name: "forbidden", status: http.StatusForbidden, body: `{"detail":"no"}`, wantKind: domain.RejectionKindUnauthorized, wantErr: domain.ErrUnauthorized},
		{name: "conflict", status: http.StatusConflict, body: `{}`, wantKind: domain.RejectionKindConflict, wantErr: domain.ErrConflict},
		{name: "bad request", status: http.StatusBadRequest, body: `{"detail":"Email allerede registreret"}`, wantKind: domain.RejectionKindValidationFailed, wantErr: domain.ErrValidationFailed, reason: "Email allerede registreret"},
		{
			name:     "unprocessable entity",
			status:   http.StatusUnprocessableEntity,
			body:     `{"detail":[{"loc":["body","title"],"msg":"field required","type":"value_error.missing"}]}`,
			wantKind: domain.RejectionKindValidationFailed,
			wantErr:  domain.ErrValidationFailed,
			reason:   "title: field required",
		},
		{name: "internal error", status: http.StatusInternalServerError, body: `{"detail":"Intern serverfejl"}`, transport: true},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: ``, transport: true},
	}

	s.mux.HandleFunc("/approval-requests/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/approval-requests/"))
		s.Require().NoError(err)
		w.WriteHeader(tests[id].status)
		io.WriteString(w, tests[id].body)
	})

	for i, tt := range tests {
		i, tt := i, tt
		s.Run(tt.name, func() {
			_, err := s.client.GetRequest(context.Background(), i)

			s.Require().Error(err)
			if tt.transport {
				s.True(approvalapi.IsTransportError(err))
				s.False(domain.IsRejected(err))
				return
			}
			var rejected *domain.RejectedError
			s.Require().True(errors.As(err, &rejected))
			s.Equal(tt.wantKind, rejected.Kind)
			s.ErrorIs(err, tt.wantErr)
			if tt.reason != "" {
				s.Equal(tt.reason, rejected.Reason)
			}
		})
	}
}

func (s *ClientTestSuite) TestMalformedResponse() {
	s.mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	_, err := s.client.ListUsers(context.Background())

	s.True(approvalapi.IsTransportError(err))
}

func TestClient_Unreachable(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	client, err := approvalapi.NewClient(&httpClient.HTTPClientConfig{
		URL:     "http://" + addr,
		Timeout: 200 * time.Millisecond,
	}, log.NewNoop())
	require.NoError(t, err)

	_, err = client.Health(context.Background())

	require.Error(t, err)
	assert.True(t, approvalapi.IsTransportError(err))
}
