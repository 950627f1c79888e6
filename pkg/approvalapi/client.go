package approvalapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goto/approvalflow/domain"
	httpClient "github.com/goto/approvalflow/pkg/http"
	"github.com/goto/approvalflow/pkg/log"
)

const maxErrorBodySize = 64 << 10

var ErrEmptyResponse = errors.New("empty response body")

// Client is the REST client of the approval service.
type Client struct {
	http   *httpClient.HTTPClient
	logger log.Logger
}

func NewClient(config *httpClient.HTTPClientConfig, logger log.Logger) (*Client, error) {
	c, err := httpClient.NewHTTPClient(config, &httpClient.HttpClientCreatorStruct{})
	if err != nil {
		return nil, fmt.Errorf("initializing http client: %w", err)
	}
	return &Client{http: c, logger: logger}, nil
}

func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

func (c *Client) Health(ctx context.Context) (*domain.SystemHealth, error) {
	var health domain.SystemHealth
	if err := c.call(ctx, "health", http.MethodGet, "/health", nil, nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if err := c.call(ctx, "list_users", http.MethodGet, "/users/", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	if err := c.call(ctx, "get_user", http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, data domain.CreateUser) (*domain.User, error) {
	var user domain.User
	if err := c.call(ctx, "create_user", http.MethodPost, "/users/", nil, data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListRequests(ctx context.Context, filter domain.ListApprovalRequestsFilter) (*domain.ApprovalRequestList, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(filter.Skip))
	query.Set("limit", strconv.Itoa(filter.Limit))
	setIfNotEmpty(query, "status", filter.Status)
	setIfNotEmpty(query, "priority", filter.Priority)
	setIfNotEmpty(query, "category", filter.Category)
	setIfNotEmpty(query, "search", filter.Search)
	if filter.RequesterID > 0 {
		query.Set("requester_id", strconv.Itoa(filter.RequesterID))
	}
	if filter.ApproverID > 0 {
		query.Set("approver_id", strconv.Itoa(filter.ApproverID))
	}

	var list domain.ApprovalRequestList
	if err := c.call(ctx, "list_requests", http.MethodGet, "/approval-requests/", query, nil, &list); err != nil {
		return nil, err
	}
	if list.Requests == nil {
		list.Requests = []*domain.ApprovalRequest{}
	}
	return &list, nil
}

func (c *Client) GetRequest(ctx context.Context, id int) (*domain.ApprovalRequest, error) {
	var r domain.ApprovalRequest
	if err := c.call(ctx, "get_request", http.MethodGet, fmt.Sprintf("/approval-requests/%d", id), nil, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) CreateRequest(ctx context.Context, data domain.CreateApprovalRequest, requesterID int) (*domain.ApprovalRequest, error) {
	query := url.Values{"requester_id": {strconv.Itoa(requesterID)}}
	var r domain.ApprovalRequest
	if err := c.call(ctx, "create_request", http.MethodPost, "/approval-requests/", query, data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) UpdateRequest(ctx context.Context, id int, update domain.UpdateApprovalRequest, userID int) (*domain.ApprovalRequest, error) {
	query := url.Values{"user_id": {strconv.Itoa(userID)}}
	var r domain.ApprovalRequest
	if err := c.call(ctx, "update_request", http.MethodPut, fmt.Sprintf("/approval-requests/%d", id), query, update, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) AddComment(ctx context.Context, id int, content string, userID int, internal bool) (*domain.CommentResult, error) {
	query := url.Values{
		"content":     {content},
		"user_id":     {strconv.Itoa(userID)},
		"is_internal": {strconv.FormatBool(internal)},
	}
	var result domain.CommentResult
	if err := c.call(ctx, "add_comment", http.MethodPost, fmt.Sprintf("/approval-requests/%d/comments", id), query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Stats(ctx context.Context, days int) (*domain.ApprovalStats, error) {
	query := url.Values{"days": {strconv.Itoa(days)}}
	var stats domain.ApprovalStats
	if err := c.call(ctx, "stats", http.MethodGet, "/stats/", query, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Overdue(ctx context.Context) (*domain.OverdueRequests, error) {
	var overdue domain.OverdueRequests
	if err := c.call(ctx, "overdue", http.MethodGet, "/stats/overdue", nil, nil, &overdue); err != nil {
		return nil, err
	}
	return &overdue, nil
}

// call performs one request and decodes a 2xx body into out. Anything that is not a business
// rejection comes back as *TransportError.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	req, err := c.http.NewRequest(ctx, method, path, query, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		err := errorFromResponse(op, resp.StatusCode, data)
		c.logger.Debug(ctx, "approval service returned an error", "op", op, "status_code", resp.StatusCode, "error", err)
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrEmptyResponse
		}
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
