package approvalapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goto/approvalflow/domain"
)

// TransportError means the approval service could not be reached or did not answer properly:
// network failures, timeouts, 5xx responses and undecodable bodies.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: remote returned %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationDetail struct {
	Loc []interface{} `json:"loc"`
	Msg string        `json:"msg"`
}

// parseDetail extracts the human-readable part of an error body. The service answers either
// {"detail": "text"} or a list of field validation errors.
func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}

	var text string
	if err := json.Unmarshal(eb.Detail, &text); err == nil {
		return text
	}

	var details []validationDetail
	if err := json.Unmarshal(eb.Detail, &details); err == nil {
		msgs := make([]string, 0, len(details))
		for _, d := range details {
			if len(d.Loc) > 0 {
				msgs = append(msgs, fmt.Sprintf("%v: %s", d.Loc[len(d.Loc)-1], d.Msg))
			} else {
				msgs = append(msgs, d.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return string(eb.Detail)
}

// errorFromResponse classifies a non-2xx response as either a business rejection or a transport
// failure.
func errorFromResponse(op string, statusCode int, body []byte) error {
	reason := parseDetail(body)
	if reason == "" {
		reason = http.StatusText(statusCode)
	}

	var kind domain.RejectionKind
	switch {
	case statusCode == http.StatusNotFound:
		kind = domain.RejectionKindNotFound
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		kind = domain.RejectionKindUnauthorized
	case statusCode == http.StatusConflict:
		kind = domain.RejectionKindConflict
	case statusCode >= 400 && statusCode < 500:
		kind = domain.RejectionKindValidationFailed
	default:
		return &TransportError{Op: op, StatusCode: statusCode, Err: errors.New(reason)}
	}

	return &domain.RejectedError{Kind: kind, Reason: reason}
}
