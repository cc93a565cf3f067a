package leavemarker

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// envelope is the conventional JSON wrapper every endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// APIError is any non-success outcome of an API call: a transport-level
// status, a domain failure surfaced through the envelope message, or a
// validation failure with a field->message map.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

const validationFailedMessage = "Validation failed"

func (e *APIError) Error() string {
	if msg := e.flattenFields(); msg != "" {
		return msg
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// flattenFields joins the per-field validation messages into one user-facing
// string. Keys are sorted so the output is stable.
func (e *APIError) flattenFields() string {
	if e.Message != validationFailedMessage || len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		if m := e.Fields[k]; m != "" {
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, ". ")
}

// IsUnauthorized reports whether the error is a 401 from the server.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// newAPIError builds an APIError from a response body, tolerating bodies
// that are not the standard envelope.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apiErr
	}
	apiErr.Message = env.Message
	if env.Message == validationFailedMessage && len(env.Data) > 0 {
		var fields map[string]string
		if err := json.Unmarshal(env.Data, &fields); err == nil {
			apiErr.Fields = fields
		}
	}
	return apiErr
}

// ErrorMessage extracts a user-facing message from any error returned by
// this package, falling back when the server supplied none.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.flattenFields(); msg != "" {
			return msg
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return fallback
}
