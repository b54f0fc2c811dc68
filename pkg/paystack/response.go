package paystack

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Result is the raw outcome of one dispatched request.
type Result struct {
	StatusCode int
	Header     http.Header
	body       []byte
}

// NewResult wraps an already received body, e.g. for replaying stored
// responses.
func NewResult(statusCode int, body []byte) *Result {
	return &Result{StatusCode: statusCode, body: body}
}

// Raw returns the undecoded response body.
func (r *Result) Raw() []byte {
	if r == nil {
		return nil
	}
	return r.body
}

// Response decodes the body. A nil or zero Result reports ErrNoResponse.
func (r *Result) Response() (Response, error) {
	if r == nil || r.body == nil {
		return nil, ErrNoResponse
	}
	var resp Response
	if err := json.Unmarshal(r.body, &resp); err != nil {
		return nil, fmt.Errorf("paystack: decode response: %w", err)
	}
	return resp, nil
}

// Data returns the data subtree of the decoded body.
func (r *Result) Data() (any, error) {
	resp, err := r.Response()
	if err != nil {
		return nil, err
	}
	return resp.Data(), nil
}

// Response is a decoded gateway body: {"status": bool, "message": string, "data": ...}.
type Response map[string]any

func (r Response) Status() bool {
	b, _ := r["status"].(bool)
	return b
}

func (r Response) Message() string {
	s, _ := r["message"].(string)
	return s
}

func (r Response) Data() any {
	return r["data"]
}

// DataMap returns the data subtree when it is an object.
func (r Response) DataMap() map[string]any {
	m, _ := r["data"].(map[string]any)
	return m
}
