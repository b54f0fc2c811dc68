package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method string
	Path   string // path plus raw query, without the leading slash
	Header http.Header
	Body   []byte
}

func (r capturedRequest) JSON(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &m))
	return m
}

// stubGateway records every request and answers with the configured status
// and body.
type stubGateway struct {
	*httptest.Server
	mu       sync.Mutex
	requests []capturedRequest
	status   int
	body     any
}

func newStubGateway(t *testing.T) *stubGateway {
	t.Helper()
	g := &stubGateway{status: http.StatusOK, body: map[string]any{"status": true, "message": "ok", "data": map[string]any{}}}
	g.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		path := r.URL.Path[1:]
		if r.URL.RawQuery != "" {
			path += "?" + r.URL.RawQuery
		}
		g.mu.Lock()
		g.requests = append(g.requests, capturedRequest{Method: r.Method, Path: path, Header: r.Header.Clone(), Body: b})
		status, body := g.status, g.body
		g.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if raw, ok := body.(string); ok {
			w.Write([]byte(raw))
			return
		}
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(g.Close)
	return g
}

func (g *stubGateway) respond(status int, body any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status, g.body = status, body
}

func (g *stubGateway) last(t *testing.T) capturedRequest {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()
	require.NotEmpty(t, g.requests, "no request reached the gateway")
	return g.requests[len(g.requests)-1]
}

func (g *stubGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

func newTestClient(t *testing.T, g *stubGateway, opts ...Option) *Client {
	t.Helper()
	c, err := NewClient(Config{SecretKey: "sk_test_123", BaseURL: g.URL + "/"}, opts...)
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresSecretKey(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "https://api.paystack.co"})

	assert.Nil(t, c)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	c, err := NewClient(Config{SecretKey: "sk"})

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestDispatchSendsAuthAndJSONHeaders(t *testing.T) {
	g := newStubGateway(t)
	c := newTestClient(t, g)

	res, err := c.Dispatch(context.Background(), http.MethodPost, "plan", Payload{"name": "Gold"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	req := g.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "plan", req.Path)
	assert.Equal(t, "Bearer sk_test_123", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, map[string]any{"name": "Gold"}, req.JSON(t))
}

func TestDispatchEmptyMethod(t *testing.T) {
	g := newStubGateway(t)
	c := newTestClient(t, g)

	res, err := c.Dispatch(context.Background(), "", "plan", nil)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrEmptyMethod)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, 0, g.count(), "no request may leave the client")
}

func TestDispatchAPIError(t *testing.T) {
	g := newStubGateway(t)
	g.respond(http.StatusUnauthorized, map[string]any{"status": false, "message": "Invalid key"})
	c := newTestClient(t, g)

	_, err := c.FetchPlan(context.Background(), "PLN_x")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid key", apiErr.Message)
}

func TestDispatchTransportError(t *testing.T) {
	g := newStubGateway(t)
	c := newTestClient(t, g)
	g.Close()

	_, err := c.ListPages(context.Background())

	assert.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestMalformedJSON(t *testing.T) {
	g := newStubGateway(t)
	g.respond(http.StatusOK, "not json")
	c := newTestClient(t, g)

	_, err := c.FetchCustomer(context.Background(), "CUS_1")

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestResultWithoutDispatch(t *testing.T) {
	var res *Result

	_, err := res.Response()
	assert.ErrorIs(t, err, ErrNoResponse)

	_, err = res.Data()
	assert.ErrorIs(t, err, ErrNoResponse)

	_, err = (&Result{}).Response()
	assert.ErrorIs(t, err, ErrNoResponse)
}

func TestResultDecode(t *testing.T) {
	res := NewResult(http.StatusOK, []byte(`{"status":true,"message":"Plans retrieved","data":[{"id":1}]}`))

	resp, err := res.Response()
	require.NoError(t, err)
	assert.True(t, resp.Status())
	assert.Equal(t, "Plans retrieved", resp.Message())

	data, err := res.Data()
	require.NoError(t, err)
	assert.Len(t, data, 1)
}

func TestWithSourceDoesNotMutateParent(t *testing.T) {
	g := newStubGateway(t)
	parent := newTestClient(t, g)

	child := parent.WithSource(MapSource{"name": "Child"})
	_, err := child.CreatePage(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Child", g.last(t).JSON(t)["name"])

	_, err = parent.CreatePage(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, g.last(t).JSON(t)["name"])
}
