package paystack

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingTransportKeepsBodyAndHidesAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"ok"}`))
	}))
	defer server.Close()

	core, logs := observer.New(zap.DebugLevel)
	client := newHTTPClient(5*time.Second, zap.New(core))

	req, err := http.NewRequest(http.MethodGet, server.URL+"/bank", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer sk_live_secret")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"status":true,"message":"ok"}`, string(body))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "gateway response", entries[1].Message)
	assert.Equal(t, int64(http.StatusOK), entries[1].ContextMap()["status"])
	for _, e := range entries {
		for _, v := range e.ContextMap() {
			if s, ok := v.(string); ok {
				assert.False(t, strings.Contains(s, "sk_live_secret"))
			}
		}
	}
}
