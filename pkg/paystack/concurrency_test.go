package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with -race.
func TestSharedClientConcurrentUse(t *testing.T) {
	g := newStubGateway(t)
	c := newTestClient(t, g)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("page-%d", i)
			_, err := c.WithSource(MapSource{"name": name, "amount": i + 1}).CreatePage(context.Background(), nil)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	g.mu.Lock()
	requests := append([]capturedRequest(nil), g.requests...)
	g.mu.Unlock()
	require.Len(t, requests, workers)

	seen := make(map[string]float64, workers)
	for _, r := range requests {
		var body map[string]any
		require.NoError(t, json.Unmarshal(r.Body, &body))
		seen[body["name"].(string)] = body["amount"].(float64)
	}
	for i := 0; i < workers; i++ {
		assert.Equal(t, float64(i+1), seen[fmt.Sprintf("page-%d", i)], "each request carries its own source")
	}

	_, err := c.CreatePage(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, g.last(t).JSON(t)["name"], "the shared client keeps no source")
}
