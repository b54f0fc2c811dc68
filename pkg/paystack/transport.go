package paystack

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const maxLoggedBody = 2000

// LoggingTransport implements http.RoundTripper and logs requests and responses.
// The Authorization header is never written to the log.
type LoggingTransport struct {
	Transport http.RoundTripper
	Logger    *zap.Logger
}

// RoundTrip executes a single HTTP transaction and logs the request and response
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	log := t.Logger
	if log == nil {
		log = zap.NewNop()
	}

	log.Debug("gateway request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Bool("has_body", req.Body != nil && req.Body != http.NoBody),
	)

	start := time.Now()

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	resp, err := transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Warn("gateway request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("latency", duration),
			zap.Error(err),
		)
		return nil, err
	}

	respBodyLog := "empty"
	if resp.Body != nil {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes)) // Restore body
		if readErr != nil {
			return nil, readErr
		}
		if len(bodyBytes) > maxLoggedBody {
			respBodyLog = string(bodyBytes[:maxLoggedBody]) + "...(truncated)"
		} else if len(bodyBytes) > 0 {
			respBodyLog = string(bodyBytes)
		}
	}

	log.Debug("gateway response",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", duration),
		zap.String("body", respBodyLog),
	)

	return resp, nil
}

// newHTTPClient returns a new http.Client with logging enabled
func newHTTPClient(timeout time.Duration, logger *zap.Logger) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &LoggingTransport{
			Transport: http.DefaultTransport,
			Logger:    logger,
		},
	}
}
