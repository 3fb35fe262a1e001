package api

import (
	"log"
	"net/http"
	"time"
)

// LoggingTransport logs information about each request
type LoggingTransport struct {
	next http.RoundTripper
}

// NewLoggingTransport wraps a RoundTripper with request logging.
func NewLoggingTransport(next http.RoundTripper) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &LoggingTransport{next: next}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		log.Printf("[api] %s %s failed after %s: %v", req.Method, req.URL.Path, duration, err)
		return nil, err
	}
	log.Printf("[api] %s %s %d took %s", req.Method, req.URL.Path, resp.StatusCode, duration)
	return resp, nil
}
