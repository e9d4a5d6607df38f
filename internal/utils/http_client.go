package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-letters-client"

// HTTPClient is a wrapper around resty.Client. Embedding exposes the full
// resty API while leaving room for client-wide defaults.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30 * time.Second)
//	resp, err := client.R().Get("http://localhost:5000/api/letters/status")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// A non-positive timeout leaves resty's default (no timeout).
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
