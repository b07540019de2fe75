package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.send(ctx, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body any, headers map[string]string) (*Response, error) {
	return c.send(ctx, http.MethodPost, url, body, headers)
}

// Put performs a PUT request with JSON body.
func (c *clientImpl) Put(ctx context.Context, url string, body any, headers map[string]string) (*Response, error) {
	return c.send(ctx, http.MethodPut, url, body, headers)
}

// Patch performs a PATCH request with JSON body.
func (c *clientImpl) Patch(ctx context.Context, url string, body any, headers map[string]string) (*Response, error) {
	return c.send(ctx, http.MethodPatch, url, body, headers)
}

// Delete performs a DELETE request.
func (c *clientImpl) Delete(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.send(ctx, http.MethodDelete, url, nil, headers)
}

func (c *clientImpl) send(ctx context.Context, method, url string, body any, headers map[string]string) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(HeaderAccept, ContentTypeJSON)
	if body != nil {
		req.Header.Set(HeaderContentType, ContentTypeJSON)
	}
	return c.do(req, headers)
}

func (c *clientImpl) do(req *http.Request, headers map[string]string) (*Response, error) {
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
