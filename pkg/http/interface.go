package http

import "context"

// IClient defines the interface for a JSON HTTP client with a fixed timeout.
// Requests are sent once; callers decide what to do with failures.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) (*Response, error)
	Post(ctx context.Context, url string, body any, headers map[string]string) (*Response, error)
	Put(ctx context.Context, url string, body any, headers map[string]string) (*Response, error)
	Patch(ctx context.Context, url string, body any, headers map[string]string) (*Response, error)
	Delete(ctx context.Context, url string, headers map[string]string) (*Response, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &clientImpl{
		client: defaultHTTPClient(cfg.Timeout),
		config: cfg,
	}
}
