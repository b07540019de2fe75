package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	pkghttp "dashboard-srv/pkg/http"
)

type sendFunc func(headers map[string]string) (*pkghttp.Response, error)

// authHeaders returns the Authorization header for the current token, if any.
// A token whose exp claim has passed is treated like a 401 before it is ever sent;
// ended reports that, and err carries a failed teardown.
func (g *gatewayImpl) authHeaders(ctx context.Context) (headers map[string]string, ended bool, err error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		g.l.Errorf(ctx, "gateway.authHeaders: read token failed: %v", err)
		return nil, false, nil
	}
	if token == "" {
		return nil, false, nil
	}
	if g.inspector != nil && g.inspector.Expired(token, g.now()) {
		return nil, true, g.endSession(ctx)
	}
	return map[string]string{pkghttp.HeaderAuthorization: "Bearer " + token}, false, nil
}

// endSession drops the token and asks the UI to re-authenticate.
// The hook fires even when the store could not drop the token.
func (g *gatewayImpl) endSession(ctx context.Context) error {
	err := g.tokens.Invalidate(ctx)
	if err != nil {
		g.l.Errorf(ctx, "gateway.endSession: invalidate token failed: %v", err)
	}
	if g.onUnauthorized != nil {
		g.onUnauthorized(ctx)
	}
	return err
}

// call sends one request and classifies the outcome. Only 2xx responses are returned.
func (g *gatewayImpl) call(ctx context.Context, op string, send sendFunc) (*pkghttp.Response, error) {
	headers, ended, endErr := g.authHeaders(ctx)
	resp, err := send(headers)
	if err != nil {
		return nil, transportError(op, err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return resp, nil
	}

	gwErr := statusError(op, resp.StatusCode, resp.Body)
	if gwErr.Kind == KindUnauthorized {
		// one teardown per call
		if !ended {
			endErr = g.endSession(ctx)
		}
		if endErr != nil {
			gwErr.Err = errors.Join(gwErr.Err, endErr)
		}
	}
	return nil, gwErr
}

func decode[T any](op string, resp *pkghttp.Response) (T, error) {
	var out T
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, transportError(op, fmt.Errorf("failed to decode response: %w", err))
	}
	return out, nil
}

func (g *gatewayImpl) url(path string) string {
	return g.baseURL + path
}
