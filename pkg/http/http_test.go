package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendsJSONAndHeaders(t *testing.T) {
	var gotMethod, gotAuth, gotType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get(HeaderAuthorization)
		gotType = r.Header.Get(HeaderContentType)
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &gotBody)
		}
		w.Header().Set("x-total-count", "7")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig())

	t.Run("post", func(t *testing.T) {
		resp, err := c.Post(context.Background(), srv.URL, map[string]string{"name": "Acme"}, map[string]string{
			HeaderAuthorization: "Bearer abc",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "Bearer abc", gotAuth)
		assert.Equal(t, ContentTypeJSON, gotType)
		assert.Equal(t, "Acme", gotBody["name"])
		assert.Equal(t, "7", resp.Header.Get("x-total-count"))
		assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	})

	t.Run("delete has no body", func(t *testing.T) {
		gotBody = nil
		_, err := c.Delete(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Empty(t, gotType)
		assert.Nil(t, gotBody)
	})
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Timeout: 20 * time.Millisecond})
	_, err := c.Get(context.Background(), srv.URL, nil)
	require.Error(t, err)
}
