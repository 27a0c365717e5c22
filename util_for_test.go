package notion

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/notion-sdk/notion-go/pkg/connection"
	"github.com/stretchr/testify/require"
)

// fakeAPI answers requests from canned bodies keyed by "METHOD path" and
// records the request bodies it received.
type fakeAPI struct {
	mu        sync.Mutex
	responses map[string]string
	received  map[string]map[string]any
}

func newFakeAPI(t *testing.T, responses map[string]string) (*Client, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{responses: responses, received: map[string]map[string]any{}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	cfg := connection.NewConfig("secret_token")
	cfg.BaseURL = srv.URL + "/v1"
	db, err := New(cfg)
	require.NoError(t, err)
	return db, api
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	if cursor := r.URL.Query().Get("start_cursor"); cursor != "" {
		key += "?" + cursor
	}

	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	defer f.mu.Unlock()

	if len(body) > 0 {
		var m map[string]any
		if err := json.Unmarshal(body, &m); err == nil {
			f.received[key] = m
		}
	}

	resp, ok := f.responses[key]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"object": "error", "status": 404, "code": "object_not_found", "message": "no route ` + key + `"}`))
		return
	}
	_, _ = w.Write([]byte(resp))
}

func (f *fakeAPI) body(key string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.received[key]
}
