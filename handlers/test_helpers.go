package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"lifeos/prefs"
	"lifeos/store"

	"github.com/gorilla/mux"
)

// newTestHandler builds a handler set on a fresh in-memory store with no
// remote wired. Auth runs in dev mode, so requests carry the fixed dev
// identity.
func newTestHandler(t *testing.T) (*Handler, *mux.Router) {
	t.Helper()

	preferences, err := prefs.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open prefs store: %v", err)
	}
	t.Cleanup(func() { preferences.Close() })

	h := New(store.New(), preferences, nil)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return h, router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
}
