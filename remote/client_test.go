package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestClientSendsAuthHeaders(t *testing.T) {
	var gotAPIKey, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret-key")
	var dest []idRow
	if err := client.Select(context.Background(), "tasks", nil, &dest); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if gotAPIKey != "secret-key" {
		t.Errorf("Expected apikey header, got %q", gotAPIKey)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("Expected bearer token, got %q", gotAuth)
	}
}

func TestClientEncodesFilters(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	query := url.Values{}
	query.Set("user_id", "eq.user-1")
	var dest []idRow
	if err := client.Select(context.Background(), "transactions", query, &dest); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if gotPath != "/transactions" {
		t.Errorf("Expected path /transactions, got %q", gotPath)
	}
	if gotQuery != "user_id=eq.user-1" {
		t.Errorf("Expected identity filter in query, got %q", gotQuery)
	}
}

func TestClientUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key")
	err := client.Insert(context.Background(), "tasks", map[string]string{"id": "x"})
	if err == nil {
		t.Fatal("Expected error on 401")
	}
	if !strings.Contains(err.Error(), "check your API key") {
		t.Errorf("Expected API key hint in error, got %q", err.Error())
	}
}

func TestClientServerErrorIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate key", http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	err := client.Insert(context.Background(), "goals", map[string]string{"id": "x"})
	if err == nil {
		t.Fatal("Expected error on 409")
	}
	if !strings.Contains(err.Error(), "duplicate key") {
		t.Errorf("Expected response body in error, got %q", err.Error())
	}
}

func TestClientUpsertSetsMergePreference(t *testing.T) {
	var gotPrefer, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	if err := client.Upsert(context.Background(), "notes", map[string]string{"id": "x"}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if gotPrefer != "resolution=merge-duplicates" {
		t.Errorf("Expected merge-duplicates preference, got %q", gotPrefer)
	}
	if gotContentType != "application/json" {
		t.Errorf("Expected JSON content type, got %q", gotContentType)
	}
}

func TestClientRespectsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, "key")
	if err := client.Delete(ctx, "tasks", nil); err == nil {
		t.Error("Expected error from cancelled context")
	}
}
