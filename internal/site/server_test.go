package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	r := NewRouter(ServeOptions{Dir: t.TempDir(), Catalog: testCatalog()})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCatalogEndpoint(t *testing.T) {
	r := NewRouter(ServeOptions{Dir: t.TempDir(), Catalog: testCatalog()})

	req := httptest.NewRequest("GET", "/api/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var groups []catalogGroup
	if err := json.Unmarshal(w.Body.Bytes(), &groups); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2 (empty group dropped)", len(groups))
	}
	if groups[0].Folder != "." {
		t.Errorf("first group = %q, want root", groups[0].Folder)
	}
	if groups[0].Files[0].Page != "files/Program.cs.html" {
		t.Errorf("page path = %q", groups[0].Files[0].Page)
	}
}

func TestSearchEndpointInMemory(t *testing.T) {
	r := NewRouter(ServeOptions{Dir: t.TempDir(), Catalog: testCatalog()})

	req := httptest.NewRequest("GET", "/api/search?q=USERservice", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(resp.Results))
	}
	if resp.Results[0].Path != "src/Services/UserService.cs" {
		t.Errorf("result path = %q", resp.Results[0].Path)
	}
}

func TestSearchEndpointNoMatches(t *testing.T) {
	r := NewRouter(ServeOptions{Dir: t.TempDir(), Catalog: testCatalog()})

	req := httptest.NewRequest("GET", "/api/search?q=zzz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("results = %d, want 0", len(resp.Results))
	}
	// Empty results still encode as an array, not null.
	if string(w.Body.Bytes()[0]) == "null" {
		t.Error("results should be an empty array")
	}
}

func TestCORSHeaders(t *testing.T) {
	r := NewRouter(ServeOptions{Dir: t.TempDir(), Catalog: testCatalog()})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestStaticFileServing(t *testing.T) {
	out := generateTestSite(t, testCatalog())
	r := NewRouter(ServeOptions{Dir: out, Catalog: testCatalog()})

	req := httptest.NewRequest("GET", "/style.css", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for style.css, got %d", w.Code)
	}
}
