package porkbun

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// --- List / Get ---

func TestDNSList_HappyPath(t *testing.T) {
	body := apiSuccess(map[string]any{
		"records": []any{
			testRecordJSON("101", "example.com", "A", "1.2.3.4", "600", "0"),
			testRecordJSON("102", "www.example.com", "A", "1.2.3.4", "600", "0"),
			testRecordJSON("103", "example.com", "MX", "mail.example.com", "3600", "10"),
		},
	})

	var path string
	srv := newCapturingServer(t, body, &path, nil)
	c := newTestClient(t, srv.URL)

	records, err := c.DNS.List(context.Background(), "Example.COM.")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != "/dns/retrieve/example.com" {
		t.Errorf("expected normalized path /dns/retrieve/example.com, got %s", path)
	}

	want := []Record{
		{ID: "101", Domain: "example.com", Name: "example.com", Type: RecordA, Content: "1.2.3.4", TTL: 600},
		{ID: "102", Domain: "example.com", Name: "www.example.com", Type: RecordA, Content: "1.2.3.4", TTL: 600},
		{ID: "103", Domain: "example.com", Name: "example.com", Type: RecordMX, Content: "mail.example.com", TTL: 3600, Priority: 10},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestDNSList_DomainNotFound(t *testing.T) {
	srv := newStaticServer(t, apiError("Domain does not exist."))
	c := newTestClient(t, srv.URL)

	_, err := c.DNS.List(context.Background(), "notexist.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestDNSGet_HappyPath(t *testing.T) {
	var path string
	srv := newCapturingServer(t, apiSuccess(map[string]any{
		"records": []any{
			testRecordJSON("101", "example.com", "A", "1.2.3.4", "600", "0"),
		},
	}), &path, nil)
	c := newTestClient(t, srv.URL)

	rec, err := c.DNS.Get(context.Background(), "example.com", "101")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != "/dns/retrieve/example.com/101" {
		t.Errorf("expected path /dns/retrieve/example.com/101, got %s", path)
	}

	want := &Record{ID: "101", Domain: "example.com", Name: "example.com", Type: RecordA, Content: "1.2.3.4", TTL: 600}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}
}

func TestDNSGet_EmptyRecords(t *testing.T) {
	srv := newStaticServer(t, apiSuccess(map[string]any{"records": []any{}}))
	c := newTestClient(t, srv.URL)

	_, err := c.DNS.Get(context.Background(), "example.com", "999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty result, got: %v", err)
	}
}

// --- By name and type ---

func TestDNSGetByNameType_Paths(t *testing.T) {
	tests := []struct {
		subdomain string
		wantPath  string
	}{
		{"www", "/dns/retrieveByNameType/example.com/A/www"},
		// Root records are addressed by omitting the subdomain segment
		// entirely; a trailing slash is a different endpoint.
		{"", "/dns/retrieveByNameType/example.com/A"},
	}

	for _, tt := range tests {
		var path string
		srv := newCapturingServer(t, apiSuccess(map[string]any{"records": []any{}}), &path, nil)
		c := newTestClient(t, srv.URL)

		_, err := c.DNS.GetByNameType(context.Background(), "example.com", RecordA, tt.subdomain)
		if err != nil {
			t.Fatalf("subdomain %q: expected no error, got %v", tt.subdomain, err)
		}
		if path != tt.wantPath {
			t.Errorf("subdomain %q: path = %s, want %s", tt.subdomain, path, tt.wantPath)
		}
	}
}

func TestDNSDeleteByNameType_RootPath(t *testing.T) {
	var path string
	srv := newCapturingServer(t, apiSuccess(nil), &path, nil)
	c := newTestClient(t, srv.URL)

	if err := c.DNS.DeleteByNameType(context.Background(), "example.com", RecordTXT, ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != "/dns/deleteByNameType/example.com/TXT" {
		t.Errorf("path = %s, want /dns/deleteByNameType/example.com/TXT", path)
	}
	if strings.HasSuffix(path, "/") {
		t.Errorf("root path must not have a trailing slash: %s", path)
	}
}

// --- Create / Edit / Delete ---

func TestDNSCreate_HappyPath(t *testing.T) {
	var path string
	var body map[string]any
	srv := newCapturingServer(t, apiSuccess(map[string]any{"id": 201}), &path, &body)
	c := newTestClient(t, srv.URL)

	id, err := c.DNS.Create(context.Background(), "example.com", CreateRecordOpts{
		Name:    "www",
		Type:    RecordA,
		Content: "5.6.7.8",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "201" {
		t.Errorf("id = %q, want %q", id, "201")
	}
	if path != "/dns/create/example.com" {
		t.Errorf("path = %s, want /dns/create/example.com", path)
	}
	if body["ttl"] != "600" {
		t.Errorf("ttl = %v, want the string \"600\" (default applied)", body["ttl"])
	}
	if body["apikey"] != "test-api-key" {
		t.Errorf("expected credentials in body, got %v", body)
	}
}

func TestDNSCreate_StringID(t *testing.T) {
	// The API has returned IDs as both numbers and strings.
	srv := newStaticServer(t, apiSuccess(map[string]any{"id": "202"}))
	c := newTestClient(t, srv.URL)

	id, err := c.DNS.Create(context.Background(), "example.com", CreateRecordOpts{
		Type:    RecordA,
		Content: "5.6.7.8",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "202" {
		t.Errorf("id = %q, want %q", id, "202")
	}
}

func TestDNSCreate_InvalidOptsSendNothing(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv.URL)

	_, err := c.DNS.Create(context.Background(), "example.com", CreateRecordOpts{
		Type:    RecordA,
		Content: "not-an-ip",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no API calls for invalid opts, got %d", calls)
	}
}

func TestDNSCreateThenGet_RoundTrip(t *testing.T) {
	// Stateful fake: create stores the record, retrieve serves it back.
	var stored map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/dns/create/"):
			json.NewDecoder(r.Body).Decode(&stored)
			json.NewEncoder(w).Encode(apiSuccess(map[string]any{"id": 301}))
		case strings.HasPrefix(r.URL.Path, "/dns/retrieve/"):
			json.NewEncoder(w).Encode(apiSuccess(map[string]any{
				"records": []any{
					testRecordJSON("301",
						stored["name"].(string)+".example.com",
						stored["type"].(string),
						stored["content"].(string),
						stored["ttl"].(string), "0"),
				},
			}))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv.URL)

	id, err := c.DNS.Create(context.Background(), "example.com", CreateRecordOpts{
		Name:    "www",
		Type:    RecordTXT,
		Content: "hello world",
	})
	if err != nil {
		t.Fatalf("create: expected no error, got %v", err)
	}

	rec, err := c.DNS.Get(context.Background(), "example.com", id)
	if err != nil {
		t.Fatalf("get: expected no error, got %v", err)
	}
	if rec.Content != "hello world" {
		t.Errorf("Content = %q, want %q", rec.Content, "hello world")
	}
	if rec.TTL != 600 {
		t.Errorf("TTL = %d, want 600", rec.TTL)
	}
}

func TestDNSEdit_HappyPath(t *testing.T) {
	var path string
	var body map[string]any
	srv := newCapturingServer(t, apiSuccess(nil), &path, &body)
	c := newTestClient(t, srv.URL)

	err := c.DNS.Edit(context.Background(), "example.com", "101", CreateRecordOpts{
		Type:    RecordA,
		Content: "9.9.9.9",
		TTL:     1800,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != "/dns/edit/example.com/101" {
		t.Errorf("path = %s, want /dns/edit/example.com/101", path)
	}
	if body["ttl"] != "1800" {
		t.Errorf("ttl = %v, want \"1800\"", body["ttl"])
	}
}

func TestDNSEditByNameType_PartialFields(t *testing.T) {
	var path string
	var body map[string]any
	srv := newCapturingServer(t, apiSuccess(nil), &path, &body)
	c := newTestClient(t, srv.URL)

	content := "10.0.0.1"
	err := c.DNS.EditByNameType(context.Background(), "example.com", RecordA, "www", RecordChanges{
		Content: &content,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != "/dns/editByNameType/example.com/A/www" {
		t.Errorf("path = %s, want /dns/editByNameType/example.com/A/www", path)
	}
	if body["content"] != "10.0.0.1" {
		t.Errorf("content = %v, want \"10.0.0.1\"", body["content"])
	}
	// Unset fields must not appear in the request at all.
	for _, key := range []string{"ttl", "prio", "notes"} {
		if _, ok := body[key]; ok {
			t.Errorf("body unexpectedly contains %q", key)
		}
	}
}

func TestDNSDelete_HappyPath(t *testing.T) {
	var path string
	srv := newCapturingServer(t, apiSuccess(nil), &path, nil)
	c := newTestClient(t, srv.URL)

	if err := c.DNS.Delete(context.Background(), "example.com", "101"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != "/dns/delete/example.com/101" {
		t.Errorf("path = %s, want /dns/delete/example.com/101", path)
	}
}

func TestDNSDelete_NotFound(t *testing.T) {
	srv := newStaticServer(t, apiError("Record does not exist."))
	c := newTestClient(t, srv.URL)

	err := c.DNS.Delete(context.Background(), "example.com", "999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}
