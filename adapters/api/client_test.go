package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"edudesk/domain/table"
	"edudesk/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, 10), server
}

func TestListParsesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/courses" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("page param = %s", r.URL.Query().Get("page"))
		}
		fmt.Fprint(w, `{
			"success": true,
			"data": [
				{"title": "Intro to Go", "user": {"email": "jane@example.com"}},
				{"title": "Advanced Testing"}
			],
			"pagination": {"page": 2, "page_size": 2, "total_pages": 5, "total_items": 9}
		}`)
	})

	result, err := client.List(context.Background(), "courses", ports.ListQuery{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("got %d records", len(result.Records))
	}
	if got := table.ResolveString(result.Records[0], "user.email"); got != "jane@example.com" {
		t.Errorf("nested value lost: %q", got)
	}
	if result.Pagination == nil || result.Pagination.TotalPages != 5 {
		t.Errorf("pagination wrong: %+v", result.Pagination)
	}
}

func TestListBackendFailureFlag(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": false, "message": "access denied"}`)
	})

	if _, err := client.List(context.Background(), "courses", ports.ListQuery{}); err == nil {
		t.Fatal("success=false must surface as an error")
	}
}

func TestFetchAllWalksPages(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		atomic.AddInt32(&calls, 1)
		fmt.Fprintf(w, `{
			"success": true,
			"data": [{"id": %s}],
			"pagination": {"page": %s, "total_pages": 3, "total_items": 3}
		}`, page, page)
	})

	records, err := client.FetchAll(context.Background(), "tickets", nil)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
	if calls != 3 {
		t.Errorf("made %d requests, want 3", calls)
	}
}

func TestFetchAllStopsWithoutPagination(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": true, "data": [{"id": 1}]}`)
	})

	records, err := client.FetchAll(context.Background(), "tickets", nil)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestCreateSendsJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		var record map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if record["title"] != "Intro to Go" {
			t.Errorf("payload = %v", record)
		}
		fmt.Fprint(w, `{"success": true}`)
	})

	err := client.Create(context.Background(), "courses", table.Record{"title": "Intro to Go"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
}

func TestCreateSurfacesHTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if err := client.Create(context.Background(), "courses", table.Record{}); err == nil {
		t.Fatal("5xx must surface as an error")
	}
}
