package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), Config{
		Options: []option.ClientOption{
			option.WithEndpoint(srv.URL + "/"),
			option.WithoutAuthentication(),
			option.WithHTTPClient(srv.Client()),
		},
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestAppendValues(t *testing.T) {
	var gotPath, gotQuery string
	var body struct {
		Values [][]interface{} `json:"values"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{}`))
	})

	err := client.AppendValues(context.Background(), "sheet-id", "Jobs!A1", [][]interface{}{{"Job Title"}, {"Go Engineer"}})
	if err != nil {
		t.Fatalf("AppendValues: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/spreadsheets/sheet-id/values/Jobs!A1:append") {
		t.Fatalf("path = %s", gotPath)
	}
	if !strings.Contains(gotQuery, "valueInputOption=RAW") || !strings.Contains(gotQuery, "insertDataOption=INSERT_ROWS") {
		t.Fatalf("query = %s", gotQuery)
	}
	if len(body.Values) != 2 || body.Values[1][0] != "Go Engineer" {
		t.Fatalf("values = %v", body.Values)
	}
}

func TestClearValuesError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"denied"}}`, http.StatusForbidden)
	})

	if err := client.ClearValues(context.Background(), "sheet-id", "Jobs!A:Z"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(context.Background(), Config{}); err == nil {
		t.Fatal("expected credentials error")
	}
}

func TestNilClient(t *testing.T) {
	var c *Client
	if err := c.UpdateValues(context.Background(), "id", "A1", nil); err == nil {
		t.Fatal("expected error from nil client")
	}
}

func TestEnsureTabAddsMissingSheet(t *testing.T) {
	var added string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`{"sheets":[{"properties":{"title":"Sheet1"}}]}`))
		case strings.HasSuffix(r.URL.Path, ":batchUpdate"):
			var req struct {
				Requests []struct {
					AddSheet struct {
						Properties struct {
							Title string `json:"title"`
						} `json:"properties"`
					} `json:"addSheet"`
				} `json:"requests"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if len(req.Requests) == 1 {
				added = req.Requests[0].AddSheet.Properties.Title
			}
			_, _ = w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	if err := client.EnsureTab(context.Background(), "sheet-id", "Jobs"); err != nil {
		t.Fatalf("EnsureTab: %v", err)
	}
	if added != "Jobs" {
		t.Fatalf("added tab = %q, want Jobs", added)
	}
}

func TestEnsureTabKeepsExistingSheet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"sheets":[{"properties":{"title":"Jobs"}}]}`))
	})

	if err := client.EnsureTab(context.Background(), "sheet-id", "Jobs"); err != nil {
		t.Fatalf("EnsureTab: %v", err)
	}
}
