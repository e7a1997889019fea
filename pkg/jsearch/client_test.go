package jsearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchJobsSendsHeadersAndParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("x-rapidapi-key"); got != "secret" {
			t.Errorf("x-rapidapi-key = %q", got)
		}
		if got := r.Header.Get("x-rapidapi-host"); got != "jsearch.p.rapidapi.com" {
			t.Errorf("x-rapidapi-host = %q", got)
		}
		q := r.URL.Query()
		if q.Get("query") != "go developer Berlin" || q.Get("page") != "1" || q.Get("num_pages") != "1" || q.Get("date_posted") != "all" {
			t.Errorf("unexpected query: %v", q)
		}
		if q.Get("employment_types") != "INTERN" {
			t.Errorf("employment_types = %q", q.Get("employment_types"))
		}
		if q.Has("country") {
			t.Errorf("country should be omitted, got %q", q.Get("country"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","data":[
			{"job_id":"a","job_title":"Go Dev","employer_name":"Acme","job_city":"Berlin","job_state":"BE",
			 "job_employment_type":"INTERN","job_min_salary":50000,"job_max_salary":null,"job_salary_period":"YEAR",
			 "job_posted_at_datetime_utc":"2024-05-01T00:00:00.000Z","job_apply_link":"https://acme.example/apply"}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "secret", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	jobs, err := client.SearchJobs(context.Background(), SearchParams{
		Query:           "go developer Berlin",
		EmploymentTypes: "INTERN",
	})
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	job := jobs[0]
	if job.Title != "Go Dev" || job.EmployerName != "Acme" || job.City != "Berlin" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if job.MinSalary == nil || *job.MinSalary != 50000 || job.MaxSalary != nil {
		t.Fatalf("unexpected salary bounds: %v %v", job.MinSalary, job.MaxSalary)
	}
}

func TestSearchJobsNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "secret", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.SearchJobs(context.Background(), SearchParams{Query: "go"})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusTooManyRequests {
		t.Fatalf("unexpected code %d", statusErr.Code)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildSearchURLRequiresQuery(t *testing.T) {
	client, err := NewClient(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.buildSearchURL(SearchParams{Query: "  "}); err == nil {
		t.Fatal("expected error for blank query")
	}
}
