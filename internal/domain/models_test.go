package domain

import (
	"reflect"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		name     string
		min, max *float64
		period   string
		want     string
	}{
		{"range", ptr(80000), ptr(120000), "year", "$80,000 - $120,000 per year"},
		{"min only", ptr(80000), nil, "year", "$80,000+ per year"},
		{"max only", nil, ptr(95000.75), "year", "Up to $95,000 per year"},
		{"none", nil, nil, "year", "Salary not specified"},
		{"zero counts as unknown", ptr(0), ptr(0), "hour", "Salary not specified"},
		{"hourly", ptr(25.5), ptr(40), "hour", "$25 - $40 per hour"},
		{"default period", ptr(1234567), nil, "", "$1,234,567+ per year"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSalary(tt.min, tt.max, tt.period); got != tt.want {
				t.Fatalf("FormatSalary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUsableCredential(t *testing.T) {
	for _, v := range []string{"", "   ", "your_rapidapi_key_here", "your_adzuna_app_id_here", "YOUR_ADZUNA_APP_KEY_HERE"} {
		if UsableCredential(v) {
			t.Errorf("UsableCredential(%q) = true", v)
		}
	}
	if !UsableCredential("abc123") {
		t.Error("expected real key to be usable")
	}

	creds := ProviderCredentials{AppID: "id", AppKey: "your_adzuna_app_key_here"}
	if creds.HasAppPair() {
		t.Error("placeholder app key should not form a usable pair")
	}
}

func TestRecordFilled(t *testing.T) {
	r := JobRecord{Title: "Engineer", Company: " "}.Filled()
	want := []string{"Engineer", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A"}
	if !reflect.DeepEqual(r.Values(), want) {
		t.Fatalf("Filled values = %v", r.Values())
	}
}

func TestSearchQueryDefaults(t *testing.T) {
	q := SearchQuery{Term: "  go  "}.WithDefaults()
	if q.Term != "go" || q.Location != DefaultLocation || q.JobType != JobTypeAny {
		t.Fatalf("unexpected defaults: %+v", q)
	}
	if q.FiltersJobType() {
		t.Fatal("Any should not filter")
	}
	if !(SearchQuery{JobType: "internship"}).FiltersJobType() {
		t.Fatal("internship should filter")
	}
}

func TestEmptyTableWellFormed(t *testing.T) {
	tbl := NewTable(nil)
	if tbl.Len() != 0 || tbl.Rows == nil {
		t.Fatalf("expected empty non-nil rows, got %#v", tbl.Rows)
	}
	if !reflect.DeepEqual(tbl.Columns, Columns) {
		t.Fatalf("columns = %v", tbl.Columns)
	}
	vals := tbl.Values()
	if len(vals) != 1 || len(vals[0]) != 8 {
		t.Fatalf("values = %v", vals)
	}
}
