package job

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/honeycarbs/resume-assistant/internal/domain"
)

func TestNormalizeDeduplicatesFillsAndSorts(t *testing.T) {
	in := []domain.JobRecord{
		{Title: "A", Company: "X", DatePosted: "2024-01-01", Source: "one"},
		{Title: "B", Company: "Y", DatePosted: "2024-03-01"},
		{Title: "A", Company: "X", DatePosted: "2025-01-01", Source: "two"},
		{Title: "C", Company: "Z", DatePosted: "2024-02-01"},
		{Title: "A", Company: "Y", DatePosted: "2024-03-01"},
	}

	table := Normalize(in)
	if table.Len() != 4 {
		t.Fatalf("expected 4 rows, got %d", table.Len())
	}

	wantOrder := []string{"B", "A", "C", "A"}
	for i, r := range table.Rows {
		if r.Title != wantOrder[i] {
			t.Fatalf("row %d title = %q, want %q (rows %+v)", i, r.Title, wantOrder[i], table.Rows)
		}
	}
	// equal dates keep input order
	if table.Rows[0].Company != "Y" || table.Rows[1].Company != "Y" {
		t.Fatalf("stable order broken: %+v", table.Rows[:2])
	}
	// first occurrence of (A, X) wins
	if table.Rows[3].Source != "one" {
		t.Fatalf("duplicate resolution kept %q", table.Rows[3].Source)
	}
	for _, r := range table.Rows {
		for _, v := range r.Values() {
			if strings.TrimSpace(v) == "" {
				t.Fatalf("empty cell in %+v", r)
			}
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	table := Normalize(nil)
	if table.Rows == nil || table.Len() != 0 {
		t.Fatalf("expected empty non-nil rows, got %+v", table)
	}
	if len(table.Columns) != len(domain.Columns) {
		t.Fatalf("columns = %v", table.Columns)
	}
}

func TestSampleGeneratorShape(t *testing.T) {
	gen := NewSampleGenerator(rand.New(rand.NewPCG(7, 11)))

	recs := gen.Generate(domain.SearchQuery{Term: "Nurse", Location: "Boston", Count: 20, JobType: "Contract"})
	if len(recs) != 20 {
		t.Fatalf("expected 20 records, got %d", len(recs))
	}

	pairs := make(map[[2]string]struct{}, len(recs))
	for _, r := range recs {
		if !strings.Contains(r.Title, "Nurse") {
			t.Errorf("title %q missing term", r.Title)
		}
		if r.Location != "Boston" || r.JobType != "Contract" {
			t.Errorf("filters not applied: %+v", r)
		}
		if !strings.HasPrefix(r.Salary, "$") || !strings.HasSuffix(r.Salary, " per year") {
			t.Errorf("salary %q", r.Salary)
		}
		if !strings.HasSuffix(r.DatePosted, " ago") {
			t.Errorf("date posted %q", r.DatePosted)
		}
		if !strings.HasPrefix(r.ApplyLink, sampleLinkBase) {
			t.Errorf("apply link %q", r.ApplyLink)
		}
		if !IsSampleSource(r.Source) || !strings.HasSuffix(r.Source, ")") {
			t.Errorf("source %q", r.Source)
		}
		pairs[[2]string{r.Title, r.Company}] = struct{}{}
	}
	if len(pairs) != len(recs) {
		t.Fatalf("expected distinct title/company pairs, got %d of %d", len(pairs), len(recs))
	}
}

func TestSampleGeneratorCapsCount(t *testing.T) {
	gen := NewSampleGenerator(rand.New(rand.NewPCG(3, 5)))
	if got := len(gen.Generate(domain.SearchQuery{Term: "x", Count: 50})); got != maxSampleJobs {
		t.Fatalf("expected %d records, got %d", maxSampleJobs, got)
	}
	if got := gen.Generate(domain.SearchQuery{Term: "x", Count: 0}); len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestSampleGeneratorRandomJobTypeWhenAny(t *testing.T) {
	gen := NewSampleGenerator(rand.New(rand.NewPCG(9, 9)))
	for _, r := range gen.Generate(domain.SearchQuery{Term: "x", Count: 10, JobType: "Any"}) {
		found := false
		for _, jt := range sampleJobTypes {
			if r.JobType == jt {
				found = true
			}
		}
		if !found {
			t.Fatalf("unexpected job type %q", r.JobType)
		}
	}
}
