package domain

import "strings"

const (
	// NotAvailable fills any job field the provider did not supply
	NotAvailable = "N/A"

	// SalaryNotSpecified is used when neither salary bound is known
	SalaryNotSpecified = "Salary not specified"

	// DefaultLocation applies when the caller leaves location empty
	DefaultLocation = "United States"

	// JobTypeAny disables job type filtering
	JobTypeAny = "Any"
)

// Columns is the canonical column order of a job table
var Columns = []string{
	"Job Title",
	"Company",
	"Location",
	"Job Type",
	"Salary",
	"Date Posted",
	"Apply Link",
	"Source",
}

// JobRecord is one posting in canonical shape
type JobRecord struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	JobType    string `json:"job_type"`
	Salary     string `json:"salary"`
	DatePosted string `json:"date_posted"`
	ApplyLink  string `json:"apply_link"`
	Source     string `json:"source"`
}

// Values returns the record cells in Columns order
func (r JobRecord) Values() []string {
	return []string{
		r.Title,
		r.Company,
		r.Location,
		r.JobType,
		r.Salary,
		r.DatePosted,
		r.ApplyLink,
		r.Source,
	}
}

// Filled returns a copy with every empty cell set to NotAvailable
func (r JobRecord) Filled() JobRecord {
	fill := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return NotAvailable
		}
		return s
	}
	return JobRecord{
		Title:      fill(r.Title),
		Company:    fill(r.Company),
		Location:   fill(r.Location),
		JobType:    fill(r.JobType),
		Salary:     fill(r.Salary),
		DatePosted: fill(r.DatePosted),
		ApplyLink:  fill(r.ApplyLink),
		Source:     fill(r.Source),
	}
}

// SearchQuery describes one aggregated job search
type SearchQuery struct {
	Term     string
	Location string
	Count    int
	JobType  string
}

// WithDefaults trims inputs and applies the default location and job type
func (q SearchQuery) WithDefaults() SearchQuery {
	q.Term = strings.TrimSpace(q.Term)
	q.Location = strings.TrimSpace(q.Location)
	if q.Location == "" {
		q.Location = DefaultLocation
	}
	q.JobType = strings.TrimSpace(q.JobType)
	if q.JobType == "" {
		q.JobType = JobTypeAny
	}
	return q
}

// FiltersJobType reports whether a job type filter should be applied
func (q SearchQuery) FiltersJobType() bool {
	return q.JobType != "" && !strings.EqualFold(q.JobType, JobTypeAny)
}

// Table is the normalized result of a search
type Table struct {
	Columns []string    `json:"columns"`
	Rows    []JobRecord `json:"rows"`
}

// NewTable returns a well-formed table holding rows
func NewTable(rows []JobRecord) Table {
	cols := make([]string, len(Columns))
	copy(cols, Columns)
	if rows == nil {
		rows = []JobRecord{}
	}
	return Table{Columns: cols, Rows: rows}
}

// Len returns the number of rows
func (t Table) Len() int {
	return len(t.Rows)
}

// Values renders the table as header plus rows of strings
func (t Table) Values() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, append([]string(nil), t.Columns...))
	for _, r := range t.Rows {
		out = append(out, r.Values())
	}
	return out
}
