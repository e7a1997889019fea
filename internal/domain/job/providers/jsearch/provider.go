package jsearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/resume-assistant/internal/domain"
	jobdomain "github.com/honeycarbs/resume-assistant/internal/domain/job"
	"github.com/honeycarbs/resume-assistant/pkg/jsearch"
)

// SourceLabel tags records coming from JSearch
const SourceLabel = "JSearch API"

var employmentTypes = map[string]string{
	"full-time":  "FULLTIME",
	"part-time":  "PARTTIME",
	"contract":   "CONTRACTOR",
	"internship": "INTERN",
}

// searchClient describes the subset of the JSearch client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, params jsearch.SearchParams) ([]jsearch.Job, error)
}

// Provider implements job.Provider using the JSearch API
type Provider struct {
	client searchClient
}

// NewProvider wraps an existing client; a nil client leaves the provider unconfigured
func NewProvider(client searchClient) *Provider {
	return &Provider{client: client}
}

// NewFromCredentials builds the client only when the API key is usable
func NewFromCredentials(creds domain.ProviderCredentials, cfg jsearch.Config) (*Provider, error) {
	if !creds.HasAPIKey() {
		return &Provider{}, nil
	}

	cfg.APIKey = strings.TrimSpace(creds.APIKey)
	client, err := jsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("jsearch provider: %w", err)
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "jsearch"
}

// Configured reports whether the provider has a client
func (p *Provider) Configured() bool {
	return p != nil && p.client != nil
}

// Search queries JSearch and maps postings into canonical records
func (p *Provider) Search(ctx context.Context, q domain.SearchQuery) ([]domain.JobRecord, error) {
	if !p.Configured() || q.Count <= 0 {
		return nil, nil
	}

	params := jsearch.SearchParams{
		Query:           strings.TrimSpace(q.Term + " " + q.Location),
		EmploymentTypes: EmploymentType(q.JobType),
	}
	if code, ok := domain.CountryCode(q.Location); ok {
		params.Country = code
	}

	jobs, err := p.client.SearchJobs(ctx, params)
	if err != nil {
		return nil, err
	}

	out := make([]domain.JobRecord, 0, min(len(jobs), q.Count))
	for _, j := range jobs {
		if len(out) == q.Count {
			break
		}
		out = append(out, toRecord(j))
	}
	return out, nil
}

// EmploymentType maps a job type filter to the JSearch employment_types value.
// Unknown values and "Any" map to "" so no filter is sent.
func EmploymentType(jobType string) string {
	return employmentTypes[strings.ToLower(strings.TrimSpace(jobType))]
}

func toRecord(j jsearch.Job) domain.JobRecord {
	period := strings.ToLower(strings.TrimSpace(j.SalaryPeriod))

	return domain.JobRecord{
		Title:      orNA(j.Title),
		Company:    orNA(j.EmployerName),
		Location:   orNA(strings.Trim(j.City+", "+j.State, ", ")),
		JobType:    orNA(j.EmploymentType),
		Salary:     domain.FormatSalary(j.MinSalary, j.MaxSalary, period),
		DatePosted: orNA(j.PostedAt),
		ApplyLink:  orNA(j.ApplyLink),
		Source:     SourceLabel,
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return domain.NotAvailable
	}
	return s
}

var _ jobdomain.Provider = (*Provider)(nil)
