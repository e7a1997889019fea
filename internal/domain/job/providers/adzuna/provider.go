package adzuna

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/resume-assistant/internal/domain"
	jobdomain "github.com/honeycarbs/resume-assistant/internal/domain/job"
	"github.com/honeycarbs/resume-assistant/pkg/adzuna"
)

// SourceLabel tags records coming from Adzuna
const SourceLabel = "Adzuna API"

var categories = map[string]string{
	"full-time":  "permanent",
	"part-time":  "part_time",
	"contract":   "contract",
	"internship": "graduate",
}

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, params adzuna.SearchParams) ([]adzuna.Job, error)
}

// Provider implements job.Provider using Adzuna API
type Provider struct {
	client searchClient
}

// NewProvider wraps an existing client; a nil client leaves the provider unconfigured
func NewProvider(client searchClient) *Provider {
	return &Provider{client: client}
}

// NewFromCredentials builds the client only when app id and key are usable
func NewFromCredentials(creds domain.ProviderCredentials, cfg adzuna.Config) (*Provider, error) {
	if !creds.HasAppPair() {
		return &Provider{}, nil
	}

	cfg.AppID = strings.TrimSpace(creds.AppID)
	cfg.AppKey = strings.TrimSpace(creds.AppKey)
	client, err := adzuna.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("adzuna provider: %w", err)
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "adzuna"
}

// Configured reports whether the provider has a client
func (p *Provider) Configured() bool {
	return p != nil && p.client != nil
}

// Search queries Adzuna and returns canonical records
func (p *Provider) Search(ctx context.Context, q domain.SearchQuery) ([]domain.JobRecord, error) {
	if !p.Configured() || q.Count <= 0 {
		return nil, nil
	}

	country, _ := domain.CountryCode(q.Location)
	params := adzuna.SearchParams{
		What:           q.Term,
		Where:          q.Location,
		Country:        country,
		ResultsPerPage: q.Count,
		SortBy:         "date",
		Category:       Category(q.JobType),
	}

	respJobs, err := p.client.SearchJobs(ctx, params)
	if err != nil {
		return nil, err
	}

	out := make([]domain.JobRecord, 0, min(len(respJobs), q.Count))
	for _, j := range respJobs {
		if len(out) == q.Count {
			break
		}
		out = append(out, domain.JobRecord{
			Title:      orNA(j.Title),
			Company:    orNA(j.CompanyName),
			Location:   orNA(j.Location),
			JobType:    orNA(j.ContractType),
			Salary:     domain.FormatSalary(j.SalaryMin, j.SalaryMax, "year"),
			DatePosted: orNA(j.Created),
			ApplyLink:  orNA(j.URL),
			Source:     SourceLabel,
		})
	}

	return out, nil
}

// Category maps a job type filter onto the Adzuna category parameter
func Category(jobType string) string {
	return categories[strings.ToLower(strings.TrimSpace(jobType))]
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return domain.NotAvailable
	}
	return s
}

var _ jobdomain.Provider = (*Provider)(nil)
