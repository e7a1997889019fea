package job

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/honeycarbs/resume-assistant/internal/domain"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

const (
	// DefaultPerSourceLimit caps how many records one provider may contribute
	DefaultPerSourceLimit = 10

	// resumeTermSkills is how many extracted skills form the search term
	resumeTermSkills = 5
)

var (
	ErrEmptyTerm    = errors.New("job search: search term is required")
	ErrInvalidCount = errors.New("job search: result count must be positive")
	ErrEmptyResume  = errors.New("job search: resume text is required")
	ErrNoSkills     = errors.New("job search: no skills could be extracted from resume")
)

type Service interface {
	SearchJobs(ctx context.Context, q domain.SearchQuery) (domain.Table, error)
	SearchJobsByResume(ctx context.Context, resumeText string, q domain.SearchQuery) (ResumeSearchResult, error)
}

// ResumeSearchResult is the outcome of a resume-driven search
type ResumeSearchResult struct {
	Skills []string     `json:"skills"`
	Term   string       `json:"term"`
	Table  domain.Table `json:"table"`
}

// Option configures Service
type Option func(*config)

type config struct {
	providers      []Provider
	sampler        Sampler
	skills         SkillExtractor
	logger         *logging.Logger
	perSourceLimit int
}

// WithProviders sets job providers in priority order
func WithProviders(providers ...Provider) Option {
	return func(c *config) {
		c.providers = providers
	}
}

// WithSampler replaces the sample data generator
func WithSampler(sampler Sampler) Option {
	return func(c *config) {
		c.sampler = sampler
	}
}

// WithSkillExtractor sets the extractor used by resume searches
func WithSkillExtractor(skills SkillExtractor) Option {
	return func(c *config) {
		c.skills = skills
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithPerSourceLimit overrides DefaultPerSourceLimit
func WithPerSourceLimit(limit int) Option {
	return func(c *config) {
		c.perSourceLimit = limit
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		perSourceLimit: DefaultPerSourceLimit,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	for i, p := range cfg.providers {
		if p == nil {
			return nil, fmt.Errorf("job.Service: provider %d is nil", i)
		}
	}
	if cfg.perSourceLimit <= 0 {
		return nil, fmt.Errorf("job.Service: per-source limit must be positive")
	}
	if cfg.sampler == nil {
		cfg.sampler = NewSampleGenerator(nil)
	}

	return &service{
		providers:      cfg.providers,
		sampler:        cfg.sampler,
		skills:         cfg.skills,
		logger:         logging.OrNop(cfg.logger).Named("job"),
		perSourceLimit: cfg.perSourceLimit,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(providers []Provider, skills SkillExtractor, logger *logging.Logger) (Service, error) {
	return NewService(
		WithProviders(providers...),
		WithSkillExtractor(skills),
		WithLogger(logger),
	)
}

type service struct {
	providers      []Provider
	sampler        Sampler
	skills         SkillExtractor
	logger         *logging.Logger
	perSourceLimit int
}

// SearchJobs queries providers in order, falls back to samples and normalizes.
// Only input validation produces an error; any other failure yields an empty table.
func (s *service) SearchJobs(ctx context.Context, query domain.SearchQuery) (table domain.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("job search panicked", "panic", fmt.Sprint(r), "term", query.Term)
			table, err = domain.NewTable(nil), nil
		}
	}()

	q := query.WithDefaults()

	if q.Term == "" {
		s.logger.Error("job search rejected", "err", ErrEmptyTerm)
		return domain.NewTable(nil), ErrEmptyTerm
	}
	if q.Count <= 0 {
		s.logger.Error("job search rejected", "err", ErrInvalidCount, "count", q.Count)
		return domain.NewTable(nil), ErrInvalidCount
	}

	log := s.logger.With("term", q.Term, "location", q.Location, "count", q.Count, "job_type", q.JobType)

	anyConfigured := false
	records := make([]domain.JobRecord, 0, q.Count)

	for _, p := range s.providers {
		if !p.Configured() {
			log.Debug("provider not configured, skipping", "provider", p.Name())
			continue
		}
		anyConfigured = true

		if len(records) >= q.Count {
			break
		}

		sub := q
		sub.Count = min(q.Count-len(records), s.perSourceLimit)

		jobs, err := searchProvider(ctx, p, sub)
		if err != nil {
			log.Warn("provider search failed, continuing without it", "provider", p.Name(), "err", err)
			continue
		}
		if len(jobs) > sub.Count {
			jobs = jobs[:sub.Count]
		}

		log.Debug("provider returned jobs", "provider", p.Name(), "requested", sub.Count, "returned", len(jobs))
		records = append(records, jobs...)
	}

	if len(records) == 0 {
		if !anyConfigured {
			log.Warn("no API keys configured, showing sample data; set RAPIDAPI_KEY or ADZUNA_APP_ID/ADZUNA_APP_KEY for real job data")
		} else {
			log.Info("no provider returned results, showing sample data")
		}
		records = append(records, s.sampler.Generate(q)...)
	}

	table = Normalize(records)
	if table.Len() == 0 {
		log.Warn("no jobs found for the given criteria")
	}

	log.Info("job search completed", "rows", table.Len())
	return table, nil
}

// searchProvider turns a provider panic into an error so later providers still run
func searchProvider(ctx context.Context, p Provider, q domain.SearchQuery) (jobs []domain.JobRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			jobs, err = nil, fmt.Errorf("job: provider %s panicked: %v", p.Name(), r)
		}
	}()
	return p.Search(ctx, q)
}

// SearchJobsByResume extracts skills and searches with the top ones joined by OR
func (s *service) SearchJobsByResume(ctx context.Context, resumeText string, q domain.SearchQuery) (ResumeSearchResult, error) {
	result := ResumeSearchResult{Skills: []string{}, Table: domain.NewTable(nil)}

	if strings.TrimSpace(resumeText) == "" {
		s.logger.Error("resume job search rejected", "err", ErrEmptyResume)
		return result, ErrEmptyResume
	}

	var skills []string
	if s.skills != nil {
		skills = s.skills.ExtractSkills(ctx, resumeText)
	}
	if len(skills) == 0 {
		s.logger.Warn("could not extract skills from resume, try a manual search")
		return result, ErrNoSkills
	}

	result.Skills = skills
	result.Term = strings.Join(skills[:min(len(skills), resumeTermSkills)], " OR ")

	q.Term = result.Term
	table, err := s.SearchJobs(ctx, q)
	result.Table = table
	return result, err
}
