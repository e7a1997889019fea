package job

//go:generate mockgen -destination=../../mocks/mock_job.go -package=mocks . Provider,SkillExtractor

import (
	"context"

	"github.com/honeycarbs/resume-assistant/internal/domain"
)

// Provider represents an external job data source (JSearch, Adzuna, ...)
type Provider interface {
	// e.g. "jsearch" or "adzuna"
	Name() string

	// Configured reports whether usable credentials are present.
	// Unconfigured providers are skipped without any network call.
	Configured() bool

	// Search returns at most q.Count records in provider order
	Search(ctx context.Context, q domain.SearchQuery) ([]domain.JobRecord, error)
}

// SkillExtractor derives search keywords from resume text
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, resumeText string) []string
}

// Sampler produces synthetic records when no provider yields results
type Sampler interface {
	Generate(q domain.SearchQuery) []domain.JobRecord
}
