//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/resume-assistant/internal/config"
	"github.com/honeycarbs/resume-assistant/internal/domain/advice"
	"github.com/honeycarbs/resume-assistant/internal/domain/interview"
	"github.com/honeycarbs/resume-assistant/internal/domain/job"
	"github.com/honeycarbs/resume-assistant/internal/domain/skills"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Job providers
		provideJSearchProvider,
		provideAdzunaProvider,
		provideJobProviders,

		// Language model
		provideCompleter,
		skills.NewExtractor,
		wire.Bind(new(job.SkillExtractor), new(*skills.Extractor)),

		// Services
		job.NewServiceWithDeps,
		advice.NewService,
		interview.NewMemoryRepository,
		wire.Bind(new(interview.Repository), new(*interview.MemoryRepository)),
		provideInterviewService,

		// Export
		provideSheetsExporter,
		newResources,
	)

	return &Resources{}, nil
}
