package mcp

import (
	"context"

	"github.com/honeycarbs/resume-assistant/internal/config"
	"github.com/honeycarbs/resume-assistant/internal/domain/advice"
	"github.com/honeycarbs/resume-assistant/internal/domain/interview"
	"github.com/honeycarbs/resume-assistant/internal/domain/job"
	adzunaProvider "github.com/honeycarbs/resume-assistant/internal/domain/job/providers/adzuna"
	jsearchProvider "github.com/honeycarbs/resume-assistant/internal/domain/job/providers/jsearch"
	"github.com/honeycarbs/resume-assistant/internal/domain/skills"
	"github.com/honeycarbs/resume-assistant/internal/mcp/tools"
	"github.com/honeycarbs/resume-assistant/pkg/adzuna"
	"github.com/honeycarbs/resume-assistant/pkg/jsearch"
	"github.com/honeycarbs/resume-assistant/pkg/llm"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
	sheetsclient "github.com/honeycarbs/resume-assistant/pkg/sheets"
)

// Resources holds everything the MCP tools depend on
type Resources struct {
	JobService job.Service
	Skills     job.SkillExtractor
	Advice     tools.AdviceService
	Interviews tools.InterviewService
	Sheets     tools.SheetsExporter
}

// provideJSearchProvider builds the JSearch adapter; missing keys leave it unconfigured
func provideJSearchProvider(cfg config.Config) (*jsearchProvider.Provider, error) {
	return jsearchProvider.NewFromCredentials(cfg.Credentials(), jsearch.Config{
		Timeout:       cfg.ProviderTimeout,
		RatePerSecond: cfg.JSearch.RatePerSecond,
	})
}

// provideAdzunaProvider builds the Adzuna adapter; missing keys leave it unconfigured
func provideAdzunaProvider(cfg config.Config) (*adzunaProvider.Provider, error) {
	return adzunaProvider.NewFromCredentials(cfg.Credentials(), adzuna.Config{
		Timeout:       cfg.ProviderTimeout,
		RatePerMinute: cfg.Adzuna.RatePerMinute,
	})
}

// provideJobProviders orders providers by priority: JSearch first, Adzuna second
func provideJobProviders(js *jsearchProvider.Provider, az *adzunaProvider.Provider) []job.Provider {
	return []job.Provider{js, az}
}

// provideCompleter returns Gemini when a key is configured and a failing stub otherwise
func provideCompleter(ctx context.Context, cfg config.Config, logger *logging.Logger) llm.Completer {
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, resume analysis and interviews are disabled")
		return llm.Unavailable{}
	}

	client, err := llm.NewGemini(ctx, llm.GeminiConfig{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model})
	if err != nil {
		logger.Warn("failed to initialize Gemini client", "err", err)
		return llm.Unavailable{}
	}
	return client
}

// provideInterviewService binds the in-memory session store
func provideInterviewService(repo interview.Repository, completer llm.Completer, logger *logging.Logger) *interview.Service {
	return interview.NewService(repo, completer, logger)
}

// provideSheetsExporter returns nil when no credentials are configured
func provideSheetsExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) tools.SheetsExporter {
	if cfg.Sheets.CredentialsPath == "" {
		logger.Info("GOOGLE_SHEETS_CREDENTIALS_PATH not set, sheets export disabled")
		return nil
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		logger.Warn("failed to initialize Google Sheets client", "err", err)
		return nil
	}
	return newSheetsAdapter(client)
}

// newResources creates Resources struct
func newResources(
	jobService job.Service,
	extractor job.SkillExtractor,
	adviceSvc *advice.Service,
	interviews *interview.Service,
	sheets tools.SheetsExporter,
) *Resources {
	return &Resources{
		JobService: jobService,
		Skills:     extractor,
		Advice:     adviceSvc,
		Interviews: interviews,
		Sheets:     sheets,
	}
}

var _ job.SkillExtractor = (*skills.Extractor)(nil)
