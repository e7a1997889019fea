package mcp

import (
	"context"

	"github.com/honeycarbs/resume-assistant/internal/config"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

// initializeResources wires dependencies and reports which integrations are live
func initializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	res, err := InitializeResources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		return nil, err
	}

	creds := cfg.Credentials()
	logger.Info("job providers initialized",
		"jsearch", creds.HasAPIKey(),
		"adzuna", creds.HasAppPair(),
	)
	if !creds.HasAPIKey() && !creds.HasAppPair() {
		logger.Warn("no job API keys configured, searches will return sample data")
	}
	logger.Info("integrations initialized",
		"llm", cfg.Gemini.APIKey != "",
		"sheets", res.Sheets != nil,
	)

	return res, nil
}
