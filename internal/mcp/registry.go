package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/resume-assistant/internal/mcp/tools"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

// ToolRegistry installs every tool backed by Resources
type ToolRegistry struct {
	logger *logging.Logger
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logging.OrNop(logger)}
}

// RegisterAll adds every tool backed by res
func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res *Resources) {
	names := tools.Register(server, r.logger,
		tools.WithJobSearch(res.JobService),
		tools.WithSkillExtraction(res.Skills),
		tools.WithCareerAdvice(res.Advice),
		tools.WithInterview(res.Interviews),
		tools.WithSheetsExport(res.JobService, res.Sheets),
	)
	r.logger.Info("tools registered", "count", len(names), "tools", names)
}
