package tools

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

// Option configures which tools are registered
type Option func(*registry)

type registry struct {
	server *sdkmcp.Server
	logger *logging.Logger
	names  []string
}

// Register applies opts to server and returns the names of the tools added
func Register(server *sdkmcp.Server, logger *logging.Logger, opts ...Option) []string {
	reg := &registry{server: server, logger: logging.OrNop(logger).Named("tools")}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
	return reg.names
}

// addTool registers h under tool.Name and logs the outcome of every call
func addTool[In any](reg *registry, tool *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, any]) {
	name := tool.Name
	logger := reg.logger

	sdkmcp.AddTool(reg.server, tool, func(ctx context.Context, req *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, any, error) {
		start := time.Now()
		res, out, err := h(ctx, req, in)
		if err != nil {
			logger.Warn("tool call failed", "tool", name, "err", err, "elapsed", time.Since(start))
			return res, out, err
		}
		logger.Debug("tool call completed", "tool", name, "elapsed", time.Since(start))
		return res, out, nil
	})
	reg.names = append(reg.names, name)
}
