package tools

import (
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/resume-assistant/internal/domain"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// renderTable prints one line per row in canonical column order
func renderTable(t domain.Table) string {
	if t.Len() == 0 {
		return "No jobs found for the given criteria."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d job(s)\n%s\n", t.Len(), strings.Join(t.Columns, " | "))
	for i, r := range t.Rows {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, strings.Join(r.Values(), " | "))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "- "+it)
	}
	return strings.Join(lines, "\n")
}
