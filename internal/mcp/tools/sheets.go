package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/resume-assistant/internal/domain"
	"github.com/honeycarbs/resume-assistant/internal/domain/job"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

// ErrSheetsNotConfigured is returned when no Sheets credentials were provided
var ErrSheetsNotConfigured = errors.New("google sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)")

// SheetTarget names the destination of an export
type SheetTarget struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, defaults to Sheet1"`
	ClearTab      bool   `json:"clear_tab,omitempty" jsonschema:"Clear the tab before writing"`
}

// SheetsExporter writes a job table to a spreadsheet
type SheetsExporter interface {
	Export(ctx context.Context, target SheetTarget, table domain.Table) (SheetsExportResult, error)
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	Query         string `json:"query" jsonschema:"Job title or keywords to search for"`
	Location      string `json:"location,omitempty" jsonschema:"Location filter, defaults to United States"`
	Count         int    `json:"count,omitempty" jsonschema:"Number of results wanted, defaults to 10"`
	JobType       string `json:"job_type,omitempty" jsonschema:"Full-time, Part-time, Contract, Internship or Any"`
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, defaults to Sheet1"`
	ClearTab      bool   `json:"clear_tab,omitempty" jsonschema:"Clear the tab before writing"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string    `json:"tab,omitempty" jsonschema:"Target tab name"`
	WrittenRows   int       `json:"written_rows" jsonschema:"Job rows written, excluding the header"`
	CompletedAt   time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
	Message       string    `json:"message,omitempty" jsonschema:"Optional status message"`
}

type sheetsExportTool struct {
	jobs     job.Service
	exporter SheetsExporter
	logger   *logging.Logger
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(jobs job.Service, exporter SheetsExporter) Option {
	return func(reg *registry) {
		t := sheetsExportTool{jobs: jobs, exporter: exporter, logger: reg.logger}
		addTool(reg, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Run a job search and write the header plus result rows to Google Sheets",
		}, t.handle)
	}
}

func (t sheetsExportTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if t.exporter == nil {
		return nil, nil, ErrSheetsNotConfigured
	}
	if t.jobs == nil {
		return nil, nil, fmt.Errorf("job service not configured")
	}
	if params.SpreadsheetID == "" {
		return nil, nil, fmt.Errorf("spreadsheet_id is required")
	}

	q := JobSearchParams{Query: params.Query, Location: params.Location, Count: params.Count, JobType: params.JobType}.query()
	table, err := t.jobs.SearchJobs(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	target := SheetTarget{SpreadsheetID: params.SpreadsheetID, Tab: params.Tab, ClearTab: params.ClearTab}
	result, err := t.exporter.Export(ctx, target, table)
	if err != nil {
		t.logger.Error("sheets_export failed", "spreadsheet_id", params.SpreadsheetID, "err", err)
		return nil, nil, err
	}

	t.logger.Info("sheets_export completed", "spreadsheet_id", result.SpreadsheetID, "rows", result.WrittenRows)
	return textResult(result.Message), result, nil
}
