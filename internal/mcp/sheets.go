package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/resume-assistant/internal/domain"
	"github.com/honeycarbs/resume-assistant/internal/mcp/tools"
	sheetsclient "github.com/honeycarbs/resume-assistant/pkg/sheets"
)

const defaultTab = "Sheet1"

type sheetsWriter interface {
	EnsureTab(ctx context.Context, spreadsheetID, tab string) error
	AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error
	ClearValues(ctx context.Context, spreadsheetID, rng string) error
}

// sheetsClientAdapter writes job tables through pkg/sheets
type sheetsClientAdapter struct {
	client sheetsWriter
	now    func() time.Time
}

func newSheetsAdapter(client sheetsWriter) *sheetsClientAdapter {
	return &sheetsClientAdapter{client: client, now: time.Now}
}

// Export writes the header row followed by table rows, creating the tab when
// needed. A cleared tab is rewritten from A1; otherwise the block is appended
// below existing data.
func (a *sheetsClientAdapter) Export(ctx context.Context, target tools.SheetTarget, table domain.Table) (tools.SheetsExportResult, error) {
	tab := target.Tab
	if tab == "" {
		tab = defaultTab
	}

	result := tools.SheetsExportResult{
		SpreadsheetID: target.SpreadsheetID,
		Tab:           tab,
	}

	if a == nil || a.client == nil {
		return result, tools.ErrSheetsNotConfigured
	}

	if err := a.client.EnsureTab(ctx, target.SpreadsheetID, tab); err != nil {
		return result, fmt.Errorf("sheets: failed to prepare tab: %w", err)
	}

	values := convertTableToValues(table)
	start := fmt.Sprintf("%s!A1", tab)

	if target.ClearTab {
		if err := a.client.ClearValues(ctx, target.SpreadsheetID, fmt.Sprintf("%s!A:Z", tab)); err != nil {
			return result, fmt.Errorf("sheets: failed to clear sheet: %w", err)
		}
		if err := a.client.UpdateValues(ctx, target.SpreadsheetID, start, values); err != nil {
			return result, fmt.Errorf("sheets: failed to write rows: %w", err)
		}
	} else {
		if err := a.client.AppendValues(ctx, target.SpreadsheetID, start, values); err != nil {
			return result, fmt.Errorf("sheets: failed to append rows: %w", err)
		}
	}

	result.WrittenRows = table.Len()
	result.CompletedAt = a.now().UTC()
	result.Message = fmt.Sprintf("successfully exported %d row(s) to %s", result.WrittenRows, tab)

	return result, nil
}

func convertTableToValues(table domain.Table) [][]interface{} {
	rows := table.Values()
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return values
}

var (
	_ tools.SheetsExporter = (*sheetsClientAdapter)(nil)
	_ sheetsWriter         = (*sheetsclient.Client)(nil)
)
