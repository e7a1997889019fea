package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputRaw = "RAW"

// Client writes cell values through the Google Sheets v4 API
type Client struct {
	service *sheets.Service
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte

	// Options are appended after credentials, e.g. option.WithEndpoint in tests
	Options []option.ClientOption
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	switch {
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	case len(cfg.Options) == 0:
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))
	opts = append(opts, cfg.Options...)

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}

	return &Client{service: service}, nil
}

func (c *Client) ready() error {
	if c == nil || c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}
	return nil
}

// EnsureTab adds a sheet titled tab unless the spreadsheet already has one
func (c *Client) EnsureTab(ctx context.Context, spreadsheetID, tab string) error {
	if err := c.ready(); err != nil {
		return err
	}

	doc, err := c.service.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: get %s: %w", spreadsheetID, err)
	}
	for _, s := range doc.Sheets {
		if s.Properties != nil && s.Properties.Title == tab {
			return nil
		}
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: tab}},
		}},
	}
	if _, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: add tab %q: %w", tab, err)
	}
	return nil
}

// AppendValues inserts rows after the last populated row of rng
func (c *Client) AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error {
	if err := c.ready(); err != nil {
		return err
	}

	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption(valueInputRaw).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append %s: %w", rng, err)
	}
	return nil
}

// UpdateValues overwrites cells starting at rng
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error {
	if err := c.ready(); err != nil {
		return err
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: update %s: %w", rng, err)
	}
	return nil
}

// ClearValues empties rng
func (c *Client) ClearValues(ctx context.Context, spreadsheetID, rng string) error {
	if err := c.ready(); err != nil {
		return err
	}

	if _, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: clear %s: %w", rng, err)
	}
	return nil
}
