package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://api.adzuna.com"
	defaultCountry  = "us"
	defaultPageSize = 20
	maxPageSize     = 50
	defaultTimeout  = 10 * time.Second
	errorBodyLimit  = 4096
)

// NewClient instantiates an Adzuna API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.AppID == "" || cfg.AppKey == "" {
		return nil, fmt.Errorf("adzuna: app_id and app_key are required")
	}

	base, err := url.Parse(strings.TrimSuffix(orDefault(cfg.BaseURL, defaultBaseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("adzuna: parse base url: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
		base:       base,
		httpClient: httpClient,
	}
	if cfg.RatePerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), 1)
	}
	return c, nil
}

// SearchJobs queries one results page for a country
func (c *Client) SearchJobs(ctx context.Context, params SearchParams) ([]Job, error) {
	if c == nil {
		return nil, fmt.Errorf("adzuna: client is nil")
	}

	u, err := c.searchURL(params)
	if err != nil {
		return nil, err
	}

	var payload jobSearchResponse
	if err := c.get(ctx, u, &payload); err != nil {
		return nil, err
	}

	jobs := make([]Job, 0, len(payload.Results))
	for _, posting := range payload.Results {
		jobs = append(jobs, posting.toJob())
	}
	return jobs, nil
}

func (c *Client) get(ctx context.Context, u string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("adzuna: rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("adzuna: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("adzuna: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("adzuna: decode response: %w", err)
	}
	return nil
}

// StatusError reports a non-200 response
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("adzuna: API error (%d): %s", e.Code, e.Body)
}

// searchURL builds /v1/api/jobs/{country}/search/{page}
func (c *Client) searchURL(params SearchParams) (string, error) {
	if strings.TrimSpace(params.What) == "" {
		return "", fmt.Errorf("adzuna: query is required")
	}

	country := strings.ToLower(orDefault(params.Country, defaultCountry))
	page := params.Page
	if page <= 0 {
		page = 1
	}
	pageSize := min(max(params.ResultsPerPage, 0), maxPageSize)
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	u := *c.base
	u.Path = path.Join(u.Path, "v1", "api", "jobs", country, "search", strconv.Itoa(page))

	q := url.Values{}
	q.Set("app_id", c.appID)
	q.Set("app_key", c.appKey)
	q.Set("what", params.What)
	q.Set("results_per_page", strconv.Itoa(pageSize))
	setIf(q, "where", params.Where)
	setIf(q, "sort_by", params.SortBy)
	setIf(q, "category", params.Category)
	if params.MaxDaysOld > 0 {
		q.Set("max_days_old", strconv.Itoa(params.MaxDaysOld))
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
