package jsearch

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
	defaultBaseURL = "https://jsearch.p.rapidapi.com"
	defaultHost    = "jsearch.p.rapidapi.com"
	defaultTimeout = 10 * time.Second
)

// NewClient instantiates a JSearch API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("jsearch: api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	host := cfg.Host
	if host == "" {
		host = defaultHost
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}

	return &Client{
		apiKey:     cfg.APIKey,
		host:       host,
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    limiter,
	}, nil
}

// SearchJobs runs one search request and returns the postings in provider order
func (c *Client) SearchJobs(ctx context.Context, params SearchParams) ([]Job, error) {
	if c == nil {
		return nil, fmt.Errorf("jsearch: client is nil")
	}

	u, err := c.buildSearchURL(params)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("jsearch: rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("jsearch: decode response: %w", err)
	}

	jobs := make([]Job, 0, len(payload.Data))
	for _, posting := range payload.Data {
		jobs = append(jobs, mapPosting(posting))
	}

	return jobs, nil
}

// StatusError reports a non-200 response
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("jsearch: API returned status %d: %s", e.Code, e.Body)
}

func (c *Client) buildSearchURL(params SearchParams) (string, error) {
	if strings.TrimSpace(params.Query) == "" {
		return "", fmt.Errorf("jsearch: query is required")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("jsearch: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, "search")

	page := params.Page
	if page <= 0 {
		page = 1
	}
	numPages := params.NumPages
	if numPages <= 0 {
		numPages = 1
	}
	datePosted := params.DatePosted
	if datePosted == "" {
		datePosted = "all"
	}

	values := url.Values{}
	values.Set("query", params.Query)
	values.Set("page", strconv.Itoa(page))
	values.Set("num_pages", strconv.Itoa(numPages))
	values.Set("date_posted", datePosted)

	if params.Country != "" {
		values.Set("country", params.Country)
	}
	if params.EmploymentTypes != "" {
		values.Set("employment_types", params.EmploymentTypes)
	}

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func mapPosting(p jobPosting) Job {
	return Job{
		ID:             p.JobID,
		Title:          p.JobTitle,
		EmployerName:   p.EmployerName,
		City:           p.JobCity,
		State:          p.JobState,
		EmploymentType: p.JobEmploymentType,
		MinSalary:      p.JobMinSalary,
		MaxSalary:      p.JobMaxSalary,
		SalaryPeriod:   p.JobSalaryPeriod,
		PostedAt:       p.JobPostedAtDatetimeUTC,
		ApplyLink:      p.JobApplyLink,
	}
}
