package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/resume-assistant/internal/domain"
	"github.com/honeycarbs/resume-assistant/internal/domain/job"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

// DefaultCount is used when a search omits count
const DefaultCount = 10

// JobSearchParams defines the arguments for the job_search tool
type JobSearchParams struct {
	Query    string `json:"query" jsonschema:"Job title or keywords to search for"`
	Location string `json:"location,omitempty" jsonschema:"Location filter, defaults to United States"`
	Count    int    `json:"count,omitempty" jsonschema:"Number of results wanted, defaults to 10"`
	JobType  string `json:"job_type,omitempty" jsonschema:"Full-time, Part-time, Contract, Internship or Any"`
}

func (p JobSearchParams) query() domain.SearchQuery {
	count := p.Count
	if count == 0 {
		count = DefaultCount
	}
	return domain.SearchQuery{Term: p.Query, Location: p.Location, Count: count, JobType: p.JobType}
}

// JobSearchResult is the structured output of job searches
type JobSearchResult struct {
	Table  domain.Table `json:"table" jsonschema:"Normalized job table"`
	Sample bool         `json:"sample" jsonschema:"True when rows are generated demo data"`
}

// ResumeSearchParams defines the arguments for the job_search_by_resume tool
type ResumeSearchParams struct {
	ResumeText   string `json:"resume_text,omitempty" jsonschema:"Plain resume text"`
	ResumeBase64 string `json:"resume_base64,omitempty" jsonschema:"Base64 encoded resume document (pdf, docx or txt)"`
	MimeType     string `json:"mime_type,omitempty" jsonschema:"MIME type of resume_base64"`
	FileName     string `json:"file_name,omitempty" jsonschema:"File name used to guess the MIME type"`
	Location     string `json:"location,omitempty" jsonschema:"Location filter, defaults to United States"`
	Count        int    `json:"count,omitempty" jsonschema:"Number of results wanted, defaults to 10"`
	JobType      string `json:"job_type,omitempty" jsonschema:"Full-time, Part-time, Contract, Internship or Any"`
}

// ResumeSearchResult is the structured output of job_search_by_resume
type ResumeSearchResult struct {
	Skills []string     `json:"skills" jsonschema:"Skills extracted from the resume"`
	Term   string       `json:"term" jsonschema:"Search term built from the top skills"`
	Table  domain.Table `json:"table" jsonschema:"Normalized job table"`
	Sample bool         `json:"sample" jsonschema:"True when rows are generated demo data"`
}

type searchTool struct {
	svc    job.Service
	logger *logging.Logger
}

// WithJobSearch registers job_search and job_search_by_resume
func WithJobSearch(svc job.Service) Option {
	return func(reg *registry) {
		t := searchTool{svc: svc, logger: reg.logger}
		addTool(reg, &sdkmcp.Tool{
			Name:        "job_search",
			Description: "Search JSearch and Adzuna for job postings and return a normalized, deduplicated table",
		}, t.search)
		addTool(reg, &sdkmcp.Tool{
			Name:        "job_search_by_resume",
			Description: "Extract skills from a resume and search jobs using the top five joined by OR",
		}, t.searchByResume)
	}
}

func (t searchTool) search(ctx context.Context, _ *sdkmcp.CallToolRequest, params JobSearchParams) (*sdkmcp.CallToolResult, any, error) {
	if t.svc == nil {
		return nil, nil, fmt.Errorf("job service not configured")
	}

	q := params.query()
	t.logger.Debug("job_search called", "query", q.Term, "location", q.Location, "count", q.Count, "job_type", q.JobType)

	table, err := t.svc.SearchJobs(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	result := JobSearchResult{Table: table, Sample: isSample(table)}
	return textResult(renderTable(table)), result, nil
}

func (t searchTool) searchByResume(ctx context.Context, _ *sdkmcp.CallToolRequest, params ResumeSearchParams) (*sdkmcp.CallToolResult, any, error) {
	if t.svc == nil {
		return nil, nil, fmt.Errorf("job service not configured")
	}

	text, err := resumeText(params.ResumeText, params.ResumeBase64, params.MimeType, params.FileName)
	if err != nil {
		return nil, nil, err
	}

	q := JobSearchParams{Location: params.Location, Count: params.Count, JobType: params.JobType}.query()
	res, err := t.svc.SearchJobsByResume(ctx, text, q)
	if err != nil {
		return nil, nil, err
	}

	result := ResumeSearchResult{Skills: res.Skills, Term: res.Term, Table: res.Table, Sample: isSample(res.Table)}
	msg := fmt.Sprintf("Search term: %s\n%s", res.Term, renderTable(res.Table))
	return textResult(msg), result, nil
}

func isSample(t domain.Table) bool {
	return t.Len() > 0 && job.IsSampleSource(t.Rows[0].Source)
}
