package tools_test

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/resume-assistant/internal/domain"
	"github.com/honeycarbs/resume-assistant/internal/domain/advice"
	"github.com/honeycarbs/resume-assistant/internal/domain/interview"
	"github.com/honeycarbs/resume-assistant/internal/domain/job"
	"github.com/honeycarbs/resume-assistant/internal/mcp/tools"
	"github.com/honeycarbs/resume-assistant/internal/mocks"
)

type fakeJobs struct {
	lastQuery  domain.SearchQuery
	lastResume string
	table      domain.Table
	err        error
}

func (f *fakeJobs) SearchJobs(_ context.Context, q domain.SearchQuery) (domain.Table, error) {
	f.lastQuery = q
	return f.table, f.err
}

func (f *fakeJobs) SearchJobsByResume(_ context.Context, text string, q domain.SearchQuery) (job.ResumeSearchResult, error) {
	f.lastResume = text
	f.lastQuery = q
	return job.ResumeSearchResult{Skills: []string{"Go"}, Term: "Go", Table: f.table}, f.err
}

type fakeAdvice struct{}

func (fakeAdvice) Recommendations(context.Context, string, string) []string {
	return []string{"1. Apply to platform teams"}
}

func (fakeAdvice) CareerPaths(context.Context, string, string) (advice.CareerPathAnalysis, error) {
	return advice.CareerPathAnalysis{
		CurrentLevel: "Senior",
		CareerPaths:  []advice.CareerPath{{Name: "Staff", NextRole: "Staff Engineer", Timeline: "2 years"}},
	}, nil
}

func (fakeAdvice) CoverLetter(_ context.Context, req advice.CoverLetterRequest) (string, error) {
	return "Dear " + req.Company + " team", nil
}

func (fakeAdvice) AnalyzeResume(_ context.Context, _ string, role string) (string, error) {
	if role == "" {
		role = "general"
	}
	return "Score for " + role + ": 8/10", nil
}

func (fakeAdvice) ProjectFit(_ context.Context, _ string, offer string) (string, error) {
	if offer == "" {
		return "", advice.ErrEmptyJobOffer
	}
	return "Fit against " + offer, nil
}

type fakeExporter struct {
	target tools.SheetTarget
	rows   int
}

func (f *fakeExporter) Export(_ context.Context, target tools.SheetTarget, table domain.Table) (tools.SheetsExportResult, error) {
	f.target = target
	f.rows = table.Len()
	return tools.SheetsExportResult{SpreadsheetID: target.SpreadsheetID, WrittenRows: table.Len(), Message: "exported"}, nil
}

func connect(t *testing.T, opts ...tools.Option) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "test", Version: "0.0.1"}, nil)
	tools.Register(server, nil, opts...)

	clientT, serverT := sdkmcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverT, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func call(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return err.Error(), true
	}

	var sb strings.Builder
	for _, c := range res.Content {
		if txt, ok := c.(*sdkmcp.TextContent); ok {
			sb.WriteString(txt.Text)
		}
	}
	return sb.String(), res.IsError
}

func sampleTable() domain.Table {
	return domain.NewTable([]domain.JobRecord{{
		Title: "Go Engineer", Company: "Acme", Location: "Remote", JobType: "Full-time",
		Salary: "$100,000 - $120,000 per year", DatePosted: "2024-05-01", ApplyLink: "https://a.example", Source: "JSearch API",
	}})
}

func TestJobSearchTool(t *testing.T) {
	jobs := &fakeJobs{table: sampleTable()}
	session := connect(t, tools.WithJobSearch(jobs))

	text, isErr := call(t, session, "job_search", map[string]any{"query": "go", "location": "Remote"})
	if isErr {
		t.Fatalf("job_search returned error: %s", text)
	}
	if !strings.Contains(text, "Found 1 job(s)") || !strings.Contains(text, "Go Engineer | Acme") {
		t.Fatalf("unexpected output %q", text)
	}
	if jobs.lastQuery.Count != tools.DefaultCount || jobs.lastQuery.Term != "go" {
		t.Fatalf("query = %+v", jobs.lastQuery)
	}
}

func TestJobSearchToolPropagatesValidationError(t *testing.T) {
	jobs := &fakeJobs{table: domain.NewTable(nil), err: job.ErrEmptyTerm}
	session := connect(t, tools.WithJobSearch(jobs))

	text, isErr := call(t, session, "job_search", map[string]any{"query": ""})
	if !isErr {
		t.Fatalf("expected tool error, got %q", text)
	}
}

func TestJobSearchByResumeDecodesDocument(t *testing.T) {
	jobs := &fakeJobs{table: sampleTable()}
	session := connect(t, tools.WithJobSearch(jobs))

	encoded := base64.StdEncoding.EncodeToString([]byte("Go and Kubernetes engineer"))
	text, isErr := call(t, session, "job_search_by_resume", map[string]any{
		"resume_base64": encoded,
		"file_name":     "cv.txt",
		"count":         3,
	})
	if isErr {
		t.Fatalf("job_search_by_resume returned error: %s", text)
	}
	if jobs.lastResume != "Go and Kubernetes engineer" || jobs.lastQuery.Count != 3 {
		t.Fatalf("resume=%q query=%+v", jobs.lastResume, jobs.lastQuery)
	}
	if !strings.HasPrefix(text, "Search term: Go") {
		t.Fatalf("unexpected output %q", text)
	}
}

func TestJobSearchByResumeRequiresInput(t *testing.T) {
	session := connect(t, tools.WithJobSearch(&fakeJobs{}))
	if text, isErr := call(t, session, "job_search_by_resume", map[string]any{}); !isErr {
		t.Fatalf("expected error, got %q", text)
	}
}

func TestExtractSkillsTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockSkillExtractor(ctrl)
	extractor.EXPECT().ExtractSkills(gomock.Any(), "resume").Return([]string{"Go", "SQL"})

	session := connect(t, tools.WithSkillExtraction(extractor))
	text, isErr := call(t, session, "extract_skills", map[string]any{"resume_text": "resume"})
	if isErr || text != "Go, SQL" {
		t.Fatalf("extract_skills = %q (error %v)", text, isErr)
	}
}

func TestAdviceTools(t *testing.T) {
	session := connect(t, tools.WithCareerAdvice(fakeAdvice{}))

	text, isErr := call(t, session, "job_recommendations", map[string]any{"resume_text": "resume"})
	if isErr || text != "1. Apply to platform teams" {
		t.Fatalf("job_recommendations = %q (error %v)", text, isErr)
	}

	text, isErr = call(t, session, "career_paths", map[string]any{"resume_text": "resume", "target_role": "Staff"})
	if isErr || !strings.Contains(text, "Current level: Senior") || !strings.Contains(text, "Next role: Staff Engineer (2 years)") {
		t.Fatalf("career_paths = %q (error %v)", text, isErr)
	}

	text, isErr = call(t, session, "cover_letter", map[string]any{"resume_text": "resume", "job_offer": "Go role", "company": "Acme"})
	if isErr || text != "Dear Acme team" {
		t.Fatalf("cover_letter = %q (error %v)", text, isErr)
	}

	text, isErr = call(t, session, "resume_analysis", map[string]any{"resume_text": "resume", "target_role": "SRE"})
	if isErr || text != "Score for SRE: 8/10" {
		t.Fatalf("resume_analysis = %q (error %v)", text, isErr)
	}

	text, isErr = call(t, session, "project_fit", map[string]any{"resume_text": "resume", "job_offer": "Go role"})
	if isErr || text != "Fit against Go role" {
		t.Fatalf("project_fit = %q (error %v)", text, isErr)
	}

	if text, isErr = call(t, session, "project_fit", map[string]any{"resume_text": "resume", "job_offer": ""}); !isErr {
		t.Fatalf("project_fit without offer should fail, got %q", text)
	}
}

func TestInterviewTools(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)
	gomock.InOrder(
		completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Welcome. Describe a recent project.", nil),
		completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("How did you test it?", nil),
		completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Clear communicator.", nil),
	)

	svc := interview.NewService(nil, completer, nil, interview.WithIDGenerator(func() string { return "s1" }))
	session := connect(t, tools.WithInterview(svc))

	text, isErr := call(t, session, "interview_start", map[string]any{"kind": "Behavioral Interview", "position": "SRE"})
	if isErr || !strings.Contains(text, "Session s1") || !strings.Contains(text, "Describe a recent project") {
		t.Fatalf("interview_start = %q (error %v)", text, isErr)
	}

	text, isErr = call(t, session, "interview_reply", map[string]any{"session_id": "s1", "text": "I built a CI system."})
	if isErr || text != "How did you test it?" {
		t.Fatalf("interview_reply = %q (error %v)", text, isErr)
	}

	text, isErr = call(t, session, "interview_end", map[string]any{"session_id": "s1"})
	if isErr || !strings.Contains(text, "Feedback:\nClear communicator.") {
		t.Fatalf("interview_end = %q (error %v)", text, isErr)
	}

	if _, isErr = call(t, session, "interview_reply", map[string]any{"session_id": "s1", "text": "more"}); !isErr {
		t.Fatal("reply after end should fail")
	}
}

func TestInterviewStartRejectsUnknownKind(t *testing.T) {
	session := connect(t, tools.WithInterview(interview.NewService(nil, nil, nil)))
	if text, isErr := call(t, session, "interview_start", map[string]any{"kind": "panel"}); !isErr {
		t.Fatalf("expected error, got %q", text)
	}
}

func TestSheetsExportTool(t *testing.T) {
	jobs := &fakeJobs{table: sampleTable()}
	exporter := &fakeExporter{}
	session := connect(t, tools.WithSheetsExport(jobs, exporter))

	text, isErr := call(t, session, "sheets_export", map[string]any{
		"query":          "go",
		"spreadsheet_id": "sheet-1",
		"tab":            "Jobs",
		"clear_tab":      true,
	})
	if isErr || text != "exported" {
		t.Fatalf("sheets_export = %q (error %v)", text, isErr)
	}
	if exporter.target.SpreadsheetID != "sheet-1" || exporter.target.Tab != "Jobs" || !exporter.target.ClearTab || exporter.rows != 1 {
		t.Fatalf("exporter got target=%+v rows=%d", exporter.target, exporter.rows)
	}
}

func TestSheetsExportWithoutClient(t *testing.T) {
	session := connect(t, tools.WithSheetsExport(&fakeJobs{table: sampleTable()}, nil))
	text, isErr := call(t, session, "sheets_export", map[string]any{"query": "go", "spreadsheet_id": "x"})
	if !isErr || !strings.Contains(text, "not configured") {
		t.Fatalf("expected not configured error, got %q", text)
	}
}
