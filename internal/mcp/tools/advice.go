package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/resume-assistant/internal/domain/advice"
	"github.com/honeycarbs/resume-assistant/internal/domain/job"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

// AdviceService produces resume-driven career guidance
type AdviceService interface {
	Recommendations(ctx context.Context, resumeText, targetRole string) []string
	CareerPaths(ctx context.Context, resumeText, targetRole string) (advice.CareerPathAnalysis, error)
	CoverLetter(ctx context.Context, req advice.CoverLetterRequest) (string, error)
	AnalyzeResume(ctx context.Context, resumeText, jobRole string) (string, error)
	ProjectFit(ctx context.Context, resumeText, jobOffer string) (string, error)
}

// ResumeParams identify a resume and an optional target role
type ResumeParams struct {
	ResumeText   string `json:"resume_text,omitempty" jsonschema:"Plain resume text"`
	ResumeBase64 string `json:"resume_base64,omitempty" jsonschema:"Base64 encoded resume document (pdf, docx or txt)"`
	MimeType     string `json:"mime_type,omitempty" jsonschema:"MIME type of resume_base64"`
	FileName     string `json:"file_name,omitempty" jsonschema:"File name used to guess the MIME type"`
	TargetRole   string `json:"target_role,omitempty" jsonschema:"Role the candidate is aiming for"`
}

func (p ResumeParams) text() (string, error) {
	return resumeText(p.ResumeText, p.ResumeBase64, p.MimeType, p.FileName)
}

// SkillsResult is the structured output of extract_skills
type SkillsResult struct {
	Skills []string `json:"skills" jsonschema:"Extracted keywords in relevance order"`
}

// CoverLetterParams defines the arguments for cover_letter
type CoverLetterParams struct {
	ResumeText   string `json:"resume_text,omitempty" jsonschema:"Plain resume text"`
	ResumeBase64 string `json:"resume_base64,omitempty" jsonschema:"Base64 encoded resume document (pdf, docx or txt)"`
	MimeType     string `json:"mime_type,omitempty" jsonschema:"MIME type of resume_base64"`
	FileName     string `json:"file_name,omitempty" jsonschema:"File name used to guess the MIME type"`
	JobOffer     string `json:"job_offer" jsonschema:"Job description the letter responds to"`
	JobTitle     string `json:"job_title,omitempty" jsonschema:"Position title, taken from the description when empty"`
	Company      string `json:"company,omitempty" jsonschema:"Company name, taken from the description when empty"`
	Name         string `json:"name,omitempty" jsonschema:"Candidate name, looked up in the resume when empty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

func (p CoverLetterParams) text() (string, error) {
	return resumeText(p.ResumeText, p.ResumeBase64, p.MimeType, p.FileName)
}

// CoverLetterResult is the structured output of cover_letter
type CoverLetterResult struct {
	Letter string `json:"letter"`
}

// ProjectFitParams defines the arguments for project_fit
type ProjectFitParams struct {
	ResumeText   string `json:"resume_text,omitempty" jsonschema:"Plain resume text"`
	ResumeBase64 string `json:"resume_base64,omitempty" jsonschema:"Base64 encoded resume document (pdf, docx or txt)"`
	MimeType     string `json:"mime_type,omitempty" jsonschema:"MIME type of resume_base64"`
	FileName     string `json:"file_name,omitempty" jsonschema:"File name used to guess the MIME type"`
	JobOffer     string `json:"job_offer" jsonschema:"Job description the projects are compared against"`
}

func (p ProjectFitParams) text() (string, error) {
	return resumeText(p.ResumeText, p.ResumeBase64, p.MimeType, p.FileName)
}

// AnalysisResult is the structured output of resume_analysis and project_fit
type AnalysisResult struct {
	Analysis string `json:"analysis"`
}

// RecommendationsResult is the structured output of job_recommendations
type RecommendationsResult struct {
	Recommendations []string `json:"recommendations" jsonschema:"Up to five actionable suggestions"`
}

type adviceTool struct {
	skills job.SkillExtractor
	advice AdviceService
	logger *logging.Logger
}

// WithSkillExtraction registers extract_skills
func WithSkillExtraction(skills job.SkillExtractor) Option {
	return func(reg *registry) {
		t := adviceTool{skills: skills, logger: reg.logger}
		addTool(reg, &sdkmcp.Tool{
			Name:        "extract_skills",
			Description: "Extract up to 15 job search keywords from a resume",
		}, t.extractSkills)
	}
}

// WithCareerAdvice registers the resume advice tools: job_recommendations,
// career_paths, cover_letter, resume_analysis and project_fit.
func WithCareerAdvice(svc AdviceService) Option {
	return func(reg *registry) {
		t := adviceTool{advice: svc, logger: reg.logger}
		addTool(reg, &sdkmcp.Tool{
			Name:        "job_recommendations",
			Description: "Suggest five job search actions based on a resume",
		}, t.recommendations)
		addTool(reg, &sdkmcp.Tool{
			Name:        "career_paths",
			Description: "Analyze possible career paths, strengths and growth areas from a resume",
		}, t.careerPaths)
		addTool(reg, &sdkmcp.Tool{
			Name:        "cover_letter",
			Description: "Write a cover letter tailored to a job description from a resume",
		}, t.coverLetter)
		addTool(reg, &sdkmcp.Tool{
			Name:        "resume_analysis",
			Description: "Review a resume for a target role (target_role) with strengths, improvements, action items and a 1-10 score",
		}, t.analyzeResume)
		addTool(reg, &sdkmcp.Tool{
			Name:        "project_fit",
			Description: "Rate the projects in a resume against a job offer and suggest improvements",
		}, t.projectFit)
	}
}

func (t adviceTool) extractSkills(ctx context.Context, _ *sdkmcp.CallToolRequest, params ResumeParams) (*sdkmcp.CallToolResult, any, error) {
	if t.skills == nil {
		return nil, nil, fmt.Errorf("skill extractor not configured")
	}

	text, err := params.text()
	if err != nil {
		return nil, nil, err
	}

	skills := t.skills.ExtractSkills(ctx, text)
	if len(skills) == 0 {
		t.logger.Warn("extract_skills: no skills extracted")
		return textResult("No skills could be extracted from the resume."), SkillsResult{Skills: []string{}}, nil
	}
	return textResult(strings.Join(skills, ", ")), SkillsResult{Skills: skills}, nil
}

func (t adviceTool) recommendations(ctx context.Context, _ *sdkmcp.CallToolRequest, params ResumeParams) (*sdkmcp.CallToolResult, any, error) {
	if t.advice == nil {
		return nil, nil, fmt.Errorf("advice service not configured")
	}

	text, err := params.text()
	if err != nil {
		return nil, nil, err
	}

	recs := t.advice.Recommendations(ctx, text, params.TargetRole)
	if len(recs) == 0 {
		return textResult("No recommendations available."), RecommendationsResult{Recommendations: []string{}}, nil
	}
	return textResult(strings.Join(recs, "\n")), RecommendationsResult{Recommendations: recs}, nil
}

func (t adviceTool) careerPaths(ctx context.Context, _ *sdkmcp.CallToolRequest, params ResumeParams) (*sdkmcp.CallToolResult, any, error) {
	if t.advice == nil {
		return nil, nil, fmt.Errorf("advice service not configured")
	}

	text, err := params.text()
	if err != nil {
		return nil, nil, err
	}

	analysis, err := t.advice.CareerPaths(ctx, text, params.TargetRole)
	if err != nil {
		t.logger.Error("career_paths failed", "err", err)
		return nil, nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Current level: %s\n", analysis.CurrentLevel)
	for _, p := range analysis.CareerPaths {
		fmt.Fprintf(&sb, "\n%s: %s\nNext role: %s (%s)\n", p.Name, p.Description, p.NextRole, p.Timeline)
		if len(p.Requirements) > 0 {
			sb.WriteString(bulletList(p.Requirements) + "\n")
		}
	}
	if len(analysis.StrengthsForGrowth) > 0 {
		sb.WriteString("\nStrengths:\n" + bulletList(analysis.StrengthsForGrowth) + "\n")
	}
	if len(analysis.GrowthAreas) > 0 {
		sb.WriteString("\nGrowth areas:\n" + bulletList(analysis.GrowthAreas) + "\n")
	}

	return textResult(strings.TrimSpace(sb.String())), analysis, nil
}

func (t adviceTool) coverLetter(ctx context.Context, _ *sdkmcp.CallToolRequest, params CoverLetterParams) (*sdkmcp.CallToolResult, any, error) {
	if t.advice == nil {
		return nil, nil, fmt.Errorf("advice service not configured")
	}

	text, err := params.text()
	if err != nil {
		return nil, nil, err
	}

	letter, err := t.advice.CoverLetter(ctx, advice.CoverLetterRequest{
		Resume:   text,
		JobOffer: params.JobOffer,
		JobTitle: params.JobTitle,
		Company:  params.Company,
		Name:     params.Name,
		Email:    params.Email,
		Phone:    params.Phone,
	})
	if err != nil {
		t.logger.Error("cover_letter failed", "err", err)
		return nil, nil, err
	}
	return textResult(letter), CoverLetterResult{Letter: letter}, nil
}

func (t adviceTool) analyzeResume(ctx context.Context, _ *sdkmcp.CallToolRequest, params ResumeParams) (*sdkmcp.CallToolResult, any, error) {
	if t.advice == nil {
		return nil, nil, fmt.Errorf("advice service not configured")
	}

	text, err := params.text()
	if err != nil {
		return nil, nil, err
	}

	review, err := t.advice.AnalyzeResume(ctx, text, params.TargetRole)
	if err != nil {
		t.logger.Error("resume_analysis failed", "err", err)
		return nil, nil, err
	}
	return textResult(review), AnalysisResult{Analysis: review}, nil
}

func (t adviceTool) projectFit(ctx context.Context, _ *sdkmcp.CallToolRequest, params ProjectFitParams) (*sdkmcp.CallToolResult, any, error) {
	if t.advice == nil {
		return nil, nil, fmt.Errorf("advice service not configured")
	}

	text, err := params.text()
	if err != nil {
		return nil, nil, err
	}

	fit, err := t.advice.ProjectFit(ctx, text, params.JobOffer)
	if err != nil {
		t.logger.Error("project_fit failed", "err", err)
		return nil, nil, err
	}
	return textResult(fit), AnalysisResult{Analysis: fit}, nil
}
