package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/resume-assistant/pkg/llm"
)

const (
	reviewSystem     = "You are an expert resume reviewer with years of experience in HR and recruitment."
	projectFitSystem = "You are an expert technical recruiter and project analyst specializing in matching candidate projects to job requirements."
)

// AnalyzeResume returns sectioned review feedback, scored 1-10, for jobRole
// or for general applications when jobRole is empty.
func (s *Service) AnalyzeResume(ctx context.Context, resumeText, jobRole string) (string, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return "", ErrEmptyResume
	}

	text, err := s.completer.Complete(ctx, llm.Request{
		SystemPrompt: reviewSystem,
		UserPrompt:   reviewPrompt(resumeText, strings.TrimSpace(jobRole)),
		Temperature:  0.7,
		MaxTokens:    1500,
	})
	if err != nil {
		s.logger.Warn("resume analysis failed", "err", err, "job_role", jobRole)
		return "", fmt.Errorf("advice: analyze resume: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ProjectFit rates the resume's projects against one job offer and suggests
// improvements.
func (s *Service) ProjectFit(ctx context.Context, resumeText, jobOffer string) (string, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return "", ErrEmptyResume
	}
	jobOffer = strings.TrimSpace(jobOffer)
	if jobOffer == "" {
		return "", ErrEmptyJobOffer
	}

	text, err := s.completer.Complete(ctx, llm.Request{
		SystemPrompt: projectFitSystem,
		UserPrompt:   projectFitPrompt(resumeText, jobOffer),
		Temperature:  0.7,
		MaxTokens:    2000,
	})
	if err != nil {
		s.logger.Warn("project fit analysis failed", "err", err)
		return "", fmt.Errorf("advice: project fit: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func reviewPrompt(resume, role string) string {
	target, industry, focus := "general job applications", "General Job Applications", "modern job market standards"
	if role != "" {
		target, industry, focus = role, role, role
	}

	return fmt.Sprintf(`You are an expert resume reviewer and career consultant with 15+ years of experience in talent acquisition and HR.
Analyze the following resume and provide comprehensive, actionable feedback for %s.

**ANALYSIS FRAMEWORK:**
Please structure your response with the following sections:

1. **OVERALL IMPRESSION** (1-2 sentences)
- First impression and general quality assessment

2. **STRENGTHS**
- What works well in this resume
- Standout achievements or experiences

3. **AREAS FOR IMPROVEMENT**
- Content gaps or weaknesses
- Formatting and presentation issues
- Missing key information

4. **SPECIFIC RECOMMENDATIONS**
- Concrete suggestions for improvement
- Industry-specific advice for %s
- Keywords and skills to consider adding

5. **ACTION ITEMS**
- Priority fixes (High/Medium/Low)
- Quick wins that can be implemented immediately

6. **FINAL SCORE**
- Rate the resume from 1-10 with brief justification

**RESUME CONTENT:**
%s

**INSTRUCTIONS:**
- Be honest but constructive in your feedback
- Provide specific examples from the resume when pointing out issues
- Consider ATS (Applicant Tracking System) compatibility
- Focus on relevance to %s
- Suggest specific metrics, action verbs, and formatting improvements
- Keep feedback actionable and prioritized`, target, industry, resume, focus)
}

func projectFitPrompt(resume, offer string) string {
	return fmt.Sprintf(`You are a senior technical recruiter and project analyst with 10+ years of experience.
Analyze the projects mentioned in the resume against the specific job offer provided.

**ANALYSIS FRAMEWORK:**
Please structure your response with the following sections:

1. **JOB REQUIREMENTS SUMMARY**
- Key technical requirements from the job offer
- Required skills and technologies
- Experience level expected

2. **PROJECT ALIGNMENT ANALYSIS**
- Which projects from the resume align with job requirements
- Specific technologies/skills that match
- Relevance score for each project (1-10)

3. **STRENGTHS & MATCHES**
- Projects that strongly demonstrate required skills
- Specific examples that would impress this employer
- Transferable skills from projects

4. **GAPS & MISSING ELEMENTS**
- Required skills not demonstrated in current projects
- Technologies mentioned in job offer but missing from projects
- Areas where projects could be enhanced

5. **PROJECT ENHANCEMENT RECOMMENDATIONS**
- How to modify existing projects to better match job requirements
- Additional features/technologies to add
- Ways to better showcase relevant skills

6. **INTERVIEW PREPARATION**
- Which projects to highlight in interviews
- Key talking points for each relevant project
- How to position projects to address job requirements

7. **ACTION ITEMS**
- Priority improvements for existing projects
- New project ideas that would strengthen candidacy
- Skills to develop based on job requirements

**JOB OFFER:**
%s

**RESUME CONTENT:**
%s

**INSTRUCTIONS:**
- Focus specifically on technical projects and their relevance
- Be specific about technology matches and mismatches
- Provide actionable recommendations for project improvement
- Consider both current projects and suggestions for new ones
- Rate each project's relevance to this specific job offer
- Suggest concrete ways to make projects more compelling for this role`, offer, resume)
}
