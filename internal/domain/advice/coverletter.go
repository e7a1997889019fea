package advice

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/honeycarbs/resume-assistant/pkg/llm"
)

const (
	coverLetterExcerpt = 2000
	coverLetterSystem  = "You are an expert cover letter writer specializing in creating personalized, compelling cover letters that help candidates stand out to employers."

	nameScanLines = 10
)

// ErrEmptyJobOffer is returned when no job description is given for a cover letter
var ErrEmptyJobOffer = errors.New("advice: job description is required")

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneUS      = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	phoneIntl    = regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`)
)

// CoverLetterRequest describes one letter. Contact fields left empty are
// looked up in the resume.
type CoverLetterRequest struct {
	Resume   string
	JobOffer string
	JobTitle string
	Company  string
	Name     string
	Email    string
	Phone    string
}

// Contact holds candidate details found in a resume
type Contact struct {
	Name  string
	Email string
	Phone string
}

// CoverLetter writes a letter tailored to the job offer
func (s *Service) CoverLetter(ctx context.Context, req CoverLetterRequest) (string, error) {
	if strings.TrimSpace(req.Resume) == "" {
		return "", ErrEmptyResume
	}
	if strings.TrimSpace(req.JobOffer) == "" {
		return "", ErrEmptyJobOffer
	}

	found := ExtractContact(req.Resume)
	if req.Name == "" {
		req.Name = found.Name
	}
	if req.Email == "" {
		req.Email = found.Email
	}
	if req.Phone == "" {
		req.Phone = found.Phone
	}

	text, err := s.completer.Complete(ctx, llm.Request{
		SystemPrompt: coverLetterSystem,
		UserPrompt:   coverLetterPrompt(req, s.now()),
		Temperature:  0.7,
		MaxTokens:    2000,
	})
	if err != nil {
		s.logger.Warn("cover letter generation failed", "err", err, "company", req.Company)
		return "", fmt.Errorf("advice: cover letter: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ExtractContact finds a likely name, email and phone number in resume text
func ExtractContact(resume string) Contact {
	return Contact{
		Name:  extractName(resume),
		Email: emailPattern.FindString(resume),
		Phone: extractPhone(resume),
	}
}

func extractName(resume string) string {
	lines := strings.Split(resume, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(strings.Fields(line)) > 4 {
			continue
		}

		lower := strings.ToLower(line)
		for _, label := range []string{"name:", "candidate:", "applicant:"} {
			if strings.Contains(lower, label) {
				_, after, _ := strings.Cut(line, ":")
				return strings.TrimSpace(after)
			}
		}

		if !containsAny(lower, "email", "phone", "address", "objective", "summary") {
			return line
		}
	}
	return ""
}

func extractPhone(resume string) string {
	if m := phoneUS.FindString(resume); m != "" {
		return m
	}
	return strings.TrimSpace(phoneIntl.FindString(resume))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

func coverLetterPrompt(req CoverLetterRequest, now time.Time) string {
	return fmt.Sprintf(`Generate a professional, compelling cover letter that:
1. Is tailored specifically to the job description provided
2. Highlights relevant experience and skills from the candidate's resume
3. Demonstrates clear alignment between the candidate's background and job requirements
4. Is professional, concise (3-4 paragraphs), and engaging
5. Uses specific examples from the resume to support claims
6. Shows enthusiasm for the role and company

COVER LETTER STRUCTURE:
- Professional header with candidate contact information (if provided)
- Date: %s
- Hiring Manager/Company Address (use "Hiring Manager" if specific name not available)
- Opening paragraph mentioning the specific position
- 1-2 body paragraphs connecting resume experience to job requirements with specific examples
- Closing paragraph with next steps and a professional closing

RESUME CONTENT:
%s

JOB DESCRIPTION:
%s

ADDITIONAL CONTEXT:
- Job Title: %s
- Company Name: %s
- Candidate Name: %s
- Email: %s
- Phone: %s

Do not include placeholders for details that are provided above.

Generate the complete cover letter now:`,
		now.Format("January 2, 2006"),
		llm.Excerpt(req.Resume, coverLetterExcerpt),
		llm.Excerpt(req.JobOffer, coverLetterExcerpt),
		orPlaceholder(req.JobTitle, "Extract from job description"),
		orPlaceholder(req.Company, "Extract from job description"),
		orPlaceholder(req.Name, "[Your Name]"),
		orPlaceholder(req.Email, "[Your Email]"),
		orPlaceholder(req.Phone, "[Your Phone]"),
	)
}
