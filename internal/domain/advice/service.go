package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/resume-assistant/pkg/llm"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

const (
	maxRecommendations = 5
	excerptRunes       = 6000

	recommendationsSystem = "You are a career counselor providing job search advice."
	careerPathsSystem     = "You are a career advisor. Always respond with valid JSON only."
)

// ErrEmptyResume is returned when there is no resume text to analyze
var ErrEmptyResume = errors.New("advice: resume text is required")

// CareerPath is one suggested progression
type CareerPath struct {
	Name         string   `json:"path_name"`
	Description  string   `json:"description"`
	NextRole     string   `json:"next_role"`
	Timeline     string   `json:"timeline"`
	Requirements []string `json:"requirements"`
}

// CareerPathAnalysis is the decoded career path response
type CareerPathAnalysis struct {
	CurrentLevel       string       `json:"current_level"`
	CareerPaths        []CareerPath `json:"career_paths"`
	StrengthsForGrowth []string     `json:"strengths_for_growth"`
	GrowthAreas        []string     `json:"growth_areas"`
}

// Service produces resume-driven career advice
type Service struct {
	completer llm.Completer
	logger    *logging.Logger
	now       func() time.Time
}

// NewService creates advice Service
func NewService(completer llm.Completer, logger *logging.Logger) *Service {
	if completer == nil {
		completer = llm.Unavailable{}
	}
	return &Service{completer: completer, logger: logging.OrNop(logger).Named("advice"), now: time.Now}
}

// Recommendations returns up to five actionable job search suggestions.
// Failures degrade to an empty list.
func (s *Service) Recommendations(ctx context.Context, resumeText, targetRole string) []string {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return []string{}
	}

	prompt := fmt.Sprintf(`Based on the following resume, provide 5 specific job search recommendations.
Focus on:
1. Specific job titles to search for
2. Companies or industries to target
3. Skills to highlight in applications
4. Keywords to use in job searches
%s
Resume content:
%s

Provide exactly 5 bullet points with actionable recommendations.`, targetLine(targetRole), llm.Excerpt(resumeText, excerptRunes))

	text, err := s.completer.Complete(ctx, llm.Request{
		SystemPrompt: recommendationsSystem,
		UserPrompt:   prompt,
		Temperature:  0.7,
		MaxTokens:    400,
	})
	if err != nil {
		s.logger.Warn("recommendations failed", "err", err)
		return []string{}
	}

	return ParseRecommendations(text)
}

// ParseRecommendations keeps bullet or numbered lines, at most five
func ParseRecommendations(text string) []string {
	out := make([]string, 0, maxRecommendations)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !isBullet(line) {
			continue
		}
		out = append(out, line)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

func isBullet(line string) bool {
	if strings.Contains(line, "•") || strings.Contains(line, "-") {
		return true
	}
	for i := 1; i <= maxRecommendations; i++ {
		if strings.HasPrefix(line, fmt.Sprintf("%d.", i)) {
			return true
		}
	}
	return false
}

// CareerPaths asks for a structured career path analysis
func (s *Service) CareerPaths(ctx context.Context, resumeText, targetRole string) (CareerPathAnalysis, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return CareerPathAnalysis{}, ErrEmptyResume
	}

	prompt := fmt.Sprintf(`Based on the following resume, analyze potential career paths.
%s
Resume content:
%s

Provide a JSON response with the following structure (no markdown, just pure JSON):
{
    "current_level": "Entry/Mid/Senior/Lead/Executive level assessment",
    "career_paths": [
        {
            "path_name": "Career Path Name",
            "description": "Brief description",
            "next_role": "Immediate next role",
            "timeline": "Estimated timeline to reach",
            "requirements": ["Key requirement 1", "Key requirement 2"]
        }
    ],
    "strengths_for_growth": ["Strength 1", "Strength 2", "Strength 3"],
    "growth_areas": ["Area 1", "Area 2", "Area 3"]
}

Provide 3 distinct career paths. Return ONLY valid JSON, no explanation text.`, targetLine(targetRole), llm.Excerpt(resumeText, excerptRunes))

	text, err := s.completer.Complete(ctx, llm.Request{
		SystemPrompt: careerPathsSystem,
		UserPrompt:   prompt,
		Temperature:  0.5,
		MaxTokens:    800,
	})
	if err != nil {
		s.logger.Warn("career path analysis failed", "err", err)
		return CareerPathAnalysis{}, fmt.Errorf("advice: career paths: %w", err)
	}

	var analysis CareerPathAnalysis
	if err := json.Unmarshal([]byte(llm.StripCodeFence(text)), &analysis); err != nil {
		s.logger.Warn("career path response is not valid JSON", "err", err)
		return CareerPathAnalysis{}, fmt.Errorf("advice: decode career paths: %w", err)
	}
	return analysis, nil
}

func targetLine(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return ""
	}
	return "\nThe user is targeting: " + role + "\n"
}
