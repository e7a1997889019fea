package skills

import (
	"context"
	"strings"

	"github.com/honeycarbs/resume-assistant/pkg/llm"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

const (
	// MaxSkills bounds the extracted keyword list
	MaxSkills = 15

	// maxSkillLen drops tokens that are sentences rather than keywords
	maxSkillLen = 50

	// excerptRunes keeps the prompt under the completion input limit
	excerptRunes = 6000

	systemPrompt = "You are an expert at extracting relevant job search keywords from resumes."

	userPromptTemplate = `Analyze the following resume and extract the most relevant skills, technologies, and keywords that would be useful for job searching.
Focus on:
1. Technical skills (programming languages, frameworks, tools)
2. Professional skills and competencies
3. Industry-specific keywords
4. Job titles and roles mentioned

Return ONLY a comma-separated list of keywords/skills, no explanations.
Maximum 15 most relevant terms.

Resume content:
`
)

// Extractor turns resume text into search keywords using a Completer
type Extractor struct {
	completer llm.Completer
	logger    *logging.Logger
}

// NewExtractor creates an Extractor
func NewExtractor(completer llm.Completer, logger *logging.Logger) *Extractor {
	if completer == nil {
		completer = llm.Unavailable{}
	}
	return &Extractor{completer: completer, logger: logging.OrNop(logger).Named("skills")}
}

// ExtractSkills returns up to MaxSkills keywords in the order the model gave them.
// Blank input and completion failures yield an empty list.
func (e *Extractor) ExtractSkills(ctx context.Context, resumeText string) []string {
	if e == nil || strings.TrimSpace(resumeText) == "" {
		return []string{}
	}

	text, err := e.completer.Complete(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPromptTemplate + llm.Excerpt(strings.TrimSpace(resumeText), excerptRunes),
		Temperature:  0.3,
		MaxTokens:    200,
	})
	if err != nil {
		e.logger.Warn("skill extraction failed", "err", err)
		return []string{}
	}

	skills := ParseSkills(text)
	e.logger.Debug("skills extracted", "count", len(skills))
	return skills
}

// ParseSkills splits a comma-separated completion into clean keywords
func ParseSkills(text string) []string {
	out := make([]string, 0, MaxSkills)
	for _, token := range strings.Split(text, ",") {
		skill := strings.Trim(strings.TrimSpace(token), "\"'`“”‘’")
		skill = strings.TrimSpace(skill)
		if skill == "" || len([]rune(skill)) >= maxSkillLen {
			continue
		}
		out = append(out, skill)
		if len(out) == MaxSkills {
			break
		}
	}
	return out
}
