package tools

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/honeycarbs/resume-assistant/internal/resume"
)

var errNoResume = errors.New("resume_text or resume_base64 is required")

// resumeText resolves inline text or a base64 document into plain text
func resumeText(text, encoded, mimeType, fileName string) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}
	if strings.TrimSpace(encoded) == "" {
		return "", errNoResume
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", fmt.Errorf("decode resume_base64: %w", err)
	}

	if mimeType == "" {
		mimeType = resume.TypeFromFilename(fileName)
	}
	return resume.ExtractText(mimeType, data)
}
