package resume

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePlain = "text/plain"
	MimePDF   = "application/pdf"
	MimeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedType is returned for documents other than text, PDF and DOCX
var ErrUnsupportedType = errors.New("resume: unsupported file type")

var (
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
	blankLines   = regexp.MustCompile(`\n{3,}`)
	paragraphEnd = strings.NewReplacer("</w:p>", "\n", "<w:br/>", "\n", "<w:tab/>", "\t")
)

// shortTypes maps bare extensions accepted in place of a MIME type
var shortTypes = map[string]string{
	"txt":  MimePlain,
	"md":   "text/markdown",
	"pdf":  MimePDF,
	"docx": MimeDocx,
}

// ExtractText returns the plain text of an uploaded resume. mimeType may be a
// MIME type or a bare extension such as "pdf" or ".docx". Empty data yields "".
func ExtractText(mimeType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	mt := normalizeType(mimeType)

	var (
		text string
		err  error
	)
	switch mt {
	case MimePlain, "text/markdown":
		text = string(data)
	case MimePDF:
		text, err = extractPDF(data)
	case MimeDocx:
		text, err = extractDocx(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, mimeType)
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

func normalizeType(mimeType string) string {
	raw := strings.ToLower(strings.TrimSpace(mimeType))
	if mt, ok := shortTypes[strings.TrimPrefix(raw, ".")]; ok {
		return mt
	}
	if mt, _, err := mime.ParseMediaType(raw); err == nil {
		return mt
	}
	return raw
}

// TypeFromFilename guesses the MIME type from a file extension
func TypeFromFilename(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return MimePlain
	case ".md":
		return "text/markdown"
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDocx
	default:
		return ""
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("resume: read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("resume: parse docx: %w", err)
	}
	defer doc.Close()

	return docxPlainText(doc.Editable().GetContent()), nil
}

// docxPlainText turns WordprocessingML into text, one line per paragraph
func docxPlainText(content string) string {
	text := paragraphEnd.Replace(content)
	text = xmlTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	return blankLines.ReplaceAllString(text, "\n\n")
}
