package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body + `</w:body></w:document>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func TestExtractTextPlain(t *testing.T) {
	got, err := ExtractText("text/plain; charset=utf-8", []byte("  Go developer\nSQL  "))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if got != "Go developer\nSQL" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTextDocx(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Python &amp; SQL</w:t></w:r></w:p>`)

	got, err := ExtractText(MimeDocx, data)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(got, "Jane Doe\nPython & SQL") {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTextShortTypeNames(t *testing.T) {
	docx := buildDocx(t, `<w:p><w:r><w:t>hello</w:t></w:r></w:p>`)
	cases := []struct {
		mimeType string
		data     []byte
	}{
		{"txt", []byte("hello")},
		{".TXT", []byte("hello\n")},
		{"docx", docx},
		{".docx", docx},
	}
	for _, tc := range cases {
		got, err := ExtractText(tc.mimeType, tc.data)
		if err != nil {
			t.Errorf("ExtractText(%q): %v", tc.mimeType, err)
			continue
		}
		if got != "hello" {
			t.Errorf("ExtractText(%q) = %q, want hello", tc.mimeType, got)
		}
	}

	// a short name reaches the pdf reader rather than the unsupported branch
	_, err := ExtractText("pdf", []byte("hello"))
	if err == nil || errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("pdf err = %v, want a pdf read error", err)
	}
}

func TestExtractTextEmptyData(t *testing.T) {
	for _, mt := range []string{MimePlain, MimePDF, MimeDocx, "pdf", "image/png"} {
		got, err := ExtractText(mt, nil)
		if err != nil || got != "" {
			t.Errorf("ExtractText(%q, nil) = %q, %v; want empty", mt, got, err)
		}
	}
}

func TestExtractTextRejectsUnknownType(t *testing.T) {
	_, err := ExtractText("image/png", []byte{0x89})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestExtractTextInvalidPDF(t *testing.T) {
	if _, err := ExtractText(MimePDF, []byte("not a pdf")); err == nil {
		t.Fatal("expected error for malformed pdf")
	}
}

func TestTypeFromFilename(t *testing.T) {
	cases := map[string]string{
		"cv.PDF":      MimePDF,
		"resume.docx": MimeDocx,
		"notes.txt":   MimePlain,
		"photo.png":   "",
	}
	for name, want := range cases {
		if got := TypeFromFilename(name); got != want {
			t.Errorf("TypeFromFilename(%q) = %q, want %q", name, got, want)
		}
	}
}
