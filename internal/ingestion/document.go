// Package ingestion turns uploaded resume documents into plain text.
// All parsing happens in memory; nothing is written to disk.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedFormatError indicates the uploaded file type cannot be parsed.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format %q: upload a .pdf, .docx, or .txt file", e.Filename)
}

// ParseError indicates the document bytes could not be decoded.
type ParseError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse %s document: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse %s document: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ExtractText extracts plain text from document bytes, dispatching on the
// filename extension. Returned text is trimmed; empty text on a well-formed
// document is possible (e.g. image-only PDFs) and is the caller's concern.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".txt":
		return strings.TrimSpace(string(data)), nil
	default:
		return "", &UnsupportedFormatError{Filename: filename}
	}
}

// extractPDF extracts text from PDF bytes page by page.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "pdf", Message: "failed to open document", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than failing the whole resume.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// extractDocx extracts text from DOCX bytes.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "docx", Message: "failed to open document", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return strings.TrimSpace(stripDocxTags(doc.Editable().GetContent())), nil
}

// stripDocxTags removes WordprocessingML markup from raw docx content,
// inserting newlines at paragraph boundaries.
func stripDocxTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")

	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
