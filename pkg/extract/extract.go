// Package extract pulls clean contract text out of HTML, PDF, or plain-text
// content. This backs the "Analyze Terms" flow: the detection engine never
// calls it directly.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
)

// ContentType names the supported input formats.
type ContentType string

const (
	ContentHTML ContentType = "html"
	ContentPDF  ContentType = "pdf"
	ContentText ContentType = "text"
)

// Result is the cleaned-text payload returned to the analyze flow.
type Result struct {
	Success     bool   `json:"success"`
	URL         string `json:"url,omitempty"`
	Text        string `json:"text"`
	Length      int    `json:"length"`
	WordCount   int    `json:"word_count"`
	ContentType string `json:"content_type"`
	Language    string `json:"language,omitempty"`
}

// Text extracts and cleans contract text from raw content of a known type.
func Text(content []byte, contentType ContentType) (string, error) {
	switch contentType {
	case ContentHTML:
		return fromHTML(string(content), "")
	case ContentPDF:
		return fromPDF(content)
	case ContentText:
		return Clean(string(content)), nil
	default:
		return "", fmt.Errorf("extract: unsupported content type %q", contentType)
	}
}

// FromResult builds a Result from already-extracted text.
func FromResult(rawURL, text, contentType string) Result {
	return Result{
		Success:     true,
		URL:         rawURL,
		Text:        text,
		Length:      len(text),
		WordCount:   len(strings.Fields(text)),
		ContentType: contentType,
		Language:    DetectLanguage(text),
	}
}

// fromHTML extracts the readable text of an HTML document. Readability finds
// the main content first; when it fails the whole stripped document text is
// used instead.
func fromHTML(html, pageURL string) (string, error) {
	if pageURL != "" {
		if parsed, err := url.Parse(pageURL); err == nil {
			p := readability.NewParser()
			if article, err := p.Parse(strings.NewReader(html), parsed); err == nil && article.TextContent != "" {
				return Clean(article.TextContent), nil
			}
		}
	}
	return stripHTML(html), nil
}

// stripHTML drops non-content elements and returns the document text.
func stripHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Clean(html)
	}
	doc.Find("script, style, noscript, iframe, svg").Remove()
	return Clean(doc.Text())
}

func fromPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("extract: failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract: failed to read PDF text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("extract: failed to read PDF text: %w", err)
	}
	return Clean(sb.String()), nil
}

// Clean normalizes extracted text: drops control characters, collapses
// whitespace runs, and trims the edges.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	return strings.Join(strings.Fields(text), " ")
}

// DetectType guesses the content type of raw bytes when the caller gives no
// explicit hint.
func DetectType(content []byte, headerContentType string) ContentType {
	header := strings.ToLower(headerContentType)
	switch {
	case strings.Contains(header, "application/pdf"):
		return ContentPDF
	case strings.Contains(header, "text/html"), strings.Contains(header, "application/xhtml"):
		return ContentHTML
	}

	if bytes.HasPrefix(content, []byte("%PDF-")) {
		return ContentPDF
	}
	lowered := strings.ToLower(string(content[:min(len(content), 2048)]))
	if strings.Contains(lowered, "<html") || strings.Contains(lowered, "<body") || strings.Contains(lowered, "<!doctype html") {
		return ContentHTML
	}
	return ContentText
}
