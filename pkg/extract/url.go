package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/clauseai/clausehound/pkg/fetcher"
)

// FromURL fetches a URL and extracts clean contract text from the response.
// explicitType forces a content type ("html", "pdf", "text"); when empty the
// type is detected from the Content-Type header and the body.
func FromURL(ctx context.Context, f *fetcher.Fetcher, rawURL string, explicitType string) (Result, error) {
	resp, err := f.Get(ctx, rawURL)
	if err != nil {
		return Result{}, err
	}

	contentType := ContentType(strings.ToLower(explicitType))
	if explicitType == "" {
		contentType = DetectType(resp.Body, resp.ContentType)
	}
	if strings.HasSuffix(strings.ToLower(rawURL), ".pdf") {
		contentType = ContentPDF
	}

	var text string
	switch contentType {
	case ContentHTML:
		// URL-aware path so readability can resolve the main content.
		text, err = fromHTML(string(resp.Body), resp.FinalURL)
	case ContentPDF, ContentText:
		text, err = Text(resp.Body, contentType)
	default:
		return Result{}, fmt.Errorf("extract: unsupported content type %q", explicitType)
	}
	if err != nil {
		return Result{}, err
	}

	return FromResult(rawURL, text, string(contentType)), nil
}
