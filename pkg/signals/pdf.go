package signals

import (
	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/vocab"
)

// ExtractPDF derives PDF-specific evidence. The title vocabulary here is a
// strict subset of the terms title phrases, so a PDF title match is always at
// least as strong as a plain title match. PDFTitleMatch only holds when the
// URL itself looks like a PDF.
func ExtractPDF(page models.PageContext, t *vocab.Tables) models.PDFSignals {
	pdfURL := isPDFURL(page)

	return models.PDFSignals{
		IsPDFURL:      pdfURL,
		PDFTitleMatch: pdfURL && containsAny(page.Title, t.Terms.PDFTitles),
	}
}
