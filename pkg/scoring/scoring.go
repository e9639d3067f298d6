// Package scoring combines a SignalSet into weighted scores and the final
// detection verdicts.
package scoring

import (
	"github.com/clauseai/clausehound/models"
)

// Signal weights. URL path and title are the highest-precision signals and
// carry double weight; corroborating DOM evidence counts single.
const (
	weightPathMatch  = 2
	weightQueryMatch = 1
	weightTitleMatch = 2
	weightMetaMatch  = 1
	weightHeading    = 1
	weightLink       = 1
	weightContainer  = 1
	weightPDFPage    = 2
)

// Decide turns a SignalSet into the final DetectionResult for a page.
//
// The URL gate is necessary: no amount of DOM or meta evidence qualifies a
// page as a terms page unless its path matches the terms vocabulary or it is
// a PDF with a terms-like title. The final decision additionally requires the
// SaaS-product verdict, excluding terms pages of non-SaaS entities.
func Decide(page models.PageContext, set models.SignalSet) models.DetectionResult {
	if set.Blocklisted {
		return Blocklisted(page, set)
	}

	scores := score(set)

	isTermsPage := set.URL.PathMatch || (set.PDF.IsPDFURL && set.PDF.PDFTitleMatch)
	contractPage := isTermsPage && (scores.Total >= 1 || set.Meta.TitleMatch)

	return models.DetectionResult{
		ContractDetected:     contractPage && set.SaaS.SaaSDetected,
		ContractPageDetected: contractPage,
		SaaSProductDetected:  set.SaaS.SaaSDetected,
		Signals:              set,
		Scores:               scores,
		PageTitle:            page.Title,
		URL:                  page.URL,
	}
}

// Blocklisted is the low-confidence negative result for a blocklisted page.
// All verdicts are false and no category scores are computed.
func Blocklisted(page models.PageContext, set models.SignalSet) models.DetectionResult {
	set.Blocklisted = true
	return models.DetectionResult{
		Signals:   set,
		PageTitle: page.Title,
		URL:       page.URL,
	}
}

func score(set models.SignalSet) models.ScoreBreakdown {
	var b models.ScoreBreakdown

	if set.URL.PathMatch {
		b.URLScore += weightPathMatch
	}
	if set.URL.QueryMatch {
		b.URLScore += weightQueryMatch
	}

	if set.Meta.TitleMatch {
		b.MetaScore += weightTitleMatch
	}
	if set.Meta.MetaMatch {
		b.MetaScore += weightMetaMatch
	}

	if set.DOM.HeadingMatch {
		b.DOMScore += weightHeading
	}
	if set.DOM.LinkMatch {
		b.DOMScore += weightLink
	}
	if set.DOM.ContainerMatch {
		b.DOMScore += weightContainer
	}

	if set.PDF.IsPDFURL && set.PDF.PDFTitleMatch {
		b.PDFScore = weightPDFPage
	}

	b.Total = b.URLScore + b.MetaScore + b.DOMScore + b.PDFScore
	return b
}
